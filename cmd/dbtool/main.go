// dbtool initializes the geocode cache schema for whichever backend the
// environment selects: Postgres via DATABASE_URL, a local SQLite file
// otherwise.
package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"route-optimizer-service/internal/adapters/cache"
	"route-optimizer-service/internal/config"
	"route-optimizer-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx := context.Background()

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pool, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()

		log.Println("Initializing postgres geocode cache schema...")
		if err := cache.NewSQLGeocodeCache(pool).EnsureSchema(ctx); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		log.Println("Schema ready.")
		return
	}

	pool, err := db.OpenSqlite(config.Get("DB_PATH", "data/app.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	log.Println("Initializing sqlite geocode cache schema...")
	if err := cache.NewSqliteGeocodeCache(pool).EnsureSchema(ctx); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
