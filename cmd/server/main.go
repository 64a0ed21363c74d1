package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"route-optimizer-service/internal/adapters/cache"
	"route-optimizer-service/internal/adapters/ors"
	"route-optimizer-service/internal/api"
	"route-optimizer-service/internal/config"
	"route-optimizer-service/internal/logger"
	"route-optimizer-service/internal/platform/db"
	"route-optimizer-service/internal/ports"
	"route-optimizer-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (ORS client, geocode cache) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		logger.L().Info("no .env file found, using environment variables")
	}
	log := logger.Setup()

	port := config.Get("PORT", "8080")

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Error("ORS_API_KEY is required")
		os.Exit(1)
	}

	client, err := ors.NewClientWithBaseURL(orsKey, config.Get("ORS_BASE_URL", ""))
	if err != nil {
		log.Error("build ORS client", "err", err)
		os.Exit(1)
	}

	geocodeCache, cleanup, err := buildGeocodeCache()
	if err != nil {
		log.Error("build geocode cache", "err", err)
		os.Exit(1)
	}
	defer cleanup()

	fuel := services.FuelConfig{
		MilesPerGallon: config.GetFloat("FUEL_MPG", services.DefaultMilesPerGallon),
		PricePerGallon: config.GetFloat("FUEL_PRICE_PER_GALLON", services.DefaultPricePerGallon),
	}
	if err := fuel.Validate(); err != nil {
		log.Error("invalid fuel configuration", "err", err)
		os.Exit(1)
	}

	delay := config.GetSeconds("GEOCODE_DELAY_SECONDS", services.DefaultGeocodeDelay)

	router := api.NewRouter(client, client, client, geocodeCache, fuel, delay)

	// Timeouts are tuned for pipeline runs that pace geocoding calls
	// (external API latency dominates).
	log.Info("server listening", "addr", ":"+port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      300 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// buildGeocodeCache picks the cache backend: Redis when REDIS_ADDR is
// set, Postgres when DATABASE_URL is set, a local SQLite file otherwise.
// The returned cleanup closes whatever was opened.
func buildGeocodeCache() (ports.GeocodeCache, func(), error) {
	ctx := context.Background()

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASS"),
			DB:       config.GetInt("REDIS_DB", 0),
		})
		ttl := config.GetSeconds("GEOCODE_CACHE_TTL_SECONDS", cache.DefaultGeocodeTTL)
		return cache.NewRedisGeocodeCache(client, ttl), func() { _ = client.Close() }, nil
	}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		pool, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres cache: %w", err)
		}

		c := cache.NewSQLGeocodeCache(pool)
		if err := c.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("init postgres cache schema: %w", err)
		}
		return c, func() { _ = pool.Close() }, nil
	}

	pool, err := db.OpenSqlite(config.Get("DB_PATH", "data/app.db"))
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite cache: %w", err)
	}

	c := cache.NewSqliteGeocodeCache(pool)
	if err := c.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("init sqlite cache schema: %w", err)
	}
	return c, func() { _ = pool.Close() }, nil
}
