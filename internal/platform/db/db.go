// Package db opens database handles with pool settings shared by the
// server and the schema tool.
package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open connects to Postgres via the pgx stdlib driver. The pool is sized
// for short bursts of cache traffic, not sustained load.
func Open(databaseURL string) (*sql.DB, error) {
	pool, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	pool.SetMaxOpenConns(10)
	pool.SetMaxIdleConns(10)
	pool.SetConnMaxLifetime(30 * time.Minute)

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return pool, nil
}

// OpenSqlite opens (creating if needed) the local SQLite file used when
// no external cache backend is configured.
func OpenSqlite(path string) (*sql.DB, error) {
	pool, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", path, err)
	}

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite database %q: %w", path, err)
	}

	return pool, nil
}
