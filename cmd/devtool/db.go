package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DragonKeeper_Go/internal/database"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// databaseURL prefers DB_URL and otherwise builds one from the DB_* variables
func databaseURL() string {
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		return dbURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "dragonkeeper"),
	)
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	dbURL := databaseURL()
	PrintInfo("Connecting to database: %s", redactPassword(dbURL))
	return database.NewPool(ctx, dbURL, 2, time.Minute, time.Hour)
}
