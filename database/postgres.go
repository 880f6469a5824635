package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"hostnhome/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgPool is the pool for the hosted relational backend. It is nil unless
// QUOTATION_STORE=postgres.
var PgPool *pgxpool.Pool

// InitPostgres connects to POSTGRES_URL and makes sure the schema exists.
func InitPostgres() {
	if config.AppConfig.PostgresURL == "" {
		log.Fatal("POSTGRES_URL not set")
	}

	cfg, err := pgxpool.ParseConfig(config.AppConfig.PostgresURL)
	if err != nil {
		log.Fatalf("failed to parse POSTGRES_URL: %v", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to Postgres: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("failed to ping Postgres: %v", err)
	}
	if err := initSchema(ctx, pool); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}
	PgPool = pool
	log.Println("Connected to Postgres successfully!")
}

func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS resorts (
			id TEXT PRIMARY KEY,
			vendor_id TEXT NOT NULL,
			name TEXT NOT NULL,
			location TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			slug TEXT NOT NULL,
			images TEXT[] NOT NULL DEFAULT '{}',
			amenities TEXT[] NOT NULL DEFAULT '{}',
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS resorts_vendor_slug_idx ON resorts (vendor_id, slug)`,
		`CREATE TABLE IF NOT EXISTS quotations (
			id TEXT PRIMARY KEY,
			vendor_id TEXT NOT NULL,
			resort_id TEXT NOT NULL,
			guest_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			check_in TIMESTAMPTZ NOT NULL,
			check_out TIMESTAMPTZ NOT NULL,
			adults INTEGER NOT NULL,
			children INTEGER NOT NULL DEFAULT 0,
			rooms INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'draft',
			total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CHECK (check_out > check_in)
		)`,
		`CREATE INDEX IF NOT EXISTS quotations_vendor_created_idx ON quotations (vendor_id, created_at DESC)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
