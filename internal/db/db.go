// internal/db/db.go
package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

// Init opens the database, verifies the connection and creates the
// schema if it does not exist yet. The caller owns the returned handle
// and must Close it on shutdown.
func Init(dsn string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := EnsureSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	log.Println("✅ Connected to database")
	return conn, nil
}

// EnsureSchema creates the catalog tables if missing. Child tables
// carry ON DELETE CASCADE so deleting a parent removes its whole
// subtree and never leaves orphans.
func EnsureSchema(conn *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS brands (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			pharma TEXT NOT NULL DEFAULT '',
			therapeutic_area TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS campaigns (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			brand_id INTEGER NOT NULL REFERENCES brands(id) ON DELETE CASCADE,
			business_unit TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'planned',
			start_date TIMESTAMPTZ,
			end_date TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS programs (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			campaign_id INTEGER NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
			program_type TEXT NOT NULL DEFAULT '',
			platform TEXT NOT NULL DEFAULT '',
			external_ref INTEGER,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS placements (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			program_id INTEGER NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
			channel TEXT NOT NULL,
			veeva_code TEXT NOT NULL DEFAULT '',
			ad_server_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_campaigns_brand_id ON campaigns(brand_id)`,
		`CREATE INDEX IF NOT EXISTS idx_programs_campaign_id ON programs(campaign_id)`,
		`CREATE INDEX IF NOT EXISTS idx_placements_program_id ON placements(program_id)`,
		`CREATE INDEX IF NOT EXISTS idx_placements_channel ON placements(channel)`,
	}

	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
