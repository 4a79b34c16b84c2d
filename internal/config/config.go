// internal/config/config.go
package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port        string
	DatabaseURL string
	AMQPURL     string
	EventQueue  string
}

func Parse() Config {
	return Config{
		Port:        getString("PORT", "8080"),
		DatabaseURL: databaseURL(),
		AMQPURL:     getString("AMQP_URL", ""),
		EventQueue:  getString("EVENT_QUEUE", "catalog_events"),
	}
}

// databaseURL prefers DATABASE_URL and falls back to the individual
// DB_* variables.
func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	user := getString("DB_USER", "postgres")
	pass := getString("DB_PASSWORD", "postgres")
	host := getString("DB_HOST", "localhost")
	port := getString("DB_PORT", "5432")
	name := getString("DB_NAME", "campaign_catalog")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, pass, host, port, name,
	)
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
