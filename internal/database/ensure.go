package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"secretely/internal/config"
	"secretely/internal/middleware"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// EnsureDatabase connects to the maintenance database and creates the
// configured database if it does not exist yet. SQLite creates its file
// lazily, so only postgres needs this step.
func EnsureDatabase(ctx context.Context, cfg *config.Config) error {
	if cfg.DBDriver != "postgres" {
		return nil
	}

	sslMode := cfg.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	adminDSN := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		sslMode,
	)

	adminDB, err := sql.Open("pgx", adminDSN)
	if err != nil {
		return fmt.Errorf("failed to open admin connection: %w", err)
	}
	defer adminDB.Close()

	if err := adminDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach postgres server: %w", err)
	}

	var exists bool
	err = adminDB.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE cannot be parameterized; the name comes from trusted
	// configuration, and pg_quote via identifier quoting keeps it safe.
	if _, err := adminDB.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE %q", cfg.DBName)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", cfg.DBName, err)
	}

	middleware.Logger.Info("Database created", slog.String("name", cfg.DBName))
	return nil
}
