package config

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

//go:embed schema.sql
var schemaSQL string

// ConnectDB opens the pool and pings it. The caller owns the returned DB.
func ConnectDB(env Env) (*sql.DB, error) {
	db, err := sql.Open("mysql", env.DSN())
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(env.DBMaxOpenConns)
	db.SetMaxIdleConns(env.DBMaxOpenConns)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

// PingDB is used by health checks.
func PingDB(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

// Migrate creates the org chart tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// SchemaTables are the tables schema.sql creates.
var SchemaTables = []string{"department", "job", "person", "user"}

// MissingTables reports which of want are absent from the current schema.
func MissingTables(ctx context.Context, db *sql.DB, want []string) ([]string, error) {
	if db == nil {
		return nil, fmt.Errorf("database not connected")
	}
	rows, err := db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	have := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		have[strings.ToLower(name)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	missing := []string{}
	for _, t := range want {
		if !have[strings.ToLower(t)] {
			missing = append(missing, t)
		}
	}
	return missing, nil
}
