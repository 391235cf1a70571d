package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// normalizeDSN forces the driver options the repositories rely on: DATE and
// TIMESTAMP columns scan into time.Time only with parseTime enabled, and
// travel dates are compared in local time.
func normalizeDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.Local
	return cfg.FormatDSN(), nil
}

// ConnectDB opens the MySQL pool described by env.MySQLDSN and verifies it
// with a short ping. The handle is returned to the caller; lifecycle (and
// Close) belongs to the process entry point.
func ConnectDB(env Env) (*sql.DB, error) {
	if env.MySQLDSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is empty")
	}

	dsn, err := normalizeDSN(env.MySQLDSN)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
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
