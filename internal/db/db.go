package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-sql-driver/mysql"
)

// DB wraps the shared *sql.DB pool. All access goes through
// context-aware methods so callers control cancellation.
type DB struct {
	*sql.DB
}

// DSN builds a MariaDB/MySQL data source name from its parts.
// parseTime is required so DATETIME columns scan into time.Time.
func DSN(host, user, password, name string) string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = host
	cfg.User = user
	cfg.Passwd = password
	cfg.DBName = name
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

// Open opens a pooled connection for the given driver and verifies
// connectivity before returning.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &DB{DB: sqlDB}, nil
}
