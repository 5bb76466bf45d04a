package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
)

// DSN renders the driver connection string. observed_on is a DATE, so parseTime is
// required for it to scan into time.Time, and the driver location is pinned to UTC so
// that a stored day reads back as the same calendar day.
func DSN(cfg config.Database) string {
	conf := mysql.NewConfig()
	conf.Net = cfg.Net
	conf.Addr = cfg.Server
	conf.User = cfg.User
	conf.Passwd = cfg.Password
	conf.DBName = cfg.DBName
	conf.Timeout = cfg.Timeout
	conf.Loc = time.UTC
	conf.ParseTime = true
	return conf.FormatDSN()
}

func New(ctx context.Context, cfg config.Database) (*sqlx.DB, error) {
	dbConn, err := sqlx.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("db open failed: %w", err)
	}
	dbConn.SetMaxIdleConns(cfg.MaxIdleConnections)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConnections)
	dbConn.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := dbConn.PingContext(pingCtx); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("db ping failed: %w", err)
	}

	return dbConn, nil
}
