package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
)

const sqliteDSNOptions = "_foreign_keys=on&_busy_timeout=5000"

// NewConnectSQLite opens a SQLite database with foreign keys enforced.
//
// An in-memory database lives inside a single connection, so its pool is
// limited to one connection.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := sqliteDSN(cfg.DSN)

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if isSQLiteInMemory(dsn) {
		conn.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            DialectSQLite,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

// sqliteDSN strips a sqlite:// or sqlite3:// scheme, rewrites file:// to
// the file: URI form the driver expects and appends the connection options.
func sqliteDSN(dsn string) string {
	for _, prefix := range []string{"sqlite3://", "sqlite://"} {
		dsn = strings.TrimPrefix(dsn, prefix)
	}
	if rest, ok := strings.CutPrefix(dsn, "file://"); ok {
		dsn = "file:" + rest
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteDSNOptions
	}
	return dsn + "?" + sqliteDSNOptions
}

func isSQLiteInMemory(dsn string) bool {
	return strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
