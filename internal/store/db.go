// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/migrations"
)

// Supported SQL dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// DB wraps a connection pool together with the dialect-specific pieces the
// repositories need: placeholder format and constraint error classification.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database described by cfg.DSN. DSNs starting with
// "postgres://" or "postgresql://" are opened through pgx; DSNs with any
// other scheme are rejected; everything else is a SQLite database path.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch dialectFromDSN(cfg.DSN) {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewDB").Msg("unsupported database dsn")
		return nil, ErrUnsupportedDialect
	}
}

// Dialect reports the SQL dialect of the underlying database.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies all pending schema migrations for the dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) statementBuilder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

func dialectFromDSN(dsn string) string {
	scheme, _, found := strings.Cut(dsn, "://")
	if !found {
		return DialectSQLite
	}

	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return DialectPostgres
	case "sqlite", "sqlite3", "file":
		return DialectSQLite
	default:
		return ""
	}
}
