// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells the repositories which integrity rule a failed statement violated,
// independent of the SQL backend.
type ErrorClassification int

const (
	// Unclassified covers every error that is not a recognised constraint
	// violation. Repositories wrap such errors as unexpected.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates that an INSERT or UPDATE collided with a
	// UNIQUE or PRIMARY KEY constraint.
	UniqueViolation

	// ForeignKeyViolation indicates that a referenced row does not exist.
	ForeignKeyViolation
)

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite using the
// extended result codes reported by mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	}

	return Unclassified
}

// postgresError returns the SQLSTATE code of err, or "" if err is not a
// PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
