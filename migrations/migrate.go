// Package migrations holds the embedded goose migrations of every supported
// SQL dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

type dialectMigrations struct {
	gooseDialect string
	dir          string
}

var dialects = map[string]dialectMigrations{
	"postgres": {gooseDialect: "pgx", dir: "postgres"},
	"sqlite3":  {gooseDialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations for dialect ("postgres" or "sqlite3").
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	d, ok := dialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
