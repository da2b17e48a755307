// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations: the first statement goose issues fails
	err = Migrate(db, "postgres")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "postgres")
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "mysql")
	if err == nil || !strings.Contains(err.Error(), "unsupported dialect") {
		t.Fatalf("expected unsupported dialect error, got: %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// idempotent
	if err := Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	for _, table := range []string{"users", "posts"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}

	if _, err := db.Exec(`INSERT INTO users (name, email, password_hash) VALUES ('alice', 'a@example.com', 'h')`); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO users (name, email, password_hash) VALUES ('alice2', 'a@example.com', 'h')`); err == nil {
		t.Error("expected unique violation on email")
	}
	if _, err := db.Exec(`INSERT INTO posts (user_id, title, description) VALUES (999, 't', 'd')`); err == nil {
		t.Error("expected foreign key violation on posts.user_id")
	}

	if _, err := db.Exec(`INSERT INTO posts (user_id, title, description) VALUES (1, 't', 'd')`); err != nil {
		t.Fatalf("insert post: %v", err)
	}
	if _, err := db.Exec(`DELETE FROM users WHERE id = 1`); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if count != 0 {
		t.Errorf("expected posts to cascade, %d left", count)
	}
}
