// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/logger"
)

// Conn is a single pooled connection checked out for the lifetime of one
// request. It must be released exactly once.
type Conn struct {
	*sql.Conn
	logger *logger.Logger
}

// Acquire checks out a dedicated connection from the pool.
func (db *DB) Acquire(ctx context.Context) (*Conn, error) {
	c, err := db.DB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}

	return &Conn{Conn: c, logger: db.logger}, nil
}

// Release returns the connection to the pool.
func (c *Conn) Release() {
	if err := c.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		c.logger.Warn().Err(err).Str("func", "*Conn.Release").Msg("error releasing connection")
	}
}

type connCtxKey struct{}

// WithConn returns a copy of ctx in which repositories run their statements
// on c instead of the pool.
func WithConn(ctx context.Context, c *Conn) context.Context {
	return context.WithValue(ctx, connCtxKey{}, c)
}

// ConnFromContext returns the request-scoped connection stored by [WithConn].
func ConnFromContext(ctx context.Context) (*Conn, bool) {
	c, ok := ctx.Value(connCtxKey{}).(*Conn)
	return c, ok && c != nil
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// querier returns the request-scoped connection if ctx carries one,
// otherwise the pool.
func (db *DB) querier(ctx context.Context) querier {
	if c, ok := ConnFromContext(ctx); ok {
		return c.Conn
	}
	return db.DB
}
