package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a migrated in-memory SQLite database.
func newTestDB(t *testing.T) *store.DB {
	t.Helper()

	db, err := store.NewDB(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	return db
}
