// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-post-board/models"
)

var pgBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{Name: "alice", Email: "alice@example.com", PasswordHash: "digest"}

	query, args, err := buildInsertUserQuery(pgBuilder, user)
	require.NoError(t, err)

	require.Equal(t, []any{"alice", "alice@example.com", "digest"}, args)
	require.Equal(t,
		"INSERT INTO users (name,email,password_hash) VALUES ($1,$2,$3) RETURNING id, name, email, password_hash, created_at",
		query)
}

func Test_buildSelectUserByEmailQuery(t *testing.T) {
	query, args, err := buildSelectUserByEmailQuery(pgBuilder, "alice@example.com")
	require.NoError(t, err)

	require.Equal(t, []any{"alice@example.com"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from users")
	require.Contains(t, q, "where email = $1")
	require.Contains(t, q, "limit 1")
	for _, col := range userColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildInsertPostQuery(t *testing.T) {
	post := models.Post{UserID: 7, Title: "title", Description: "description"}

	query, args, err := buildInsertPostQuery(pgBuilder, post)
	require.NoError(t, err)

	require.Equal(t, []any{int64(7), "title", "description"}, args)
	require.Equal(t,
		"INSERT INTO posts (user_id,title,description) VALUES ($1,$2,$3) RETURNING id, user_id, title, description, created_at",
		query)
}

func Test_buildSelectPostsByUserIDQuery(t *testing.T) {
	query, args, err := buildSelectPostsByUserIDQuery(pgBuilder, 7)
	require.NoError(t, err)

	require.Equal(t, []any{int64(7)}, args)
	require.Equal(t,
		"SELECT id, user_id, title, description, created_at FROM posts WHERE user_id = $1 ORDER BY id",
		query)
}
