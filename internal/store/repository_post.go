// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/models"
)

type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts a post. A post whose owner does not exist is rejected
// by the foreign key and reported as [ErrPostOwnerNotFound].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(r.db.statementBuilder(), post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Post
	row := r.db.querier(ctx).QueryRowContext(ctx, query, args...)
	if err = scanPost(row, &created); err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			log.Debug().Int64("user_id", post.UserID).Str("func", "*postRepository.CreatePost").Msg("post owner not found")
			return models.Post{}, ErrPostOwnerNotFound
		}

		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *postRepository) FindPostsByUserID(ctx context.Context, userID int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsByUserIDQuery(r.db.statementBuilder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostsByUserID").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostsByUserID").Msg("error selecting posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err = scanPost(rows, &post); err != nil {
			log.Err(err).Str("func", "*postRepository.FindPostsByUserID").Msg("error scanning post")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostsByUserID").Msg("error iterating posts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

func scanPost(row rowScanner, post *models.Post) error {
	return row.Scan(&post.PostID, &post.UserID, &post.Title, &post.Description, scannableTime{&post.CreatedAt})
}
