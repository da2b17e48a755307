package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/models"
)

type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService over postRepository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// CreatePost stores a post owned by principal. If the owner vanished after
// the token was resolved, ErrUserNotFound is returned.
func (p *postService) CreatePost(ctx context.Context, principal models.Principal, req models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.CreatePost(ctx, models.Post{
		UserID:      principal.UserID,
		Title:       req.Title,
		Description: req.Description,
	})
	if errors.Is(err, store.ErrPostOwnerNotFound) {
		log.Debug().Int64("user_id", principal.UserID).Msg("post owner vanished")
		return models.Post{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	if err != nil {
		log.Err(err).Int64("user_id", principal.UserID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return post, nil
}

func (p *postService) ListPosts(ctx context.Context, principal models.Principal) ([]models.Post, error) {
	posts, err := p.postRepository.FindPostsByUserID(ctx, principal.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", principal.UserID).Msg("listing posts failed")
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}
