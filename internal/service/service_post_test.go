package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/mock"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testPrincipal = models.Principal{UserID: 5, Name: "alice", Email: "alice@example.com"}

func TestPostService_CreatePost_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPostRepository(ctrl)
	svc := NewPostService(repo, logger.Nop())
	ctx := context.Background()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.EXPECT().CreatePost(ctx, models.Post{UserID: 5, Title: "hello", Description: "world"}).
		Return(models.Post{PostID: 1, UserID: 5, Title: "hello", Description: "world", CreatedAt: created}, nil)

	post, err := svc.CreatePost(ctx, testPrincipal, models.CreatePostRequest{Title: "hello", Description: "world"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), post.PostID)
	assert.Equal(t, int64(5), post.UserID)
	assert.Equal(t, created, post.CreatedAt)
}

func TestPostService_CreatePost_OwnerVanished(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPostRepository(ctrl)
	svc := NewPostService(repo, logger.Nop())

	repo.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, store.ErrPostOwnerNotFound)

	_, err := svc.CreatePost(context.Background(), testPrincipal, models.CreatePostRequest{Title: "t", Description: "d"})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostService_CreatePost_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPostRepository(ctrl)
	svc := NewPostService(repo, logger.Nop())

	repo.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, store.ErrExecutingQuery)

	_, err := svc.CreatePost(context.Background(), testPrincipal, models.CreatePostRequest{Title: "t", Description: "d"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestPostService_ListPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPostRepository(ctrl)
	svc := NewPostService(repo, logger.Nop())

	repo.EXPECT().FindPostsByUserID(gomock.Any(), int64(5)).Return([]models.Post{{PostID: 1}, {PostID: 2}}, nil)

	posts, err := svc.ListPosts(context.Background(), testPrincipal)

	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostService_ListPosts_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPostRepository(ctrl)
	svc := NewPostService(repo, logger.Nop())

	repo.EXPECT().FindPostsByUserID(gomock.Any(), gomock.Any()).Return(nil, store.ErrScanningRows)

	posts, err := svc.ListPosts(context.Background(), testPrincipal)

	assert.ErrorIs(t, err, store.ErrScanningRows)
	assert.Nil(t, posts)
}
