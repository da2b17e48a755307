package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/models"
)

// fakeAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type fakeAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.Token, error)
	resolveFn      func(ctx context.Context, token string) (models.Principal, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.registerUserFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) Resolve(ctx context.Context, token string) (models.Principal, error) {
	return f.resolveFn(ctx, token)
}

type fakePostService struct {
	createPostFn func(ctx context.Context, principal models.Principal, req models.CreatePostRequest) (models.Post, error)
	listPostsFn  func(ctx context.Context, principal models.Principal) ([]models.Post, error)
}

func (f *fakePostService) CreatePost(ctx context.Context, principal models.Principal, req models.CreatePostRequest) (models.Post, error) {
	return f.createPostFn(ctx, principal, req)
}

func (f *fakePostService) ListPosts(ctx context.Context, principal models.Principal) ([]models.Post, error) {
	return f.listPostsFn(ctx, principal)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

var alice = models.Principal{UserID: 1, Name: "alice", Email: "alice@example.com"}

// resolveAlice accepts only the token "alice@example.com".
func resolveAlice(_ context.Context, token string) (models.Principal, error) {
	if token != alice.Email {
		return models.Principal{}, service.ErrInvalidToken
	}
	return alice, nil
}

func newTestRouter(t *testing.T, auth *fakeAuthService, posts *fakePostService) *Handler {
	t.Helper()
	if auth == nil {
		auth = &fakeAuthService{resolveFn: resolveAlice}
	}
	if posts == nil {
		posts = &fakePostService{}
	}

	return NewHandler(&service.Services{
		AuthService:    auth,
		PostService:    posts,
		AppInfoService: &fakeAppInfoService{version: "test-version"},
	}, logger.Nop())
}
