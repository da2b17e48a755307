package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, h http.HandlerFunc) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Detail: detail})
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://board.example.com/", want: "https://board.example.com"},
		{name: "surrounding spaces", raw: "  127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_UsesConfiguredToken(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress: "localhost:8080",
		Token:       " alice@example.com ",
	}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", a.Token())

	_, err = NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestRegister(t *testing.T) {
	var got models.RegisterRequest
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create_user", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "User created successfully"})
	})

	msg, err := a.Register(context.Background(), models.RegisterRequest{
		Name: "alice", Email: "alice@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "User created successfully", msg)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "secret1", got.Password)
}

func TestRegister_Conflict(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusConflict, "User with this email exist")
	})

	_, err := a.Register(context.Background(), models.RegisterRequest{
		Name: "alice", Email: "alice@example.com", Password: "secret1",
	})
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "User with this email exist")
}

func TestLogin_SendsPasswordFormAndStoresToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "alice@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "secret1", r.PostForm.Get("password"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Token{AccessToken: "alice@example.com", TokenType: models.TokenTypeBearer})
	})

	token, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.TokenTypeBearer, token.TokenType)
	assert.Equal(t, "alice@example.com", a.Token())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		detail string
		want   error
	}{
		{name: "unknown user", status: http.StatusNotFound, detail: "User not found", want: ErrNotFound},
		{name: "wrong password", status: http.StatusUnauthorized, detail: "Incorrect password", want: ErrUnauthorized},
		{name: "bad body", status: http.StatusUnprocessableEntity, detail: "invalid data provided", want: ErrInvalidData},
		{name: "server failure", status: http.StatusInternalServerError, detail: "internal server error", want: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				writeDetail(w, tt.status, tt.detail)
			})

			_, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "secret1"})
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.detail)
			assert.Empty(t, a.Token())
		})
	}
}

func TestLogin_EmptyAccessToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type":"bearer"}`))
	})

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	assert.Error(t, err)
}

func TestCreatePost_SendsBearerToken(t *testing.T) {
	var got models.CreatePostRequest
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/create_post", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer alice@example.com" {
			writeDetail(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Post created successfully"})
	})

	_, err := a.CreatePost(context.Background(), models.CreatePostRequest{Title: "hello", Description: "world"})
	require.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken("alice@example.com")
	msg, err := a.CreatePost(context.Background(), models.CreatePostRequest{Title: "hello", Description: "world"})
	require.NoError(t, err)
	assert.Equal(t, "Post created successfully", msg)
	assert.Equal(t, "hello", got.Title)
}

func TestListPosts(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "Bearer alice@example.com", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PostsResponse{
			Posts:  []models.Post{{PostID: 1, UserID: 7, Title: "hello", Description: "world"}},
			Length: 1,
		})
	})
	a.SetToken("alice@example.com")

	posts, err := a.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hello", posts[0].Title)
}

func TestVersion(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	})

	v, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)
}

func TestMapHTTPError_UnknownStatusKeepsCode(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	_, err := a.Version(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "418")
	for _, target := range []error{ErrBadRequest, ErrUnauthorized, ErrNotFound, ErrConflict, ErrInvalidData, ErrInternalServerError} {
		assert.False(t, errors.Is(err, target))
	}
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, "User not found", errorDetail([]byte(`{"detail":"User not found"}`)))
	assert.Equal(t, "plain failure", errorDetail([]byte("plain failure\n")))
	assert.Equal(t, "", errorDetail(nil))
}
