package http

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/crypto"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBoard wires the real services over a fresh in-memory database.
func newBoard(t *testing.T) (*chi.Mux, *store.Storages) {
	t.Helper()

	db := newTestDB(t)
	storages := store.NewStorages(db, logger.Nop())
	services, err := service.NewServices(storages, config.App{
		Version:               "test",
		PasswordHashAlgorithm: crypto.AlgorithmBcrypt,
		TokenMode:             config.TokenModeEmail,
	}, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, logger.Nop(), WithConnAcquirer(db)).Init(), storages
}

func register(t *testing.T, router http.Handler, name, email, password string) int {
	t.Helper()
	body := `{"name":"` + name + `","email":"` + email + `","password":"` + password + `"}`
	return doRequest(t, router, http.MethodPost, "/create_user", "application/json", body).Code
}

func TestBoard_RegisterThenLogin(t *testing.T) {
	router, _ := newBoard(t)

	require.Equal(t, http.StatusOK, register(t, router, "alice", "a@x.com", "secret1"))

	rec := doRequest(t, router, http.MethodPost, "/token", "application/json", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"a@x.com","token_type":"bearer"}`, rec.Body.String())
}

func TestBoard_LoginFailures(t *testing.T) {
	router, _ := newBoard(t)
	require.Equal(t, http.StatusOK, register(t, router, "alice", "a@x.com", "secret1"))

	rec := doRequest(t, router, http.MethodPost, "/token", "application/json", `{"email":"b@x.com","password":"secret1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeDetail(t, rec))

	rec = doRequest(t, router, http.MethodPost, "/token", "application/json", `{"email":"a@x.com","password":"wrong!"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Incorrect password", decodeDetail(t, rec))
}

func TestBoard_DuplicateRegistration(t *testing.T) {
	router, _ := newBoard(t)

	require.Equal(t, http.StatusOK, register(t, router, "alice", "a@x.com", "secret1"))

	rec := doRequest(t, router, http.MethodPost, "/create_user", "application/json",
		`{"name":"alice2","email":"a@x.com","password":"secret2"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User with this email exist", decodeDetail(t, rec))
}

func TestBoard_ConcurrentRegistrationSameEmail(t *testing.T) {
	router, _ := newBoard(t)

	const n = 8
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes[i] = register(t, router, "alice", "race@x.com", "secret1")
		}()
	}
	wg.Wait()

	var created, conflicts int
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			created++
		case http.StatusConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, n-1, conflicts)
}

func TestBoard_CreatePost(t *testing.T) {
	router, storages := newBoard(t)
	ctx := context.Background()

	require.Equal(t, http.StatusOK, register(t, router, "alice", "a@x.com", "secret1"))
	user, err := storages.UserRepository.FindUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	before, err := storages.PostRepository.FindPostsByUserID(ctx, user.UserID)
	require.NoError(t, err)
	require.Empty(t, before)

	rec := doRequest(t, router, http.MethodPost, "/create_post", "application/json",
		`{"title":"T","description":"D"}`, "Authorization", "Bearer a@x.com")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Post created successfully", decodeMessage(t, rec))

	after, err := storages.PostRepository.FindPostsByUserID(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, user.UserID, after[0].UserID)
	assert.Equal(t, "T", after[0].Title)
	assert.Equal(t, "D", after[0].Description)

	rec = doRequest(t, router, http.MethodGet, "/posts", "", "", "Authorization", "Bearer a@x.com")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"length":1`)
}

func TestBoard_CreatePostWithUnknownToken(t *testing.T) {
	router, storages := newBoard(t)
	ctx := context.Background()

	require.Equal(t, http.StatusOK, register(t, router, "alice", "a@x.com", "secret1"))
	user, err := storages.UserRepository.FindUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPost, "/create_post", "application/json",
		`{"title":"T","description":"D"}`, "Authorization", "Bearer nobody@x.com")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeDetail(t, rec))

	posts, err := storages.PostRepository.FindPostsByUserID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestBoard_ValidationRejected(t *testing.T) {
	router, _ := newBoard(t)

	assert.Equal(t, http.StatusUnprocessableEntity, register(t, router, "al", "a@x.com", "secret1"))
	assert.Equal(t, http.StatusUnprocessableEntity, register(t, router, "alice", "a@x.com", "12345"))
	assert.Equal(t, http.StatusUnprocessableEntity, register(t, router, "alice", "not-an-email", "secret1"))
}
