package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The address may omit the scheme, "http" is assumed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs req to /create_user.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var msg models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&msg).
		Post("/create_user")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Message, nil
}

// Login sends the credentials to /token as an OAuth2 password grant form.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	var token models.Token

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": "password",
			"username":   req.Email,
			"password":   req.Password,
		}).
		SetResult(&token).
		Post("/token")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}
	if token.AccessToken == "" {
		return models.Token{}, fmt.Errorf("login: empty access token in response")
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("token_type", token.TokenType).Msg("logged in")
	return token, nil
}

// CreatePost POSTs req to /create_post with the stored bearer token.
func (h *httpServerAdapter) CreatePost(ctx context.Context, req models.CreatePostRequest) (string, error) {
	var msg models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&msg).
		Post("/create_post")
	if err != nil {
		return "", fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Message, nil
}

func (h *httpServerAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts models.PostsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&posts).
		Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts.Posts, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
