package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/app"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoPrincipal)
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	post, err := h.services.PostService.CreatePost(ctx, principal, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", post.PostID).Int64("user_id", post.UserID).Msg("post created")
	writeMessage(w, r, app.MsgPostCreated)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoPrincipal)
		return
	}

	posts, err := h.services.PostService.ListPosts(ctx, principal)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	writeJSON(w, r, models.PostsResponse{Posts: posts, Length: len(posts)}, http.StatusOK)
}
