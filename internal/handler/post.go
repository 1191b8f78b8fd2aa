package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fotogram/internal/httputil"
	"fotogram/internal/model"
	"fotogram/internal/service"
	"fotogram/internal/transport/http/middleware"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create handles POST /post/create. The author is always the authenticated
// caller, never a client-supplied id. A missing or undecodable image fails
// the whole request; nothing is persisted.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w)
		return
	}

	var req model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	post, err := h.postService.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoImageProvided), errors.Is(err, model.ErrInvalidImage):
			httputil.WriteInternalError(w)
		default:
			log.Printf("[ERROR] Create post handler: user=%d err=%v", userID, err)
			httputil.WriteInternalError(w)
		}
		return
	}

	httputil.WriteSuccess(w, http.StatusCreated, post)
}

// Show handles GET /post/{id}: detail view with tags and tagged users.
func (h *PostHandler) Show(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	post, err := h.postService.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w)
			return
		}
		log.Printf("[ERROR] Show post handler: post=%d err=%v", postID, err)
		httputil.WriteInternalError(w)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, post)
}

// Update handles PATCH /post/{id}/update with partial-update semantics:
// only supplied keys are touched, supplied tag sets are fully replaced.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w)
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	var req model.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	post, err := h.postService.Update(r.Context(), userID, postID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w)
		case errors.Is(err, model.ErrNotPostOwner):
			httputil.WriteUnauthorized(w)
		default:
			log.Printf("[ERROR] Update post handler: post=%d err=%v", postID, err)
			httputil.WriteInternalError(w)
		}
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, post)
}
