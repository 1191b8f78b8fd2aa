package handler

import (
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

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Like handles POST /post/{id}/like. Liking twice is indistinguishable
// from liking once.
func (h *LikeHandler) Like(w http.ResponseWriter, r *http.Request) {
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

	if err := h.likeService.Like(r.Context(), userID, postID); err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w)
			return
		}
		log.Printf("[ERROR] Like handler: user=%d post=%d err=%v", userID, postID, err)
		httputil.WriteInternalError(w)
		return
	}

	httputil.WriteSuccess(w, http.StatusCreated, nil)
}

// Likes handles GET /post/{id}/likes.
func (h *LikeHandler) Likes(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	likes, err := h.likeService.ListLikes(r.Context(), postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w)
			return
		}
		log.Printf("[ERROR] Likes handler: post=%d err=%v", postID, err)
		httputil.WriteInternalError(w)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, likes)
}
