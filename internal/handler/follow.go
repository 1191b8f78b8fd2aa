package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fotogram/internal/httputil"
	"fotogram/internal/model"
	"fotogram/internal/pagination"
	"fotogram/internal/service"
	"fotogram/internal/transport/http/middleware"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow handles POST /users/{id}/follow. The follower is always the
// authenticated caller; following an already-followed user succeeds.
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w)
		return
	}

	followeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	if err := h.followService.Follow(r.Context(), followerID, followeeID); err != nil {
		switch {
		case errors.Is(err, model.ErrCannotFollowSelf):
			httputil.WriteBadRequest(w)
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w)
		default:
			log.Printf("[ERROR] Follow handler: %v", err)
			httputil.WriteInternalError(w)
		}
		return
	}

	httputil.WriteSuccess(w, http.StatusCreated, nil)
}

// Unfollow handles DELETE /users/{id}/follow.
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w)
		return
	}

	followeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	if err := h.followService.Unfollow(r.Context(), followerID, followeeID); err != nil {
		if errors.Is(err, model.ErrNotFollowing) {
			httputil.WriteNotFound(w)
			return
		}
		log.Printf("[ERROR] Unfollow handler: %v", err)
		httputil.WriteInternalError(w)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, nil)
}

// Followers handles GET /users/{id}/followers.
func (h *FollowHandler) Followers(w http.ResponseWriter, r *http.Request) {
	h.listEdges(w, r, h.followService.Followers)
}

// Following handles GET /users/{id}/following.
func (h *FollowHandler) Following(w http.ResponseWriter, r *http.Request) {
	h.listEdges(w, r, h.followService.Following)
}

// listEdges shares the subject-resolution and pagination plumbing between
// the two symmetric listings.
func (h *FollowHandler) listEdges(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, userID int64, window pagination.Window) ([]model.UserSummary, error),
) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	window := pagination.FromQuery(r.URL.Query())

	users, err := list(r.Context(), userID, window)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w)
			return
		}
		log.Printf("[ERROR] Follow listing handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w)
		return
	}

	httputil.WritePaginated(w, http.StatusOK, users, window.Offset, window.Limit)
}
