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
)

type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// Feed handles GET /users/{id}/feed: the subject's own posts plus posts by
// everyone they follow, newest first.
func (h *FeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	h.listPosts(w, r, h.feedService.Feed)
}

// FollowingPosts handles GET /users/{id}/following_posts.
func (h *FeedHandler) FollowingPosts(w http.ResponseWriter, r *http.Request) {
	h.listPosts(w, r, h.feedService.FollowingPosts)
}

// FollowerPosts handles GET /users/{id}/followers_posts.
func (h *FeedHandler) FollowerPosts(w http.ResponseWriter, r *http.Request) {
	h.listPosts(w, r, h.feedService.FollowerPosts)
}

func (h *FeedHandler) listPosts(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, userID int64, window pagination.Window) ([]model.Post, error),
) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	window := pagination.FromQuery(r.URL.Query())

	posts, err := list(r.Context(), userID, window)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w)
			return
		}
		log.Printf("[ERROR] Feed listing handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w)
		return
	}

	httputil.WritePaginated(w, http.StatusOK, posts, window.Offset, window.Limit)
}
