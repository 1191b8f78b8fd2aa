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
	"fotogram/internal/pagination"
	"fotogram/internal/service"
	"fotogram/internal/transport/http/middleware"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create handles POST /post/{id}/comment.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	comment, err := h.commentService.Create(r.Context(), postID, userID, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyComment):
			httputil.WriteBadRequest(w)
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w)
		default:
			log.Printf("[ERROR] Create comment handler: post=%d err=%v", postID, err)
			httputil.WriteInternalError(w)
		}
		return
	}

	httputil.WriteSuccess(w, http.StatusCreated, comment)
}

// List handles GET /post/{id}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	window := pagination.FromQuery(r.URL.Query())

	comments, err := h.commentService.ListByPost(r.Context(), postID, window)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w)
			return
		}
		log.Printf("[ERROR] List comments handler: post=%d err=%v", postID, err)
		httputil.WriteInternalError(w)
		return
	}

	httputil.WritePaginated(w, http.StatusOK, comments, window.Offset, window.Limit)
}
