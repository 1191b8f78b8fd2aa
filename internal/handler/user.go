package handler

import (
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

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Index handles GET /users: all users ordered by id, paginated.
func (h *UserHandler) Index(w http.ResponseWriter, r *http.Request) {
	window := pagination.FromQuery(r.URL.Query())

	users, err := h.userService.List(r.Context(), window)
	if err != nil {
		log.Printf("[ERROR] Index users handler: %v", err)
		httputil.WriteInternalError(w)
		return
	}

	httputil.WritePaginated(w, http.StatusOK, users, window.Offset, window.Limit)
}

// Show handles GET /users/{id}.
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w)
			return
		}
		log.Printf("[ERROR] Show user handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, user)
}
