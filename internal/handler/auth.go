package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"fotogram/internal/httputil"
	"fotogram/internal/model"
	"fotogram/internal/service"
)

type AuthHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewAuthHandler(userService *service.UserService, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
	}
}

// SignUp handles POST /users/sign_up.
// A failed sign-up (validation or duplicate username) fails the whole
// request with success:false and no partial user persisted.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	user, err := h.userService.SignUp(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidSignUp), errors.Is(err, model.ErrUsernameExists):
			httputil.WriteInternalError(w)
		default:
			log.Printf("[ERROR] SignUp handler: %v", err)
			httputil.WriteInternalError(w)
		}
		return
	}

	httputil.WriteSuccess(w, http.StatusCreated, user.ID)
}

// LogIn handles POST /users/log_in.
// Returns a signed access token; bad credentials yield a bare 401 with no
// detail about which part failed.
func (h *AuthHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	var req model.LogInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w)
		return
	}

	user, err := h.userService.LogIn(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			httputil.WriteUnauthorized(w)
			return
		}
		log.Printf("[ERROR] LogIn handler: %v", err)
		httputil.WriteInternalError(w)
		return
	}

	token, err := h.authService.GenerateAccessToken(user.ID)
	if err != nil {
		log.Printf("[ERROR] LogIn token generation: user=%d err=%v", user.ID, err)
		httputil.WriteInternalError(w)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, token)
}
