package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fotogram/internal/handler"
	"fotogram/internal/httputil"
	authmw "fotogram/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	FollowHandler  *handler.FollowHandler
	FeedHandler    *handler.FeedHandler
	PostHandler    *handler.PostHandler
	LikeHandler    *handler.LikeHandler
	CommentHandler *handler.CommentHandler
	RateLimiter    *authmw.RateLimiter
	JWTSecret      string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public auth routes, rate limited per IP
	r.Group(func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Middleware)
		}
		r.Post("/users/sign_up", cfg.AuthHandler.SignUp)
		r.Post("/users/log_in", cfg.AuthHandler.LogIn)
	})

	// Public listing and detail routes
	r.Route("/users", func(r chi.Router) {
		r.Get("/", cfg.UserHandler.Index)
		r.Get("/{id}", cfg.UserHandler.Show)
		r.Get("/{id}/followers", cfg.FollowHandler.Followers)
		r.Get("/{id}/following", cfg.FollowHandler.Following)
		r.Get("/{id}/feed", cfg.FeedHandler.Feed)
		r.Get("/{id}/following_posts", cfg.FeedHandler.FollowingPosts)
		r.Get("/{id}/followers_posts", cfg.FeedHandler.FollowerPosts)
	})

	r.Get("/post/{id}", cfg.PostHandler.Show)
	r.Get("/post/{id}/likes", cfg.LikeHandler.Likes)
	r.Get("/post/{id}/comments", cfg.CommentHandler.List)

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Post("/users/{id}/follow", cfg.FollowHandler.Follow)
		r.Delete("/users/{id}/follow", cfg.FollowHandler.Unfollow)

		r.Post("/post/create", cfg.PostHandler.Create)
		r.Patch("/post/{id}/update", cfg.PostHandler.Update)
		r.Post("/post/{id}/like", cfg.LikeHandler.Like)
		r.Post("/post/{id}/comment", cfg.CommentHandler.Create)
	})

	return r
}
