package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"
	"time"

	"fotogram/internal/config"
	"fotogram/internal/database"
	"fotogram/internal/handler"
	"fotogram/internal/redis"
	"fotogram/internal/repository"
	"fotogram/internal/service"
	authmw "fotogram/internal/transport/http/middleware"
)

func Run() error {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Redis backs only the auth rate limiter; the server runs without it.
	var rateLimiter *authmw.RateLimiter
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()
		rateLimiter = authmw.NewRateLimiter(redisClient, cfg.RateLimitRequests,
			time.Duration(cfg.RateLimitWindow)*time.Second)
	} else {
		log.Println("REDIS_URL not set, auth rate limiting disabled")
	}

	mediaService, err := service.NewMediaService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to init media service: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(cfg)
	followService := service.NewFollowService(followRepo, userRepo)
	feedService := service.NewFeedService(postRepo, userRepo)
	postService := service.NewPostService(postRepo, userRepo, tagRepo, mediaService, db)
	likeService := service.NewLikeService(likeRepo, postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)

	router := NewRouter(RouterConfig{
		AuthHandler:    handler.NewAuthHandler(userService, authService),
		UserHandler:    handler.NewUserHandler(userService),
		FollowHandler:  handler.NewFollowHandler(followService),
		FeedHandler:    handler.NewFeedHandler(feedService),
		PostHandler:    handler.NewPostHandler(postService),
		LikeHandler:    handler.NewLikeHandler(likeService),
		CommentHandler: handler.NewCommentHandler(commentService),
		RateLimiter:    rateLimiter,
		JWTSecret:      cfg.JWTSecret,
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)
	return stdhttp.ListenAndServe(addr, router)
}
