package service

import (
	"context"
	"log"
	"time"

	"fotogram/internal/model"
	"fotogram/internal/pagination"
	"fotogram/internal/repository"
)

// FeedService fronts the relationship query engine. Each call resolves the
// subject, then issues exactly one windowed, ordered query whose author set
// is computed as a semi-join inside the store. There is no application-level
// fan-out and no per-row follow-up query.
type FeedService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewFeedService(postRepo repository.PostRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Feed returns the reverse-chronological union of the subject's own posts
// and posts authored by everyone the subject follows.
func (s *FeedService) Feed(ctx context.Context, userID int64, w pagination.Window) ([]model.Post, error) {
	if err := s.resolveSubject(ctx, userID); err != nil {
		return nil, err
	}

	startTime := time.Now()
	posts, err := s.postRepo.ListFeed(ctx, userID, w.Offset, w.Limit)
	if err != nil {
		return nil, err
	}

	log.Printf("[FeedService] Feed OK: user=%d posts=%d offset=%d limit=%d duration=%v",
		userID, len(posts), w.Offset, w.Limit, time.Since(startTime))
	return posts, nil
}

// FollowingPosts is the feed minus the subject's own posts.
func (s *FeedService) FollowingPosts(ctx context.Context, userID int64, w pagination.Window) ([]model.Post, error) {
	if err := s.resolveSubject(ctx, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListFollowingPosts(ctx, userID, w.Offset, w.Limit)
}

// FollowerPosts returns posts authored by the subject's followers.
func (s *FeedService) FollowerPosts(ctx context.Context, userID int64, w pagination.Window) ([]model.Post, error) {
	if err := s.resolveSubject(ctx, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListFollowerPosts(ctx, userID, w.Offset, w.Limit)
}

// resolveSubject fails with ErrUserNotFound for an unknown subject id so
// listings never silently return empty for a user that does not exist.
func (s *FeedService) resolveSubject(ctx context.Context, userID int64) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrUserNotFound
	}
	return nil
}
