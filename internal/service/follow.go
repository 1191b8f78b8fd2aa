package service

import (
	"context"
	"log"

	"fotogram/internal/model"
	"fotogram/internal/pagination"
	"fotogram/internal/repository"
)

// FollowService manages follow edges and the follower/following listings.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the edge follower -> followee. Following a user twice is a
// no-op success: the store's uniqueness constraint absorbs the duplicate, so
// concurrent follow attempts on the same pair converge on one edge.
// Self-follows are rejected; the stored graph never contains them.
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return model.ErrCannotFollowSelf
	}

	exists, err := s.userRepo.Exists(ctx, followeeID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrUserNotFound
	}

	inserted, err := s.followRepo.Create(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !inserted {
		log.Printf("[FollowService] Duplicate follow ignored: follower=%d followee=%d", followerID, followeeID)
	}

	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	return s.followRepo.Delete(ctx, followerID, followeeID)
}

// Followers lists users who follow userID, in edge insertion order. An
// unknown subject id is a NotFound, never an empty list.
func (s *FollowService) Followers(ctx context.Context, userID int64, w pagination.Window) ([]model.UserSummary, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	return s.followRepo.ListFollowers(ctx, userID, w.Offset, w.Limit)
}

// Following lists users that userID follows, in edge insertion order.
func (s *FollowService) Following(ctx context.Context, userID int64, w pagination.Window) ([]model.UserSummary, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	return s.followRepo.ListFollowing(ctx, userID, w.Offset, w.Limit)
}
