package service

import (
	"context"
	"log"

	"fotogram/internal/model"
	"fotogram/internal/repository"
)

// LikeService is the like ledger: insert-or-no-op facts, never
// insert-then-swallow-the-error.
type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// Like records that userID likes postID. Calling it twice is equivalent to
// calling it once; insert races resolve through the uniqueness constraint.
func (s *LikeService) Like(ctx context.Context, userID, postID int64) error {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrPostNotFound
	}

	inserted, err := s.likeRepo.Create(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !inserted {
		log.Printf("[LikeService] Duplicate like ignored: user=%d post=%d", userID, postID)
	}

	return nil
}

// ListLikes returns the like records for a post.
func (s *LikeService) ListLikes(ctx context.Context, postID int64) ([]model.Like, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrPostNotFound
	}

	return s.likeRepo.ListByPost(ctx, postID)
}
