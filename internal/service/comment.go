package service

import (
	"context"
	"strings"

	"fotogram/internal/model"
	"fotogram/internal/pagination"
	"fotogram/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *CommentService) Create(ctx context.Context, postID, authorID int64, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.ErrEmptyComment
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrPostNotFound
	}

	return s.commentRepo.Create(ctx, postID, authorID, text)
}

func (s *CommentService) ListByPost(ctx context.Context, postID int64, w pagination.Window) ([]model.Comment, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrPostNotFound
	}

	return s.commentRepo.ListByPost(ctx, postID, w.Offset, w.Limit)
}
