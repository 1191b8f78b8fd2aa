package service

import (
	"context"
	"errors"
	"testing"

	"fotogram/internal/model"
	"fotogram/internal/pagination"
)

func TestCreateComment(t *testing.T) {
	postRepo := &mockPostRepository{
		existsFn: func(ctx context.Context, postID int64) (bool, error) { return postID == 10, nil },
	}
	svc := NewCommentService(&mockCommentRepository{}, postRepo)

	t.Run("success", func(t *testing.T) {
		comment, err := svc.Create(context.Background(), 10, 1, "nice shot")
		if err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
		if comment.PostID != 10 || comment.AuthorID != 1 || comment.Comment != "nice shot" {
			t.Errorf("Create() = %+v, want post=10 author=1 text=%q", comment, "nice shot")
		}
	})

	t.Run("blank text", func(t *testing.T) {
		_, err := svc.Create(context.Background(), 10, 1, "   ")
		if !errors.Is(err, model.ErrEmptyComment) {
			t.Fatalf("Create() error = %v, want ErrEmptyComment", err)
		}
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := svc.Create(context.Background(), 99, 1, "hello")
		if !errors.Is(err, model.ErrPostNotFound) {
			t.Fatalf("Create() error = %v, want ErrPostNotFound", err)
		}
	})
}

func TestListComments(t *testing.T) {
	commentRepo := &mockCommentRepository{
		listByPostFn: func(ctx context.Context, postID int64, offset, limit int) ([]model.Comment, error) {
			return []model.Comment{{ID: 1, PostID: postID, AuthorID: 2, Comment: "first"}}, nil
		},
	}
	postRepo := &mockPostRepository{
		existsFn: func(ctx context.Context, postID int64) (bool, error) { return postID == 10, nil },
	}
	svc := NewCommentService(commentRepo, postRepo)

	comments, err := svc.ListByPost(context.Background(), 10, pagination.Window{Offset: 0, Limit: 20})
	if err != nil {
		t.Fatalf("ListByPost() unexpected error: %v", err)
	}
	if len(comments) != 1 || comments[0].Comment != "first" {
		t.Errorf("ListByPost() = %+v, want single comment %q", comments, "first")
	}

	_, err = svc.ListByPost(context.Background(), 99, pagination.Window{Offset: 0, Limit: 20})
	if !errors.Is(err, model.ErrPostNotFound) {
		t.Fatalf("ListByPost() error = %v, want ErrPostNotFound", err)
	}
}
