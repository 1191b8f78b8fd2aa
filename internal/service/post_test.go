package service

import (
	"context"
	"errors"
	"testing"

	"fotogram/internal/model"
)

func TestCreatePostRequiresImage(t *testing.T) {
	uploader := &mockUploader{}
	svc := NewPostService(&mockPostRepository{}, &mockUserRepository{}, &mockTagRepository{}, uploader, nil)

	_, err := svc.Create(context.Background(), 1, model.CreatePostRequest{Description: strPtr("no picture")})
	if !errors.Is(err, model.ErrNoImageProvided) {
		t.Fatalf("Create() error = %v, want ErrNoImageProvided", err)
	}
	if uploader.uploadCalls != 0 {
		t.Error("Create() attempted an upload with no image")
	}
}

func TestCreatePostUploadFailure(t *testing.T) {
	uploader := &mockUploader{
		uploadFn: func(ctx context.Context, dataURI string) (*UploadResult, error) {
			return nil, model.ErrInvalidImage
		},
	}
	svc := NewPostService(&mockPostRepository{}, &mockUserRepository{}, &mockTagRepository{}, uploader, nil)

	_, err := svc.Create(context.Background(), 1, model.CreatePostRequest{Image: "not-an-image"})
	if !errors.Is(err, model.ErrInvalidImage) {
		t.Fatalf("Create() error = %v, want ErrInvalidImage", err)
	}
}

func TestAttachUserTagsDropsUnknownUsernames(t *testing.T) {
	userRepo := &mockUserRepository{
		getIDsByUsernamesFn: func(ctx context.Context, usernames []string) ([]int64, error) {
			// only "bob" resolves
			return []int64{2}, nil
		},
	}
	postRepo := &mockPostRepository{}
	svc := NewPostService(postRepo, userRepo, &mockTagRepository{}, &mockUploader{}, nil)

	err := svc.attachUserTags(context.Background(), nil, 10, []string{"bob", "ghost", "phantom"})
	if err != nil {
		t.Fatalf("attachUserTags() unexpected error: %v", err)
	}

	if len(postRepo.replaceTaggedUsersCalls) != 1 {
		t.Fatalf("attachUserTags() made %d replace calls, want 1", len(postRepo.replaceTaggedUsersCalls))
	}
	call := postRepo.replaceTaggedUsersCalls[0]
	if call.PostID != 10 {
		t.Errorf("attachUserTags() replaced on post %d, want 10", call.PostID)
	}
	if len(call.UserIDs) != 1 || call.UserIDs[0] != 2 {
		t.Errorf("attachUserTags() attached %v, want only the resolved id [2]", call.UserIDs)
	}
}

func TestAttachTagsReplacesWholeSet(t *testing.T) {
	postRepo := &mockPostRepository{}
	svc := NewPostService(postRepo, &mockUserRepository{}, &mockTagRepository{}, &mockUploader{}, nil)

	if err := svc.attachTags(context.Background(), nil, 10, []string{"sunset", "beach"}); err != nil {
		t.Fatalf("attachTags() unexpected error: %v", err)
	}

	if len(postRepo.replaceTagsCalls) != 1 {
		t.Fatalf("attachTags() made %d replace calls, want 1", len(postRepo.replaceTagsCalls))
	}
	if got := postRepo.replaceTagsCalls[0]; len(got.TagIDs) != 2 {
		t.Errorf("attachTags() attached %d tag ids, want 2", len(got.TagIDs))
	}
}

func TestUpdatePostOwnership(t *testing.T) {
	postRepo := &mockPostRepository{
		getByIDFn: func(ctx context.Context, postID int64) (*model.Post, error) {
			if postID != 10 {
				return nil, model.ErrPostNotFound
			}
			return &model.Post{ID: 10, AuthorID: 2}, nil
		},
	}
	svc := NewPostService(postRepo, &mockUserRepository{}, &mockTagRepository{}, &mockUploader{}, nil)

	t.Run("non-owner rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), 1, 10, model.UpdatePostRequest{Description: strPtr("mine now")})
		if !errors.Is(err, model.ErrNotPostOwner) {
			t.Fatalf("Update() error = %v, want ErrNotPostOwner", err)
		}
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := svc.Update(context.Background(), 1, 99, model.UpdatePostRequest{})
		if !errors.Is(err, model.ErrPostNotFound) {
			t.Fatalf("Update() error = %v, want ErrPostNotFound", err)
		}
	})
}

func TestGetByIDHydrates(t *testing.T) {
	postRepo := &mockPostRepository{
		getByIDFn: func(ctx context.Context, postID int64) (*model.Post, error) {
			return &model.Post{ID: postID, AuthorID: 1}, nil
		},
		getTagsFn: func(ctx context.Context, postID int64) ([]string, error) {
			return []string{"sunset"}, nil
		},
		getTaggedUsersFn: func(ctx context.Context, postID int64) ([]model.UserSummary, error) {
			return []model.UserSummary{{ID: 2, Username: "bob"}}, nil
		},
	}
	svc := NewPostService(postRepo, &mockUserRepository{}, &mockTagRepository{}, &mockUploader{}, nil)

	post, err := svc.GetByID(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if len(post.Tags) != 1 || post.Tags[0] != "sunset" {
		t.Errorf("GetByID() tags = %v, want [sunset]", post.Tags)
	}
	if len(post.TaggedUsers) != 1 || post.TaggedUsers[0].Username != "bob" {
		t.Errorf("GetByID() tagged users = %v, want [bob]", post.TaggedUsers)
	}
}

func strPtr(s string) *string { return &s }
