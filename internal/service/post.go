package service

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"fotogram/internal/model"
	"fotogram/internal/repository"
)

// PostService owns the post write path: image upload, the transactional
// insert-and-attach, and the full-replace update semantics.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	tagRepo  repository.TagRepository
	uploader Uploader
	db       *sqlx.DB
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	tagRepo repository.TagRepository,
	uploader Uploader,
	db *sqlx.DB,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		tagRepo:  tagRepo,
		uploader: uploader,
		db:       db,
	}
}

// Create persists a new post for the authenticated author. The image is
// required; the post row and both attachment sets commit atomically, so a
// failed attach never leaves an orphaned post. Tagged usernames that do not
// resolve are dropped without error.
func (s *PostService) Create(ctx context.Context, authorID int64, req model.CreatePostRequest) (*model.Post, error) {
	if req.Image == "" {
		return nil, model.ErrNoImageProvided
	}

	upload, err := s.uploader.Upload(ctx, req.Image)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	post, err := s.createInTx(ctx, authorID, req, upload)
	if err != nil {
		// The object is already in storage; remove it so failed writes
		// don't accumulate orphans.
		if delErr := s.uploader.Delete(ctx, upload.Key); delErr != nil {
			log.Printf("[PostService] Orphan image cleanup failed: key=%s err=%v", upload.Key, delErr)
		}
		return nil, err
	}

	return s.hydrate(ctx, post)
}

func (s *PostService) createInTx(ctx context.Context, authorID int64, req model.CreatePostRequest, upload *UploadResult) (*model.Post, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	post, err := s.postRepo.Insert(ctx, tx, authorID, req.Description, upload.URL, upload.Key)
	if err != nil {
		return nil, err
	}

	if err := s.attachTags(ctx, tx, post.ID, req.Tags); err != nil {
		return nil, err
	}

	if err := s.attachUserTags(ctx, tx, post.ID, req.UserTags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return post, nil
}

// Update applies partial-update semantics: only fields present in the
// request are touched. Present tag and user-tag sets are fully replaced,
// not merged.
func (s *PostService) Update(ctx context.Context, userID, postID int64, req model.UpdatePostRequest) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, model.ErrNotPostOwner
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if req.Description != nil {
		if err := s.postRepo.UpdateDescription(ctx, tx, postID, *req.Description); err != nil {
			return nil, err
		}
	}

	if req.Tags != nil {
		if err := s.attachTags(ctx, tx, postID, *req.Tags); err != nil {
			return nil, err
		}
	}

	if req.UserTags != nil {
		if err := s.attachUserTags(ctx, tx, postID, *req.UserTags); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	updated, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, updated)
}

// GetByID returns the detail view with tags and tagged users hydrated.
func (s *PostService) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, post)
}

// attachTags upserts tag rows by text and replaces the post's tag set.
func (s *PostService) attachTags(ctx context.Context, tx *sqlx.Tx, postID int64, texts []string) error {
	tagIDs, err := s.tagRepo.EnsureByText(ctx, tx, texts)
	if err != nil {
		return err
	}
	return s.postRepo.ReplaceTags(ctx, tx, postID, tagIDs)
}

// attachUserTags resolves usernames to ids and replaces the tagged-user
// set. Unknown usernames are intentionally ignored, not an error.
func (s *PostService) attachUserTags(ctx context.Context, tx *sqlx.Tx, postID int64, usernames []string) error {
	userIDs, err := s.userRepo.GetIDsByUsernames(ctx, usernames)
	if err != nil {
		return err
	}
	if len(userIDs) < len(usernames) {
		log.Printf("[PostService] Dropped unknown tagged usernames: post=%d given=%d resolved=%d",
			postID, len(usernames), len(userIDs))
	}
	return s.postRepo.ReplaceTaggedUsers(ctx, tx, postID, userIDs)
}

// hydrate loads the tag and tagged-user sets in two batch queries.
func (s *PostService) hydrate(ctx context.Context, post *model.Post) (*model.Post, error) {
	tags, err := s.postRepo.GetTags(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	post.Tags = tags

	taggedUsers, err := s.postRepo.GetTaggedUsers(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	post.TaggedUsers = taggedUsers

	return post, nil
}
