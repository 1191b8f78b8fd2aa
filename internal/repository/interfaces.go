package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fotogram/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, offset, limit int) ([]model.User, error)
	// GetIDsByUsernames resolves usernames to ids. Unknown usernames are
	// simply absent from the result, never an error.
	GetIDsByUsernames(ctx context.Context, usernames []string) ([]int64, error)
}

type FollowRepository interface {
	// Create inserts a follow edge. Returns false without error when the
	// edge already exists (uniqueness races collapse to a no-op).
	Create(ctx context.Context, followerID, followeeID int64) (bool, error)
	Delete(ctx context.Context, followerID, followeeID int64) error
	ListFollowers(ctx context.Context, userID int64, offset, limit int) ([]model.UserSummary, error)
	ListFollowing(ctx context.Context, userID int64, offset, limit int) ([]model.UserSummary, error)
}

type PostRepository interface {
	Insert(ctx context.Context, tx *sqlx.Tx, authorID int64, description *string, imageURL, imageKey string) (*model.Post, error)
	UpdateDescription(ctx context.Context, tx *sqlx.Tx, postID int64, description string) error
	// ReplaceTags and ReplaceTaggedUsers implement full-replace semantics:
	// delete-all-then-insert, not a merge.
	ReplaceTags(ctx context.Context, tx *sqlx.Tx, postID int64, tagIDs []int64) error
	ReplaceTaggedUsers(ctx context.Context, tx *sqlx.Tx, postID int64, userIDs []int64) error
	GetByID(ctx context.Context, postID int64) (*model.Post, error)
	GetTags(ctx context.Context, postID int64) ([]string, error)
	GetTaggedUsers(ctx context.Context, postID int64) ([]model.UserSummary, error)
	Exists(ctx context.Context, postID int64) (bool, error)
	// Feed queries: one set-membership subquery plus one ordered window,
	// never a per-row fan-out.
	ListFeed(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error)
	ListFollowingPosts(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error)
	ListFollowerPosts(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error)
}

type TagRepository interface {
	// EnsureByText upserts tags by text and returns their ids in input order.
	EnsureByText(ctx context.Context, tx *sqlx.Tx, texts []string) ([]int64, error)
}

type LikeRepository interface {
	// Create inserts a like fact. Returns false without error when the
	// (user, post) pair is already present.
	Create(ctx context.Context, userID, postID int64) (bool, error)
	ListByPost(ctx context.Context, postID int64) ([]model.Like, error)
}

type CommentRepository interface {
	Create(ctx context.Context, postID, authorID int64, text string) (*model.Comment, error)
	ListByPost(ctx context.Context, postID int64, offset, limit int) ([]model.Comment, error)
}
