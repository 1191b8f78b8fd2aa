package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"fotogram/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// postColumns is the listing projection: id, author, description, created_at
// plus the image URL. Tag sets are hydrated separately on the detail view.
const postColumns = `id, author_id, description, image_url, created_at`

// Insert creates the post row. Tag attachments happen in the same
// transaction via ReplaceTags/ReplaceTaggedUsers so a failed attach never
// leaves an orphaned post.
func (r *postRepository) Insert(ctx context.Context, tx *sqlx.Tx, authorID int64, description *string, imageURL, imageKey string) (*model.Post, error) {
	query := `
		INSERT INTO posts (author_id, description, image_url, image_key)
		VALUES ($1, $2, $3, $4)
		RETURNING id, author_id, description, image_url, image_key, created_at, updated_at
	`

	var post model.Post
	err := tx.GetContext(ctx, &post, query, authorID, description, imageURL, imageKey)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) UpdateDescription(ctx context.Context, tx *sqlx.Tx, postID int64, description string) error {
	query := `UPDATE posts SET description = $1, updated_at = NOW() WHERE id = $2`
	result, err := tx.ExecContext(ctx, query, description, postID)
	if err != nil {
		return fmt.Errorf("update description: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}

	return nil
}

// ReplaceTags swaps the post's tag set: delete-all-then-insert, not a merge.
func (r *postRepository) ReplaceTags(ctx context.Context, tx *sqlx.Tx, postID int64, tagIDs []int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM post_tags WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("clear post tags: %w", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO post_tags (post_id, tag_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, query, postID, pq.Array(tagIDs)); err != nil {
		return fmt.Errorf("attach post tags: %w", err)
	}

	return nil
}

// ReplaceTaggedUsers swaps the post's tagged-user set with the same
// full-replace semantics as ReplaceTags.
func (r *postRepository) ReplaceTaggedUsers(ctx context.Context, tx *sqlx.Tx, postID int64, userIDs []int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM post_user_tags WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("clear tagged users: %w", err)
	}

	if len(userIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO post_user_tags (post_id, user_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, query, postID, pq.Array(userIDs)); err != nil {
		return fmt.Errorf("attach tagged users: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	query := `
		SELECT id, author_id, description, image_url, image_key, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post model.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	return &post, nil
}

// GetTags returns the post's tag texts in one batch query.
func (r *postRepository) GetTags(ctx context.Context, postID int64) ([]string, error) {
	query := `
		SELECT t.text
		FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = $1
		ORDER BY t.text
	`

	tags := []string{}
	err := r.db.SelectContext(ctx, &tags, query, postID)
	if err != nil {
		return nil, fmt.Errorf("get post tags: %w", err)
	}

	return tags, nil
}

// GetTaggedUsers returns the post's tagged users in one batch query.
func (r *postRepository) GetTaggedUsers(ctx context.Context, postID int64) ([]model.UserSummary, error) {
	query := `
		SELECT u.id, u.username
		FROM post_user_tags put
		JOIN users u ON u.id = put.user_id
		WHERE put.post_id = $1
		ORDER BY u.id
	`

	users := []model.UserSummary{}
	err := r.db.SelectContext(ctx, &users, query, postID)
	if err != nil {
		return nil, fmt.Errorf("get tagged users: %w", err)
	}

	return users, nil
}

func (r *postRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID)
	if err != nil {
		return false, fmt.Errorf("check post exists: %w", err)
	}
	return exists, nil
}

// ListFeed returns the reverse-chronological union of the user's own posts
// and posts by everyone they follow. The author set is resolved inside the
// query as a semi-join; materializing followee ids in the application tier
// and re-querying loses to this plan on every benchmark run (see
// cmd/benchmark). Ties on created_at break on id DESC so pagination windows
// partition the feed deterministically.
func (r *postRepository) ListFeed(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE author_id IN (SELECT followee_id FROM follows WHERE follower_id = $1)
		   OR author_id = $1
		ORDER BY created_at DESC, id DESC
		OFFSET $2 LIMIT $3
	`

	posts := []model.Post{}
	err := r.db.SelectContext(ctx, &posts, query, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}

	return posts, nil
}

// ListFollowingPosts is the feed without the self arm: only posts authored
// by users that userID follows.
func (r *postRepository) ListFollowingPosts(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE author_id IN (SELECT followee_id FROM follows WHERE follower_id = $1)
		ORDER BY created_at DESC, id DESC
		OFFSET $2 LIMIT $3
	`

	posts := []model.Post{}
	err := r.db.SelectContext(ctx, &posts, query, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list following posts: %w", err)
	}

	return posts, nil
}

// ListFollowerPosts returns posts authored by users who follow userID.
func (r *postRepository) ListFollowerPosts(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE author_id IN (SELECT follower_id FROM follows WHERE followee_id = $1)
		ORDER BY created_at DESC, id DESC
		OFFSET $2 LIMIT $3
	`

	posts := []model.Post{}
	err := r.db.SelectContext(ctx, &posts, query, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list follower posts: %w", err)
	}

	return posts, nil
}
