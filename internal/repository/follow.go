package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fotogram/internal/model"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts a follow edge. Concurrent attempts on the same pair are
// serialized by the uniqueness constraint; the loser sees rowsAffected == 0
// and the outcome is idempotent.
func (r *followRepository) Create(ctx context.Context, followerID, followeeID int64) (bool, error) {
	query := `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("failed to create follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID int64) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`
	result, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNotFollowing
	}

	return nil
}

// ListFollowers returns users following userID, ordered by the follow
// edge's insertion order (edge id), windowed by offset/limit.
func (r *followRepository) ListFollowers(ctx context.Context, userID int64, offset, limit int) ([]model.UserSummary, error) {
	query := `
		SELECT u.id, u.username
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.followee_id = $1
		ORDER BY f.id
		OFFSET $2 LIMIT $3
	`

	users := []model.UserSummary{}
	err := r.db.SelectContext(ctx, &users, query, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return users, nil
}

// ListFollowing is symmetric to ListFollowers: users that userID follows.
func (r *followRepository) ListFollowing(ctx context.Context, userID int64, offset, limit int) ([]model.UserSummary, error) {
	query := `
		SELECT u.id, u.username
		FROM follows f
		JOIN users u ON u.id = f.followee_id
		WHERE f.follower_id = $1
		ORDER BY f.id
		OFFSET $2 LIMIT $3
	`

	users := []model.UserSummary{}
	err := r.db.SelectContext(ctx, &users, query, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}

	return users, nil
}
