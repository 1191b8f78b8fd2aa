package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fotogram/internal/model"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create records a like fact. A duplicate (user, post) pair is absorbed by
// ON CONFLICT DO NOTHING: the call succeeds with inserted == false, so
// repeated likes and insert races both resolve to a single row.
func (r *likeRepository) Create(ctx context.Context, userID, postID int64) (bool, error) {
	query := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to create like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *likeRepository) ListByPost(ctx context.Context, postID int64) ([]model.Like, error) {
	query := `
		SELECT id, user_id, post_id, created_at
		FROM likes
		WHERE post_id = $1
		ORDER BY id
	`

	likes := []model.Like{}
	err := r.db.SelectContext(ctx, &likes, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	return likes, nil
}
