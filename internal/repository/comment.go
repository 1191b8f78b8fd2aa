package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fotogram/internal/model"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, postID, authorID int64, text string) (*model.Comment, error) {
	query := `
		INSERT INTO comments (post_id, author_id, comment)
		VALUES ($1, $2, $3)
		RETURNING id, post_id, author_id, comment, created_at
	`

	var comment model.Comment
	err := r.db.GetContext(ctx, &comment, query, postID, authorID, text)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID int64, offset, limit int) ([]model.Comment, error) {
	query := `
		SELECT id, post_id, author_id, comment, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`

	comments := []model.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, postID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return comments, nil
}
