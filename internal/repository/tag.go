package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

// EnsureByText upserts each tag text and returns the row ids in input order.
// The DO UPDATE arm is a no-op touch so RETURNING always yields the id, for
// fresh and pre-existing rows alike.
func (r *tagRepository) EnsureByText(ctx context.Context, tx *sqlx.Tx, texts []string) ([]int64, error) {
	if len(texts) == 0 {
		return []int64{}, nil
	}

	query := `
		INSERT INTO tags (text)
		VALUES ($1)
		ON CONFLICT (text) DO UPDATE SET text = EXCLUDED.text
		RETURNING id
	`

	ids := make([]int64, 0, len(texts))
	seen := make(map[string]struct{}, len(texts))
	for _, text := range texts {
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}

		var id int64
		if err := tx.GetContext(ctx, &id, query, text); err != nil {
			return nil, fmt.Errorf("upsert tag %q: %w", text, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
