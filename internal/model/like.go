package model

import "time"

// Like is a per-user-per-post fact. The (user_id, post_id) pair is unique;
// repeated likes are a no-op rather than an error.
type Like struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
