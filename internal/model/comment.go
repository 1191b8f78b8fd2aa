package model

import (
	"errors"
	"time"
)

// Comment is an annotation on a post, serialized as {id, comment, author, post}.
type Comment struct {
	ID        int64     `db:"id" json:"id"`
	PostID    int64     `db:"post_id" json:"post"`
	AuthorID  int64     `db:"author_id" json:"author"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

type CreateCommentRequest struct {
	Comment string `json:"comment"`
}

var ErrEmptyComment = errors.New("comment text is required")
