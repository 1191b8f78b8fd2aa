package model

import (
	"errors"
	"time"
)

// Post represents a user's post. Author is immutable after creation and
// created_at is set once by the database.
type Post struct {
	ID          int64     `db:"id" json:"id"`
	AuthorID    int64     `db:"author_id" json:"author_id"`
	Description *string   `db:"description" json:"description"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	ImageKey    string    `db:"image_key" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`

	// Hydrated on the detail view only, via batch queries.
	Tags        []string      `json:"tags,omitempty"`
	TaggedUsers []UserSummary `json:"tagged_users,omitempty"`
}

// CreatePostRequest is the body for POST /post/create. Image is a base64
// data URI and is required; the whole request fails without it.
type CreatePostRequest struct {
	Image       string   `json:"image"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	UserTags    []string `json:"user_tags"`
}

// UpdatePostRequest has partial-update semantics: nil fields are left
// untouched, present tag/user-tag sets fully replace the stored sets.
type UpdatePostRequest struct {
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	UserTags    *[]string `json:"user_tags"`
}

const MaxPostImageSize = 10 * 1024 * 1024 // decoded bytes

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostOwner    = errors.New("not the owner of this post")
	ErrNoImageProvided = errors.New("image is required")
	ErrInvalidImage    = errors.New("invalid image payload")
)
