package model

import (
	"errors"
	"time"
)

// Follow is a directed edge: follower follows followee. The id preserves
// insertion order, which the follower/following listings page over.
type Follow struct {
	ID         int64     `db:"id" json:"-"`
	FollowerID int64     `db:"follower_id" json:"follower_id"`
	FolloweeID int64     `db:"followee_id" json:"followee_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

var (
	ErrNotFollowing     = errors.New("not following this user")
	ErrCannotFollowSelf = errors.New("cannot follow yourself")
)
