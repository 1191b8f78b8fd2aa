package model

// Tag is a unique text label. Tags are created lazily on first reference
// (upsert-by-text) and never deleted.
type Tag struct {
	ID   int64  `db:"id" json:"id"`
	Text string `db:"text" json:"text"`
}
