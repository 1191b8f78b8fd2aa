// Package pagination is the single point of offset/limit interpretation.
// Every listing endpoint normalizes its window here before any query runs;
// out-of-range values are clamped, never rejected.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Window is a normalized [Offset, Offset+Limit) slice of an ordered result set.
type Window struct {
	Offset int
	Limit  int
}

// Normalize clamps raw offset/limit values into a valid window.
// Offset < 0 becomes 0; limit < 1 falls back to the default; limit above
// MaxLimit is capped.
func Normalize(offset, limit int) Window {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Window{Offset: offset, Limit: limit}
}

// FromQuery reads offset/limit query parameters. Missing or non-numeric
// values take the defaults; everything else is clamped by Normalize.
func FromQuery(values url.Values) Window {
	offset := 0
	if raw := values.Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			offset = parsed
		}
	}

	limit := DefaultLimit
	if raw := values.Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	return Normalize(offset, limit)
}
