package store

import (
	"encoding/base64"
	"errors"
	"fmt"
)

var (
	// ErrInvalidPageToken is returned when a page token cannot be decoded.
	ErrInvalidPageToken = errors.New("page token is invalid")
)

const (
	// DefaultPageLimit is the default number of items per page.
	DefaultPageLimit = 10
	maxPageLimit     = 100
)

// Cursor marks a position in a filtered listing: the ID of the last entity
// the previous page returned. Paging resumes after that entity.
type Cursor struct {
	LastID string
}

// Encode encodes the cursor into an opaque, URL-safe base64 token.
func (c Cursor) Encode() string {
	return base64.URLEncoding.EncodeToString([]byte(c.LastID))
}

// DecodePageToken decodes a base64 page token into a Cursor.
func DecodePageToken(token string) (*Cursor, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 token: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty token: %w", ErrInvalidPageToken)
	}
	return &Cursor{LastID: string(raw)}, nil
}

// Page holds pagination parameters for filtered product listings.
type Page struct {
	Limit  int
	Cursor *Cursor
}

// NewPage builds a Page from raw request values, clamping the limit and
// decoding the token when present.
func NewPage(limit int, token string) (*Page, error) {
	pageLimit := DefaultPageLimit
	if limit > 0 {
		pageLimit = min(maxPageLimit, limit)
	}
	page := &Page{Limit: pageLimit}

	if token == "" {
		return page, nil
	}
	cursor, err := DecodePageToken(token)
	if err != nil {
		return nil, fmt.Errorf("invalid page token: %w", ErrInvalidPageToken)
	}
	page.Cursor = cursor
	return page, nil
}
