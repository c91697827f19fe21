// Package ports defines the interface the engagement locator needs from a
// social index, without depending on any concrete HTTP client.
package ports

import (
	"context"

	"boostoracle/internal/domain"
)

// Event is one candidate engagement returned by the index. Depending on the
// endpoint it may carry a generic creation timestamp, a reaction timestamp,
// or both.
type Event struct {
	Author      domain.Identity
	Embeds      []domain.ContentRef
	CreatedAtMs int64
	ReactedAtMs int64
}

// TimestampMs normalizes the two timestamp fields the index exposes.
// Reaction endpoints report reactedAt while keeping createdAt for the
// underlying post; the reaction time is the one that matters here.
func (e Event) TimestampMs() int64 {
	if e.ReactedAtMs != 0 {
		return e.ReactedAtMs
	}
	return e.CreatedAtMs
}

// Page is one slice of a cursor-paginated index response. An empty
// NextCursor means the scan is exhausted.
type Page struct {
	Items      []Event
	NextCursor string
}

// Index is the page-fetch contract shared by all engagement strategies.
type Index interface {
	// Amplifications lists repost events targeting the content.
	Amplifications(ctx context.Context, content domain.ContentRef, cursor string) (Page, error)

	// PostsByAuthor lists posts authored by the identity, embeds included.
	PostsByAuthor(ctx context.Context, author domain.Identity, cursor string) (Page, error)

	// Reactions lists like-reactions targeting the content.
	Reactions(ctx context.Context, content domain.ContentRef, cursor string) (Page, error)
}
