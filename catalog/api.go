package catalog

import (
	"context"
)

// API defines the operations against the rated-movie collection
type API interface {
	// ListAll returns the full current collection
	ListAll(ctx context.Context) ([]Entry, error)

	// GetOne returns a single entry
	GetOne(ctx context.Context, id string) (Entry, error)

	// Create submits a new entry; the backend assigns its id
	Create(ctx context.Context, fields Fields) (Entry, error)

	// Update replaces the fields of an existing entry
	Update(ctx context.Context, id string, fields Fields) (Entry, error)

	// Remove deletes an entry and returns it
	Remove(ctx context.Context, id string) (Entry, error)
}

var _ API = (*Client)(nil)
