package domain

import (
	"context"
	"time"
)

// CatalogEntry is one entry in the external event catalog, the read-only
// reference dataset used to seed and refresh stored events.
type CatalogEntry struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
}

// EventCatalog looks up catalog entries by exact title match.
// Returns ErrNotFound when no entry matches.
type EventCatalog interface {
	FindByTitle(ctx context.Context, title string) (*CatalogEntry, error)
}
