// Package catalog implements the read-only event catalog over the
// events.json dataset synced from the community event sheet.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"communityregistration/internal/domain"
)

// DefaultTTL is how long a parsed catalog file is served before it is
// re-read, so the file can be re-synced without a restart.
const DefaultTTL = 5 * time.Minute

const cacheKey = "catalog"

// catalogEntryJSON mirrors one entry of events.json.
type catalogEntryJSON struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	CountdownDate    string `json:"countdownDate"`
	Location         string `json:"location"`
	Status           string `json:"status"`
	RegistrationOpen bool   `json:"registrationOpen"`
	RegistrationLink string `json:"registrationLink"`
}

type fileCatalog struct {
	path  string
	cache *gocache.Cache
}

// NewFileCatalog returns an EventCatalog over the JSON file at path. The file
// is read and parsed eagerly so a broken catalog fails startup, then cached
// with the given ttl (DefaultTTL when ttl <= 0).
func NewFileCatalog(path string, ttl time.Duration) (domain.EventCatalog, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &fileCatalog{
		path:  path,
		cache: gocache.New(ttl, 2*ttl),
	}
	entries, err := c.load()
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(cacheKey, entries)
	return c, nil
}

func (c *fileCatalog) FindByTitle(ctx context.Context, title string) (*domain.CatalogEntry, error) {
	entries, err := c.entries()
	if err != nil {
		return nil, err
	}
	entry, ok := entries[title]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := entry
	return &cp, nil
}

func (c *fileCatalog) entries() (map[string]domain.CatalogEntry, error) {
	if v, found := c.cache.Get(cacheKey); found {
		if entries, ok := v.(map[string]domain.CatalogEntry); ok {
			return entries, nil
		}
	}
	entries, err := c.load()
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(cacheKey, entries)
	return entries, nil
}

func (c *fileCatalog) load() (map[string]domain.CatalogEntry, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var items []catalogEntryJSON
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	entries := make(map[string]domain.CatalogEntry, len(items))
	for _, item := range items {
		if item.Title == "" {
			continue
		}
		entries[item.Title] = domain.CatalogEntry{
			Title:       item.Title,
			Description: item.Description,
			Date:        parseCatalogDate(item),
			Location:    item.Location,
		}
	}
	return entries, nil
}

// parseCatalogDate prefers countdownDate (always RFC 3339 when the sync script
// produced it) and falls back to the human-entered date field. A zero time
// means the entry carries no usable date.
func parseCatalogDate(item catalogEntryJSON) time.Time {
	for _, s := range []string{item.CountdownDate, item.Date} {
		if s == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
