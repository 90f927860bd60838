package source

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
)

// DefaultCacheSize is used when a non-positive cache size is configured.
const DefaultCacheSize = 16

type cacheEntry struct {
	sheet   models.Sheet
	fetched time.Time
}

// Cached memoizes successful fetches of another source for a fixed TTL.
// Failures are never cached.
type Cached struct {
	src   Source
	ttl   time.Duration
	cache *lru.Cache
	now   func() time.Time
}

// NewCached wraps src with an LRU cache holding up to size sheets.
func NewCached(src Source, size int, ttl time.Duration) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cached{src: src, ttl: ttl, cache: cache, now: time.Now}, nil
}

// FetchSheet implements Source.
func (c *Cached) FetchSheet(ctx context.Context, name string) (models.Sheet, error) {
	if v, ok := c.cache.Get(name); ok {
		entry := v.(cacheEntry)
		if c.now().Sub(entry.fetched) < c.ttl {
			return entry.sheet, nil
		}
		c.cache.Remove(name)
	}

	sheet, err := c.src.FetchSheet(ctx, name)
	if err != nil {
		return models.Sheet{}, err
	}
	c.cache.Add(name, cacheEntry{sheet: sheet, fetched: c.now()})
	return sheet, nil
}

// SheetNames implements Lister when the wrapped source does.
func (c *Cached) SheetNames(ctx context.Context) ([]string, error) {
	if l, ok := c.src.(Lister); ok {
		return l.SheetNames(ctx)
	}
	return nil, ErrUnsupportedKind
}

// Purge drops every cached sheet.
func (c *Cached) Purge() {
	c.cache.Purge()
}
