package mediaclient

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultReadURLTTL stays below the authority's signed-read lifetime
// (one minute) to tolerate clock drift and in-flight latency.
const DefaultReadURLTTL = 55 * time.Second

// ReadURLFetcher is the authority the cache refreshes from.
type ReadURLFetcher interface {
	RequestReadURL(ctx context.Context, familyID, objectKey string) (SignedRead, error)
}

type cacheEntry struct {
	url       string
	expiresAt time.Time
}

// URLCache memoizes signed read URLs per object key. Construct one per
// session; there is deliberately no package-level instance.
//
// Concurrent misses for the same key may each trigger a fetch; the last
// write wins and every caller still gets a valid URL. Failed refreshes are
// never cached and never evict a still-valid entry.
type URLCache struct {
	fetcher ReadURLFetcher
	ttl     time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry

	now func() time.Time
}

func NewURLCache(fetcher ReadURLFetcher) *URLCache {
	return &URLCache{
		fetcher: fetcher,
		ttl:     DefaultReadURLTTL,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached read URL for the object, refreshing it from the
// authority when absent or expired.
func (c *URLCache) Get(ctx context.Context, familyID, objectKey string) (string, error) {
	return c.GetTTL(ctx, familyID, objectKey, c.ttl)
}

// GetTTL is Get with a per-call TTL override.
func (c *URLCache) GetTTL(ctx context.Context, familyID, objectKey string, ttl time.Duration) (string, error) {
	c.mu.Lock()
	if e, ok := c.entries[objectKey]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.url, nil
	}
	c.mu.Unlock()

	signed, err := c.fetcher.RequestReadURL(ctx, familyID, objectKey)
	if err != nil {
		// the failure is the caller's to handle; any previous entry stays
		// untouched until a successful refresh replaces it
		return "", err
	}

	c.mu.Lock()
	c.entries[objectKey] = cacheEntry{url: signed.URL, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()

	return signed.URL, nil
}

// Prefetch warms the cache for a set of object keys concurrently.
// Best-effort: keys whose fetch fails are simply omitted from the result.
func (c *URLCache) Prefetch(ctx context.Context, familyID string, objectKeys []string) map[string]string {
	var mu sync.Mutex
	out := make(map[string]string, len(objectKeys))

	var g errgroup.Group
	for _, key := range objectKeys {
		key := key
		g.Go(func() error {
			url, err := c.Get(ctx, familyID, key)
			if err != nil {
				return nil
			}
			mu.Lock()
			out[key] = url
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// InvalidateExpired removes every entry whose expiry has passed.
func (c *URLCache) InvalidateExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// Clear drops all entries unconditionally. Idempotent.
func (c *URLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}
