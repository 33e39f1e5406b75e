// Package cache holds fetched feed results for the duration of a run, so a
// feed URL listed under two source categories is only pulled once.
package cache

import (
	"sync"
	"time"

	"github.com/politico94/infradigest/internal/digest"
)

type entry struct {
	items     []digest.Item
	expiresAt time.Time
}

type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
}

func New() *Cache {
	return &Cache{
		items: make(map[string]entry),
	}
}

// Set stores the normalized items fetched from url.
func (c *Cache) Set(url string, items []digest.Item, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[url] = entry{
		items:     items,
		expiresAt: time.Now().Add(ttl),
	}
}

// Get returns the cached items for url, if present and not expired.
func (c *Cache) Get(url string) ([]digest.Item, bool) {
	c.mu.RLock()
	e, exists := c.items[url]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.items, url)
		c.mu.Unlock()
		return nil, false
	}
	return e.items, true
}
