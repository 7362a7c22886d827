package utils

import (
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache is a small in-process TTL cache over an LRU, sized for the
// handful of rarely-changing payloads this app caches (currently the
// project list). Comment trees and like counts never land here; those
// are always answered from live queries.
type Cache struct {
	entries *lru.Cache[string, entry]
}

var cacheInstance *Cache

// GetCache returns the process-wide cache.
func GetCache() *Cache {
	if cacheInstance == nil {
		l, err := lru.New[string, entry](64)
		if err != nil {
			log.Fatalf("Failed to create cache: %v", err)
		}
		cacheInstance = &Cache{entries: l}
	}
	return cacheInstance
}

// Set stores value under key for ttl.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.entries.Add(key, entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
}

// Get returns the cached value, or nil when absent or expired.
func (c *Cache) Get(key string) interface{} {
	e, ok := c.entries.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		c.entries.Remove(key)
		return nil
	}
	return e.value
}

// Delete removes key from the cache.
func (c *Cache) Delete(key string) {
	c.entries.Remove(key)
}
