package store

import (
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	cacheLogPrefix = "cache"

	// DefaultTTL bounds how long a fetched table is reused before the next
	// request re-fetches from the upstream API.
	DefaultTTL = 3600 * time.Second
)

// CacheStats - counters exposed on the metrics route
type CacheStats struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

// TableCache - memoization of built tables keyed by request parameters.
// There is no manual invalidation; entries live until their TTL passes and
// the cache lives only as long as the process.
type TableCache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Stats() CacheStats
}

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

type memoCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
	hits    uint64
	misses  uint64
}

// NewTableCache - a process-wide TTL cache; ttl <= 0 falls back to DefaultTTL
func NewTableCache(ttl time.Duration) TableCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &memoCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Key builds a cache key from an operation name and its arguments.
func Key(operation string, args ...string) string {
	return operation + "|" + strings.Join(args, "|")
}

func (c *memoCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiresAt) {
		c.misses++
		return nil, false
	}

	c.hits++
	return entry.value, true
}

func (c *memoCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}

	log.WithFields(log.Fields{
		"prefix": cacheLogPrefix,
		"key":    key,
		"ttl":    c.ttl,
	}).Debug("cached table")
}

func (c *memoCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Entries: len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}
