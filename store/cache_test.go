package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheHitWithinTTL(t *testing.T) {
	c := NewTableCache(time.Hour).(*memoCache)

	c.Set(Key("history", "India"), "table")

	v, ok := c.Get(Key("history", "India"))
	assert.True(t, ok, "should hit within ttl")
	assert.Equal(t, "table", v, "wrong cached value")

	_, ok = c.Get(Key("history", "Japan"))
	assert.False(t, ok, "different arguments should miss")

	stats := c.Stats()
	assert.Equal(t, 1, stats.Entries, "wrong entry count")
	assert.Equal(t, uint64(1), stats.Hits, "wrong hit count")
	assert.Equal(t, uint64(1), stats.Misses, "wrong miss count")
}

func TestCacheExpiry(t *testing.T) {
	c := NewTableCache(time.Hour).(*memoCache)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set(Key("history", ""), "global")

	c.now = func() time.Time { return base.Add(59 * time.Minute) }
	_, ok := c.Get(Key("history", ""))
	assert.True(t, ok, "should hit before expiry")

	c.now = func() time.Time { return base.Add(61 * time.Minute) }
	_, ok = c.Get(Key("history", ""))
	assert.False(t, ok, "should miss after expiry")
}

func TestCacheDefaultTTL(t *testing.T) {
	c := NewTableCache(0).(*memoCache)
	assert.Equal(t, DefaultTTL, c.ttl, "wrong fallback ttl")
}
