package resultcache

import (
	lru "github.com/elastic/go-freelru"
	"github.com/zeebo/xxh3"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

func hash(s string) uint32 {
	return uint32(xxh3.HashString(s))
}

type freeLRUCache struct {
	c *lru.SyncedLRU[string, strategy.Result]
}

// NewFreeLRU creates a freelru cache. The synced variant is enough here;
// measurement is single-threaded so sharding would buy nothing.
func NewFreeLRU(capacity int) Cache {
	c, _ := lru.NewSynced[string, strategy.Result](uint32(capacity), hash) //nolint:gosec // capacity always positive
	return &freeLRUCache{c: c}
}

func (c *freeLRUCache) Get(key string) (strategy.Result, bool) {
	return c.c.Get(key)
}

func (c *freeLRUCache) Set(key string, value strategy.Result) {
	c.c.Add(key, value)
}

func (*freeLRUCache) Name() string {
	return "freelru"
}

func (*freeLRUCache) Close() {}
