package resultcache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

type lruCache struct {
	c *lru.Cache[string, strategy.Result]
}

// NewLRU creates a plain LRU cache.
func NewLRU(capacity int) Cache {
	c, _ := lru.New[string, strategy.Result](capacity)
	return &lruCache{c: c}
}

func (c *lruCache) Get(key string) (strategy.Result, bool) {
	return c.c.Get(key)
}

func (c *lruCache) Set(key string, value strategy.Result) {
	c.c.Add(key, value)
}

func (*lruCache) Name() string {
	return "lru"
}

func (*lruCache) Close() {}
