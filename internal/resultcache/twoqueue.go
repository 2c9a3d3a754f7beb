package resultcache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

type twoQueueCache struct {
	c *lru.TwoQueueCache[string, strategy.Result]
}

// NewTwoQueue creates a 2Q cache.
func NewTwoQueue(capacity int) Cache {
	c, _ := lru.New2Q[string, strategy.Result](capacity)
	return &twoQueueCache{c: c}
}

func (c *twoQueueCache) Get(key string) (strategy.Result, bool) {
	return c.c.Get(key)
}

func (c *twoQueueCache) Set(key string, value strategy.Result) {
	c.c.Add(key, value)
}

func (*twoQueueCache) Name() string {
	return "2q"
}

func (*twoQueueCache) Close() {}
