package resultcache

import (
	gcache "github.com/Code-Hex/go-generics-cache"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

type simpleCache struct {
	c *gcache.Cache[string, strategy.Result]
}

// NewSimple creates an unbounded map-backed cache. The benchmark working
// set is tiny, so nothing is ever evicted; this is the default backend
// for the cached strategy. Capacity is ignored.
func NewSimple(int) Cache {
	return &simpleCache{c: gcache.New[string, strategy.Result]()}
}

func (c *simpleCache) Get(key string) (strategy.Result, bool) {
	return c.c.Get(key)
}

func (c *simpleCache) Set(key string, value strategy.Result) {
	c.c.Set(key, value)
}

func (*simpleCache) Name() string {
	return "simple"
}

func (*simpleCache) Close() {}
