package resultcache

import (
	"github.com/dgraph-io/ristretto"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

type ristrettoCache struct {
	c *ristretto.Cache
}

// NewRistretto creates a Ristretto cache.
func NewRistretto(capacity int) Cache {
	c, _ := ristretto.NewCache(&ristretto.Config{ //nolint:errcheck // config always valid
		NumCounters:        int64(capacity) * 10,
		MaxCost:            int64(capacity),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	return &ristrettoCache{c: c}
}

func (c *ristrettoCache) Get(key string) (strategy.Result, bool) {
	v, ok := c.c.Get(key)
	if !ok {
		return strategy.Result{}, false
	}
	return v.(strategy.Result), true //nolint:errcheck,revive // type is known from Set
}

func (c *ristrettoCache) Set(key string, value strategy.Result) {
	c.c.Set(key, value, 1)
	c.c.Wait() // writes are async; the next Get must see this one
}

func (*ristrettoCache) Name() string {
	return "ristretto"
}

func (c *ristrettoCache) Close() {
	c.c.Close()
}
