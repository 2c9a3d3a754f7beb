package resultcache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

type ttlcacheCache struct {
	c *ttlcache.Cache[string, strategy.Result]
}

// NewTTLCache creates a TTL-based cache.
func NewTTLCache(capacity int) Cache {
	c := ttlcache.New[string, strategy.Result](
		ttlcache.WithCapacity[string, strategy.Result](uint64(capacity)), //nolint:gosec // capacity always positive
		ttlcache.WithTTL[string, strategy.Result](time.Hour),             // long TTL: results stay valid for the whole run
	)
	go c.Start()
	return &ttlcacheCache{c: c}
}

func (c *ttlcacheCache) Get(key string) (strategy.Result, bool) {
	item := c.c.Get(key)
	if item == nil {
		return strategy.Result{}, false
	}
	return item.Value(), true
}

func (c *ttlcacheCache) Set(key string, value strategy.Result) {
	c.c.Set(key, value, ttlcache.DefaultTTL)
}

func (*ttlcacheCache) Name() string {
	return "ttlcache"
}

func (c *ttlcacheCache) Close() {
	c.c.Stop()
}
