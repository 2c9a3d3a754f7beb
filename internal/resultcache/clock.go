package resultcache

import (
	"sync"

	"github.com/Code-Hex/go-generics-cache/policy/clock"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

type clockCache struct {
	c  *clock.Cache[string, strategy.Result]
	mu sync.Mutex
}

// NewClock creates a clock-based cache.
func NewClock(capacity int) Cache {
	return &clockCache{
		c: clock.NewCache[string, strategy.Result](clock.WithCapacity(capacity)),
	}
}

func (c *clockCache) Get(key string) (strategy.Result, bool) {
	c.mu.Lock()
	v, ok := c.c.Get(key)
	c.mu.Unlock()
	return v, ok
}

func (c *clockCache) Set(key string, value strategy.Result) {
	c.mu.Lock()
	c.c.Set(key, value)
	c.mu.Unlock()
}

func (*clockCache) Name() string {
	return "clock"
}

func (*clockCache) Close() {}
