package resultcache

import (
	"github.com/maypok86/otter/v2"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

type otterCache struct {
	c *otter.Cache[string, strategy.Result]
}

// NewOtter creates an Otter cache.
func NewOtter(capacity int) Cache {
	c := otter.Must(&otter.Options[string, strategy.Result]{MaximumSize: capacity})
	return &otterCache{c: c}
}

func (c *otterCache) Get(key string) (strategy.Result, bool) {
	return c.c.GetIfPresent(key)
}

func (c *otterCache) Set(key string, value strategy.Result) {
	c.c.Set(key, value)
}

func (*otterCache) Name() string {
	return "otter"
}

func (*otterCache) Close() {}
