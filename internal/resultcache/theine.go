package resultcache

import (
	"github.com/Yiling-J/theine-go"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

type theineCache struct {
	c *theine.Cache[string, strategy.Result]
}

// NewTheine creates a Theine cache.
func NewTheine(capacity int) Cache {
	c, _ := theine.NewBuilder[string, strategy.Result](int64(capacity)).Build()
	return &theineCache{c: c}
}

func (c *theineCache) Get(key string) (strategy.Result, bool) {
	return c.c.Get(key)
}

func (c *theineCache) Set(key string, value strategy.Result) {
	c.c.Set(key, value, 1)
}

func (*theineCache) Name() string {
	return "theine"
}

func (c *theineCache) Close() {
	c.c.Close()
}
