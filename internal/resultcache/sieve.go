package resultcache

import (
	"github.com/scalalang2/golang-fifo/sieve"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

type sieveCache struct {
	c *sieve.Sieve[string, strategy.Result]
}

// NewSieve creates a SIEVE cache.
func NewSieve(capacity int) Cache {
	return &sieveCache{c: sieve.New[string, strategy.Result](capacity, 0)}
}

func (c *sieveCache) Get(key string) (strategy.Result, bool) {
	return c.c.Get(key)
}

func (c *sieveCache) Set(key string, value strategy.Result) {
	c.c.Set(key, value)
}

func (*sieveCache) Name() string {
	return "sieve"
}

func (*sieveCache) Close() {}
