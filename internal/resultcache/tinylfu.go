package resultcache

import (
	tinylfu "github.com/vmihailenco/go-tinylfu"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

type tinyLFUCache struct {
	c *tinylfu.SyncT
}

// NewTinyLFU creates a TinyLFU cache.
func NewTinyLFU(capacity int) Cache {
	return &tinyLFUCache{c: tinylfu.NewSync(capacity, capacity*10)}
}

func (c *tinyLFUCache) Get(key string) (strategy.Result, bool) {
	v, ok := c.c.Get(key)
	if !ok {
		return strategy.Result{}, false
	}
	return v.(strategy.Result), true //nolint:errcheck,revive // type is known from Set
}

func (c *tinyLFUCache) Set(key string, value strategy.Result) {
	c.c.Set(&tinylfu.Item{Key: key, Value: value})
}

func (*tinyLFUCache) Name() string {
	return "tinylfu"
}

func (*tinyLFUCache) Close() {}
