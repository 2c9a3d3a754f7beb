package resultcache

import (
	"github.com/coocood/freecache"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

type freecacheCache struct {
	c *freecache.Cache
}

// NewFreecache creates a freecache backend. freecache stores raw bytes,
// so results go through the binary codec; sizing assumes key + encoded
// result + internal overhead fit in 256 bytes.
func NewFreecache(capacity int) Cache {
	cacheBytes := max(capacity*256,
		// freecache refuses anything below 512KB
		512*1024)
	return &freecacheCache{c: freecache.NewCache(cacheBytes)}
}

func (c *freecacheCache) Get(key string) (strategy.Result, bool) {
	v, err := c.c.Get([]byte(key))
	if err != nil {
		return strategy.Result{}, false
	}
	return decodeResult(v)
}

func (c *freecacheCache) Set(key string, value strategy.Result) {
	c.c.Set([]byte(key), encodeResult(value), 0) //nolint:errcheck,gosec // best-effort set
}

func (*freecacheCache) Name() string {
	return "freecache"
}

func (*freecacheCache) Close() {}
