package resultcache

import (
	"github.com/scalalang2/golang-fifo/s3fifo"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

type s3fifoCache struct {
	c *s3fifo.S3FIFO[string, strategy.Result]
}

// NewS3FIFO creates an S3-FIFO cache.
func NewS3FIFO(capacity int) Cache {
	return &s3fifoCache{c: s3fifo.New[string, strategy.Result](capacity, 0)}
}

func (c *s3fifoCache) Get(key string) (strategy.Result, bool) {
	return c.c.Get(key)
}

func (c *s3fifoCache) Set(key string, value strategy.Result) {
	c.c.Set(key, value)
}

func (*s3fifoCache) Name() string {
	return "s3-fifo"
}

func (*s3fifoCache) Close() {}
