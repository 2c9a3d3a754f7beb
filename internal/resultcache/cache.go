// Package resultcache provides interchangeable cache backends for search
// results. Every backend adapts a third-party cache library to the small
// Cache interface, so the cached strategy and the cache suite can swap
// implementations freely.
package resultcache

import "github.com/nwalipaul0911/gosearchmark/internal/strategy"

// Cache is a minimal interface for result caching with string keys.
// It matches strategy.ResultCache, so any backend can power the cached
// strategy.
type Cache interface {
	Get(key string) (strategy.Result, bool)
	Set(key string, value strategy.Result)
	Name() string
	Close()
}

// Factory creates a new cache instance with the given capacity.
type Factory func(capacity int) Cache
