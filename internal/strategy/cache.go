package strategy

import (
	"fmt"
	"os"
	"strconv"

	"github.com/zeebo/xxh3"
)

// ResultCache stores search results keyed by CacheKey output.
// Implementations live in internal/resultcache.
type ResultCache interface {
	Get(key string) (Result, bool)
	Set(key string, value Result)
	Name() string
	Close()
}

// GetOrCompute returns the cached value for key, invoking compute and
// storing its result on a miss. The bool reports a cache hit; compute
// never runs on a hit, and nothing is stored when compute fails.
func GetOrCompute(c ResultCache, key string, compute func() (Result, error)) (Result, bool, error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}
	v, err := compute()
	if err != nil {
		return Result{}, false, err
	}
	c.Set(key, v)
	return v, false, nil
}

// CacheKey derives a cache key from the file identity and the needle.
// Size and mtime are folded in so a rewritten file does not serve stale
// hits. A same-size rewrite inside one mtime tick is invisible here; the
// benchmarks close that gap separately by re-hashing fixture contents
// after every case. Hashing contents in the key itself would cost a full
// file read per lookup, which is the work the cache exists to avoid.
func CacheKey(path, needle string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	id := xxh3.HashString(fmt.Sprintf("%s|%d|%d", path, fi.Size(), fi.ModTime().UnixNano()))
	return strconv.FormatUint(id, 16) + ":" + needle, nil
}
