package benchmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwalipaul0911/gosearchmark/internal/resultcache"
	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

func TestRunCacheAllBackends(t *testing.T) {
	pool := newTestPool(t)

	cases, failures, err := RunCache(pool, 60, 3, resultcache.All())
	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, cases, len(resultcache.AvailableNames()))
	for _, c := range cases {
		assert.Equal(t, 60, c.Lines)
		assert.Equal(t, 3, c.Warm.Rounds)
		assert.Greater(t, c.Cold, time.Duration(0))
		assert.Greater(t, c.Speedup, 0.0, "%s: warm hits should beat the cold read", c.Backend)
	}
}

// dropCache accepts every Set and forgets it immediately.
type dropCache struct{}

func (dropCache) Get(string) (strategy.Result, bool) { return strategy.Result{}, false }
func (dropCache) Set(string, strategy.Result)        {}
func (dropCache) Name() string                       { return "drop" }
func (dropCache) Close()                             {}

func TestRunCacheDetectsMissingHits(t *testing.T) {
	pool := newTestPool(t)

	factory := func(int) resultcache.Cache { return dropCache{} }
	cases, failures, err := RunCache(pool, 40, 2, []resultcache.Factory{factory})
	require.NoError(t, err)
	assert.Empty(t, cases)
	require.Len(t, failures, 1)
	assert.Equal(t, "cache", failures[0].Suite)
	assert.Contains(t, failures[0].Detail, "miss on warm lookup")
}
