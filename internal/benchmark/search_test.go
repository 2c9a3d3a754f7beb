package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwalipaul0911/gosearchmark/internal/fixture"
	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

func newTestPool(t *testing.T) *fixture.Pool {
	t.Helper()
	pool, err := fixture.NewPool("the quick brown fox")
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })
	return pool
}

type scriptedStrategy struct {
	name   string
	calls  *int
	search func(path, needle string) (strategy.Result, error)
}

func (s *scriptedStrategy) Search(path, needle string) (strategy.Result, error) {
	*s.calls++
	return s.search(path, needle)
}

func (s *scriptedStrategy) Name() string { return s.name }

func scripted(name string, calls *int, search func(path, needle string) (strategy.Result, error)) strategy.Factory {
	return func(strategy.Config) strategy.Strategy {
		return &scriptedStrategy{name: name, calls: calls, search: search}
	}
}

func TestRunSearchRecordsCases(t *testing.T) {
	pool := newTestPool(t)

	cases, failures, err := RunSearch(pool, []strategy.Factory{strategy.NewLinear}, strategy.Config{},
		SearchOptions{Sizes: []int{50, 80}, Rounds: 3})
	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, cases, 2)
	assert.Equal(t, "linear", cases[0].Strategy)
	assert.Equal(t, 50, cases[0].Lines)
	assert.False(t, cases[0].Cached)
	assert.Equal(t, 3, cases[0].Timing.Rounds)
	assert.Equal(t, 80, cases[1].Lines)
}

func TestRunSearchMismatchKeepsStrategy(t *testing.T) {
	pool := newTestPool(t)

	calls := 0
	wrong := scripted("wrong", &calls, func(_, _ string) (strategy.Result, error) {
		return strategy.Result{Line: 1, Text: "bogus", Found: true}, nil
	})

	cases, failures, err := RunSearch(pool, []strategy.Factory{wrong}, strategy.Config{},
		SearchOptions{Sizes: []int{40, 60}, Rounds: 4})
	require.NoError(t, err)
	assert.Empty(t, cases)
	require.Len(t, failures, 2, "a wrong result must not retire the strategy")
	for _, f := range failures {
		assert.Equal(t, "search", f.Suite)
		assert.Equal(t, "wrong", f.Strategy)
		assert.Contains(t, f.Detail, "wrong result")
	}
	assert.Equal(t, 2, calls, "the first mismatch aborts each case")
}

func TestRunSearchErrorRetiresStrategy(t *testing.T) {
	pool := newTestPool(t)

	brokenCalls := 0
	broken := scripted("broken", &brokenCalls, func(_, _ string) (strategy.Result, error) {
		return strategy.Result{}, &strategy.ProcError{Tool: "broken", Code: 2, Stderr: "kaput"}
	})
	okCalls := 0
	ok := scripted("ok", &okCalls, func(path, needle string) (strategy.Result, error) {
		return strategy.NewLinear(strategy.Config{}).Search(path, needle)
	})

	cases, failures, err := RunSearch(pool, []strategy.Factory{broken, ok}, strategy.Config{},
		SearchOptions{Sizes: []int{30, 50, 70}, Rounds: 2})
	require.NoError(t, err)
	require.Len(t, failures, 1, "a broken tool fails once, then sits out")
	assert.Equal(t, "broken", failures[0].Strategy)
	assert.Equal(t, 1, brokenCalls)
	assert.Len(t, cases, 3, "remaining strategies keep running")
}

func TestRunSearchFalsePositiveFailsCase(t *testing.T) {
	pool := newTestPool(t)

	calls := 0
	liar := scripted("liar", &calls, func(path, needle string) (strategy.Result, error) {
		got, err := strategy.NewLinear(strategy.Config{}).Search(path, needle)
		if err != nil || got.Found {
			return got, err
		}
		return strategy.Result{Line: 0, Text: needle, Found: true}, nil
	})

	cases, failures, err := RunSearch(pool, []strategy.Factory{liar}, strategy.Config{},
		SearchOptions{Sizes: []int{40}, Rounds: 2})
	require.NoError(t, err)
	assert.Empty(t, cases, "a false positive discards the case")
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].Case, "absent")
	assert.Contains(t, failures[0].Detail, "false positive")
}

func TestRunSearchFilter(t *testing.T) {
	pool := newTestPool(t)

	cases, failures, err := RunSearch(pool, []strategy.Factory{strategy.NewLinear, strategy.NewReadLines}, strategy.Config{},
		SearchOptions{Sizes: []int{30, 60}, Rounds: 1, Filter: "readlines/3"})
	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, cases, 1)
	assert.Equal(t, "readlines", cases[0].Strategy)
	assert.Equal(t, 30, cases[0].Lines)
}

func TestRunSearchMarksCachedCases(t *testing.T) {
	pool := newTestPool(t)

	cases, failures, err := RunSearch(pool, []strategy.Factory{strategy.NewCached}, strategy.Config{},
		SearchOptions{Sizes: []int{30}, Rounds: 2})
	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, cases, 1)
	assert.True(t, cases[0].Cached)
}
