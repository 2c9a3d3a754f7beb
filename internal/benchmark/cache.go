package benchmark

import (
	"fmt"
	"time"

	"github.com/nwalipaul0911/gosearchmark/internal/fixture"
	"github.com/nwalipaul0911/gosearchmark/internal/resultcache"
	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

// CacheCase holds one backend's cold lookup versus warm hit timings.
type CacheCase struct {
	Backend string        `json:"backend"`
	Lines   int           `json:"lines"`
	Cold    time.Duration `json:"coldNs"`
	Warm    Timing        `json:"warm"`
	Speedup float64       `json:"speedup"`
}

// DefaultCacheCapacity bounds every benchmarked backend. The suite's
// working set is a handful of keys, so capacity never forces evictions.
const DefaultCacheCapacity = 4096

// RunCache measures, per backend, one cold lookup (miss, linear search,
// store) followed by warm rounds that must all hit. The linear search
// result doubles as the expected value, so warm hits are also checked
// for staleness or corruption.
func RunCache(pool *fixture.Pool, lines, rounds int, factories []resultcache.Factory) ([]CacheCase, []Failure, error) {
	if rounds < 1 {
		rounds = DefaultRounds
	}

	fx, err := pool.Get(fixture.WithNeedleAtEnd(lines))
	if err != nil {
		return nil, nil, fmt.Errorf("fixture for %d lines: %w", lines, err)
	}
	want := fx.Expected()
	key, err := strategy.CacheKey(fx.Path, pool.Needle())
	if err != nil {
		return nil, nil, fmt.Errorf("cache key for %s: %w", fx.Path, err)
	}
	linear := strategy.NewLinear(strategy.Config{})

	var cases []CacheCase
	var failures []Failure
	for _, factory := range factories {
		c := factory(DefaultCacheCapacity)
		name := c.Name()

		computes := 0
		compute := func() (strategy.Result, error) {
			computes++
			return linear.Search(fx.Path, pool.Needle())
		}

		start := time.Now()
		got, _, err := strategy.GetOrCompute(c, key, compute)
		cold := time.Since(start)
		if err == nil && !got.Equal(want) {
			err = &mismatchError{got: got, want: want}
		}
		if err != nil {
			fmt.Printf("  %s: cold lookup: %v\n", name, err)
			failures = append(failures, Failure{Suite: "cache", Case: name, Detail: "cold lookup: " + err.Error()})
			c.Close()
			continue
		}

		warm, err := Measure(rounds, func() error {
			got, hit, err := strategy.GetOrCompute(c, key, compute)
			if err != nil {
				return err
			}
			if !hit {
				return fmt.Errorf("miss on warm lookup")
			}
			if !got.Equal(want) {
				return &mismatchError{got: got, want: want}
			}
			return nil
		})
		c.Close()
		if err != nil {
			fmt.Printf("  %s: warm lookup: %v\n", name, err)
			failures = append(failures, Failure{Suite: "cache", Case: name, Detail: "warm lookup: " + err.Error()})
			continue
		}
		if computes != 1 {
			detail := fmt.Sprintf("search ran %d times, want 1", computes)
			fmt.Printf("  %s: %s\n", name, detail)
			failures = append(failures, Failure{Suite: "cache", Case: name, Detail: detail})
			continue
		}

		cc := CacheCase{Backend: name, Lines: lines, Cold: cold, Warm: warm}
		if warm.Mean > 0 {
			cc.Speedup = float64(cold) / float64(warm.Mean)
		}
		cases = append(cases, cc)
	}

	return cases, failures, nil
}
