package benchmark

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nwalipaul0911/gosearchmark/internal/fixture"
	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

// SearchCase holds the timing of one (strategy, file size) combination.
type SearchCase struct {
	Strategy string `json:"strategy"`
	Lines    int    `json:"lines"`
	Cached   bool   `json:"cached"`
	Timing   Timing `json:"timing"`
}

// SearchOptions configures the search suite.
type SearchOptions struct {
	Sizes  []int // line counts per fixture, ascending
	Rounds int
	Filter string // substring match over "strategy/lines" case names
}

type mismatchError struct {
	got, want strategy.Result
}

func (e *mismatchError) Error() string {
	return fmt.Sprintf("got line=%d text=%q found=%v, want line=%d text=%q found=%v",
		e.got.Line, e.got.Text, e.got.Found, e.want.Line, e.want.Text, e.want.Found)
}

// RunSearch times every strategy against every fixture size, verifying
// the result after each round. A wrong result discards the case but the
// run continues; a strategy error (a failing external tool, usually)
// retires the strategy for the remaining sizes. Fixture problems are
// fatal.
func RunSearch(pool *fixture.Pool, factories []strategy.Factory, cfg strategy.Config, opt SearchOptions) ([]SearchCase, []Failure, error) {
	sizes := opt.Sizes
	if len(sizes) == 0 {
		sizes = fixture.Sizes
	}
	rounds := opt.Rounds
	if rounds < 1 {
		rounds = DefaultRounds
	}

	var cases []SearchCase
	var failures []Failure
	disabled := make(map[string]bool)

	for _, lines := range sizes {
		present, err := pool.Get(fixture.WithNeedleAtEnd(lines))
		if err != nil {
			return cases, failures, fmt.Errorf("fixture for %d lines: %w", lines, err)
		}
		absent, err := pool.Get(fixture.WithoutNeedle(lines))
		if err != nil {
			return cases, failures, fmt.Errorf("fixture for %d lines: %w", lines, err)
		}
		want := present.Expected()

		for _, factory := range factories {
			s := factory(cfg)
			name := s.Name()
			if disabled[name] {
				continue
			}
			caseName := fmt.Sprintf("%s/%d", name, lines)
			if opt.Filter != "" && !strings.Contains(caseName, opt.Filter) {
				continue
			}

			timing, err := Measure(rounds, func() error {
				got, err := s.Search(present.Path, pool.Needle())
				if err != nil {
					return err
				}
				if !got.Equal(want) {
					return &mismatchError{got: got, want: want}
				}
				return nil
			})
			if err != nil {
				failures = append(failures, searchFailure(caseName, name, err, disabled))
				continue
			}

			// Every strategy must also agree the needle-free fixture
			// holds nothing.
			got, err := s.Search(absent.Path, pool.Needle())
			switch {
			case err != nil:
				failures = append(failures, searchFailure(caseName+"/absent", name, err, disabled))
				continue
			case got.Found:
				detail := fmt.Sprintf("false positive at line %d in needle-free file", got.Line)
				fmt.Printf("  %s: %s\n", caseName, detail)
				failures = append(failures, Failure{Suite: "search", Case: caseName + "/absent", Strategy: name, Detail: detail})
				continue
			}

			cases = append(cases, SearchCase{
				Strategy: name,
				Lines:    lines,
				Cached:   name == "cached",
				Timing:   timing,
			})

			if err := fixture.Verify(present); err != nil {
				return cases, failures, fmt.Errorf("after %s: %w", caseName, err)
			}
		}

		if err := fixture.Verify(absent); err != nil {
			return cases, failures, fmt.Errorf("after %d-line cases: %w", lines, err)
		}
	}

	return cases, failures, nil
}

// searchFailure records one failed case. Wrong results leave the
// strategy in play; errors retire it so later sizes stop hitting a
// broken tool.
func searchFailure(caseName, name string, err error, disabled map[string]bool) Failure {
	var mism *mismatchError
	if errors.As(err, &mism) {
		fmt.Printf("  %s: wrong result: %v\n", caseName, err)
		return Failure{Suite: "search", Case: caseName, Strategy: name, Detail: "wrong result: " + err.Error()}
	}

	disabled[name] = true
	fmt.Printf("  %s: %v (retiring %s)\n", caseName, err, name)
	return Failure{Suite: "search", Case: caseName, Strategy: name, Detail: err.Error()}
}
