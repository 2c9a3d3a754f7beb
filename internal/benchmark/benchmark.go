// Package benchmark implements the measurement suites.
package benchmark

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
)

// DefaultRounds is the number of timed rounds per case.
const DefaultRounds = 10

// Timing aggregates the per-round wall-clock samples of one case.
type Timing struct {
	Rounds int           `json:"rounds"`
	Mean   time.Duration `json:"meanNs"`
	StdDev time.Duration `json:"stddevNs"`
	Min    time.Duration `json:"minNs"`
	Max    time.Duration `json:"maxNs"`
	PerSec float64       `json:"roundsPerSec"`
}

// Failure records a correctness or tool problem that did not abort the
// run. The run's exit code reflects whether any were collected.
type Failure struct {
	Suite    string `json:"suite"`
	Case     string `json:"case"`
	Strategy string `json:"strategy,omitempty"`
	Detail   string `json:"detail"`
}

// Measure times fn over the given number of rounds, sequentially, and
// aggregates the samples. The first error aborts the measurement and
// discards any samples taken so far; nothing is retried.
func Measure(rounds int, fn func() error) (Timing, error) {
	if rounds < 1 {
		rounds = 1
	}

	samples := make([]float64, 0, rounds)
	var total time.Duration
	for range rounds {
		start := time.Now()
		if err := fn(); err != nil {
			return Timing{}, err
		}
		d := time.Since(start)
		total += d
		samples = append(samples, float64(d))
	}

	mean, err := stats.Mean(samples)
	if err != nil {
		return Timing{}, fmt.Errorf("aggregate timings: %w", err)
	}
	minVal, err := stats.Min(samples)
	if err != nil {
		return Timing{}, fmt.Errorf("aggregate timings: %w", err)
	}
	maxVal, err := stats.Max(samples)
	if err != nil {
		return Timing{}, fmt.Errorf("aggregate timings: %w", err)
	}
	var sd float64
	if len(samples) > 1 {
		sd, err = stats.StandardDeviationSample(samples)
		if err != nil {
			return Timing{}, fmt.Errorf("aggregate timings: %w", err)
		}
	}

	t := Timing{
		Rounds: len(samples),
		Mean:   time.Duration(mean),
		StdDev: time.Duration(sd),
		Min:    time.Duration(minVal),
		Max:    time.Duration(maxVal),
	}
	if total > 0 {
		t.PerSec = float64(len(samples)) / total.Seconds()
	}
	return t, nil
}
