package output

import (
	"fmt"
	"time"

	"github.com/nwalipaul0911/gosearchmark/internal/benchmark"
)

// Delta is one search case's mean change against a baseline run.
type Delta struct {
	Case     string
	Current  time.Duration
	Baseline time.Duration
	Pct      float64
}

func caseKey(c benchmark.SearchCase) string {
	return fmt.Sprintf("%s/%d", c.Strategy, c.Lines)
}

func searchCasesByKey(cases []benchmark.SearchCase) map[string]benchmark.SearchCase {
	m := make(map[string]benchmark.SearchCase, len(cases))
	for _, c := range cases {
		m[caseKey(c)] = c
	}
	return m
}

// Compare aligns the current search cases with a baseline run by case
// key and reports mean deltas. Cases missing on either side are
// skipped; different machines or needle lengths make partial overlap
// normal.
func Compare(current, baseline Results) []Delta {
	if current.Search == nil || baseline.Search == nil {
		return nil
	}

	base := searchCasesByKey(baseline.Search.Cases)
	var deltas []Delta
	for _, c := range current.Search.Cases {
		b, ok := base[caseKey(c)]
		if !ok || b.Timing.Mean <= 0 {
			continue
		}
		deltas = append(deltas, Delta{
			Case:     caseKey(c),
			Current:  c.Timing.Mean,
			Baseline: b.Timing.Mean,
			Pct:      (float64(c.Timing.Mean) - float64(b.Timing.Mean)) / float64(b.Timing.Mean) * 100,
		})
	}
	return deltas
}
