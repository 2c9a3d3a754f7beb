package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/nwalipaul0911/gosearchmark/internal/benchmark"
)

// WriteMarkdown writes benchmark results to a Markdown file.
func WriteMarkdown(filename string, results Results, commandLine string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := func(format string, args ...any) {
		fmt.Fprintf(f, format, args...)
	}

	w("# gosearchmark Results\n\n")
	w("```\n")
	w("Command: %s\n", commandLine)
	w("Environment: %s/%s, %d CPUs, %s\n", results.MachineInfo.OS, results.MachineInfo.Arch, results.MachineInfo.NumCPU, results.MachineInfo.GoVersion)
	w("```\n\n")

	if results.Search != nil && len(results.Search.Cases) > 0 {
		w("## Search Benchmarks\n\n")
		w("Needle: `%s`\n\n", results.Search.Needle)
		for _, lines := range searchSizes(results.Search) {
			writeSearchMarkdown(w, lines, results.Search.Cases)
		}
	}

	if results.Cache != nil && len(results.Cache.Cases) > 0 {
		w("## Cache Benchmarks\n\n")
		writeCacheMarkdown(w, results.Cache)
	}

	if results.Traverse != nil && len(results.Traverse.Cases) > 0 {
		w("## Traverse Benchmarks\n\n")
		w("Tree: depth %d, width %d, %d nodes\n\n", results.Traverse.Depth, results.Traverse.Width, results.Traverse.Nodes)
		for _, target := range traverseTargets(results.Traverse) {
			writeTraverseMarkdown(w, target, results.Traverse.Cases)
		}
	}

	if results.Memory != nil && len(results.Memory.Results) > 0 {
		w("## Memory Benchmarks\n\n")
		writeMemoryMarkdown(w, results.Memory)
	}

	if len(results.Failures) > 0 {
		w("## Failures\n\n")
		for _, fail := range results.Failures {
			w("- [%s] %s: %s\n", fail.Suite, fail.Case, fail.Detail)
		}
		w("\n")
	}

	if len(results.Rankings) > 0 {
		w("## Overall Rankings\n\n")
		w("| Rank | Strategy      | Score | Gold | Silver | Bronze |\n")
		w("|------|---------------|-------|------|--------|--------|\n")
		for _, r := range results.Rankings {
			w("| %4d | %-13s | %5.0f | %4d | %6d | %6d |\n", r.Rank, r.Name, r.Score, r.Gold, r.Silver, r.Bronze)
		}
		w("\n")
	}

	return nil
}

func writeSearchMarkdown(w func(string, ...any), lines int, cases []benchmark.SearchCase) {
	var rows []benchmark.SearchCase
	for _, c := range cases {
		if c.Lines == lines {
			rows = append(rows, c)
		}
	}
	if len(rows) == 0 {
		return
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Timing.Mean < rows[j].Timing.Mean
	})

	w("### %s\n\n", SizeLabel(lines))
	w("| Strategy      | Mean µs | StdDev µs |  Min µs |  Max µs | Rounds/s |\n")
	w("|---------------|---------|-----------|---------|---------|----------|\n")
	for _, c := range rows {
		w("| %-13s | %7.1f | %9.1f | %7.1f | %7.1f | %8.1f |\n",
			c.Strategy, usec(c.Timing.Mean), usec(c.Timing.StdDev), usec(c.Timing.Min), usec(c.Timing.Max), c.Timing.PerSec)
	}

	if len(rows) >= 2 {
		best, second := rows[0], rows[1]
		pct := (float64(second.Timing.Mean) - float64(best.Timing.Mean)) / float64(best.Timing.Mean) * 100
		w("\n  winner: %s (+%.1f%% vs %s)\n", best.Strategy, pct, second.Strategy)
	}
	w("\n")
}

func writeCacheMarkdown(w func(string, ...any), data *CacheData) {
	rows := make([]benchmark.CacheCase, len(data.Cases))
	copy(rows, data.Cases)
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Warm.Mean < rows[j].Warm.Mean
	})

	w("Fixture: %s, capacity %d\n\n", SizeLabel(data.Lines), benchmark.DefaultCacheCapacity)
	w("| Backend       | Cold µs | Warm µs | StdDev µs | Speedup |\n")
	w("|---------------|---------|---------|-----------|---------|\n")
	for _, c := range rows {
		w("| %-13s | %7.1f | %7.3f | %9.3f | %6.0fx |\n",
			c.Backend, usec(c.Cold), usec(c.Warm.Mean), usec(c.Warm.StdDev), c.Speedup)
	}

	if len(rows) >= 2 {
		best, second := rows[0], rows[1]
		pct := (float64(second.Warm.Mean) - float64(best.Warm.Mean)) / float64(best.Warm.Mean) * 100
		w("\n  winner: %s (+%.1f%% vs %s)\n", best.Backend, pct, second.Backend)
	}
	w("\n")
}

func writeTraverseMarkdown(w func(string, ...any), target string, cases []benchmark.TraverseCase) {
	var rows []benchmark.TraverseCase
	for _, c := range cases {
		if c.Target == target {
			rows = append(rows, c)
		}
	}
	if len(rows) == 0 {
		return
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Timing.Mean < rows[j].Timing.Mean
	})

	w("### Target: %s\n\n", target)
	w("| Algorithm | Mean µs | StdDev µs |  Min µs |  Max µs |\n")
	w("|-----------|---------|-----------|---------|---------|\n")
	for _, c := range rows {
		w("| %-9s | %7.1f | %9.1f | %7.1f | %7.1f |\n",
			c.Algo, usec(c.Timing.Mean), usec(c.Timing.StdDev), usec(c.Timing.Min), usec(c.Timing.Max))
	}

	if len(rows) >= 2 {
		best, second := rows[0], rows[1]
		pct := (float64(second.Timing.Mean) - float64(best.Timing.Mean)) / float64(best.Timing.Mean) * 100
		w("\n  winner: %s (+%.1f%% vs %s)\n", best.Algo, pct, second.Algo)
	}
	w("\n")
}

func writeMemoryMarkdown(w func(string, ...any), data *MemoryData) {
	w("Fixture: %s\n\n", SizeLabel(data.Lines))
	w("| Strategy      | Allocated (KB) | Line |\n")
	w("|---------------|----------------|------|\n")
	for _, r := range data.Results {
		w("| %-13s | %14.1f | %4d |\n", r.Name, float64(r.Bytes)/1024, r.Line)
	}

	// Results arrive sorted by bytes ascending.
	if len(data.Results) >= 2 {
		best, second := data.Results[0], data.Results[1]
		pct := (float64(second.Bytes) - float64(best.Bytes)) / float64(best.Bytes) * 100
		w("\n  winner: %s (+%.1f%% vs %s)\n", best.Name, pct, second.Name)
	}
	w("\n")
}

func usec(d time.Duration) float64 {
	return float64(d) / 1e3
}
