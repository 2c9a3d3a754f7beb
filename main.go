// gosearchmark is a user-friendly tool for benchmarking file search strategies.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/nwalipaul0911/gosearchmark/internal/benchmark"
	"github.com/nwalipaul0911/gosearchmark/internal/fixture"
	"github.com/nwalipaul0911/gosearchmark/internal/output"
	"github.com/nwalipaul0911/gosearchmark/internal/resultcache"
	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
	"github.com/nwalipaul0911/gosearchmark/internal/traverse"
)

// searchNeedle is the sanitized line every fixture hides.
var searchNeedle string

// caseFilter holds the substring filter over search case names.
var caseFilter string

// fixtureSizes holds the fixture sizes to benchmark, in lines.
var fixtureSizes []int

// roundCount holds the measured rounds per case.
var roundCount int

// validSuites lists all available benchmark suites.
var validSuites = []string{"search", "cache", "traverse", "memory"}

// suiteFilter holds which suites to run.
var suiteFilter map[string]bool

// parseIntList parses a comma-separated string of integers with optional multiplier.
func parseIntList(input string, multiplier int) []int {
	var result []int
	for s := range strings.SplitSeq(input, ",") {
		s = strings.TrimSpace(s)
		var value int
		if _, err := fmt.Sscanf(s, "%d", &value); err == nil {
			result = append(result, value*multiplier)
		}
	}
	return result
}

func main() {
	os.Exit(run())
}

func run() int {
	showHelp := flag.Bool("help", false, "Show help message")
	suites := flag.String("suites", "all", "Comma-separated list of benchmark suites: search,cache,traverse,memory (default: all)")
	outDir := flag.String("outdir", "", "Output directory for results (writes gosearchmark_results.{md,json,csv})")
	strategies := flag.String("strategies", "", "Comma-separated list of strategies to benchmark (default: all)")
	caches := flag.String("caches", "", "Comma-separated list of cache backends to benchmark (default: all)")
	cacheName := flag.String("cache", resultcache.DefaultBackend, "Cache backend behind the cached strategy")
	sizes := flag.String("sizes", "", "Comma-separated fixture sizes in K lines (e.g., 10,25,50,100,250)")
	rounds := flag.Int("rounds", benchmark.DefaultRounds, "Measured rounds per case")
	needle := flag.String("needle", "needle-0000042", "Line to search for in generated fixtures")
	filter := flag.String("filter", "", "Substring filter over search case names (e.g., grep/100000)")
	procTimeout := flag.Duration("proc-timeout", strategy.DefaultProcTimeout, "Timeout per external tool invocation")
	csvOut := flag.String("csv", "", "Output search cases to CSV file")
	jsonOut := flag.String("json", "", "Output results to JSON file (a .zst suffix compresses)")
	saveBaseline := flag.String("save-baseline", "", "Save results as a baseline snapshot (.json or .json.zst)")
	baseline := flag.String("baseline", "", "Compare search results against a saved baseline")
	flag.Parse()

	if *showHelp {
		printUsage()
		return 0
	}

	// Parse suites
	suiteFilter = make(map[string]bool)
	if *suites == "all" || *suites == "" {
		for _, s := range validSuites {
			suiteFilter[s] = true
		}
	} else {
		validSuiteSet := make(map[string]bool)
		for _, s := range validSuites {
			validSuiteSet[s] = true
		}
		for s := range strings.SplitSeq(*suites, ",") {
			s = strings.TrimSpace(strings.ToLower(s))
			if s == "" {
				continue
			}
			if !validSuiteSet[s] {
				fmt.Fprintf(os.Stderr, "error: unknown suite %q\n\nAvailable suites:\n", s)
				for _, vs := range validSuites {
					fmt.Fprintf(os.Stderr, "  %s\n", vs)
				}
				return 1
			}
			suiteFilter[s] = true
		}
	}

	// Apply strategy filter
	if *strategies != "" {
		var names []string
		for name := range strings.SplitSeq(*strategies, ",") {
			names = append(names, strings.TrimSpace(name))
		}
		strategy.SetFilter(names)
	}

	// Apply cache backend filter
	if *caches != "" {
		var names []string
		for name := range strings.SplitSeq(*caches, ",") {
			names = append(names, strings.TrimSpace(name))
		}
		resultcache.SetFilter(names)
	}

	// Apply fixture sizes
	fixtureSizes = fixture.Sizes
	if *sizes != "" {
		fixtureSizes = parseIntList(*sizes, 1000)
		if len(fixtureSizes) == 0 {
			fmt.Fprintf(os.Stderr, "error: no usable sizes in %q\n", *sizes)
			return 1
		}
	}

	roundCount = *rounds
	if roundCount < 1 {
		roundCount = 1
	}
	caseFilter = *filter

	clean, err := strategy.SanitizeNeedle([]byte(*needle))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid needle: %v\n", err)
		return 1
	}
	searchNeedle = clean

	backing, err := resultcache.New(*cacheName, benchmark.DefaultCacheCapacity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\nAvailable backends:\n", err)
		for _, name := range resultcache.AvailableNames() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		return 1
	}
	defer backing.Close()
	cfg := strategy.Config{Cache: backing, ProcTimeout: *procTimeout}

	printHeader()

	pool, err := fixture.NewPool(searchNeedle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating fixture pool: %v\n", err)
		return 1
	}
	defer pool.Close() //nolint:errcheck // best-effort cleanup

	// Traverse is the only suite that searches trees instead of files.
	if suiteFilter["search"] || suiteFilter["cache"] || suiteFilter["memory"] {
		if err := pool.Warm(context.Background(), fixtureSizes); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating fixtures: %v\n", err)
			return 1
		}
	}

	var results output.Results

	if suiteFilter["search"] {
		data, failures, err := runSearchSuite(pool, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		results.Search = data
		results.Failures = append(results.Failures, failures...)
	}

	if suiteFilter["cache"] {
		data, failures, err := runCacheSuite(pool)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		results.Cache = data
		results.Failures = append(results.Failures, failures...)
	}

	if suiteFilter["traverse"] {
		data, failures, err := runTraverseSuite()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		results.Traverse = data
		results.Failures = append(results.Failures, failures...)
	}

	if suiteFilter["memory"] {
		data, failures, err := runMemorySuite(pool)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		results.Memory = data
		results.Failures = append(results.Failures, failures...)
	}

	results.Rankings, results.MedalTable = output.ComputeRankings(results)
	printOverallRanking(results.Rankings)

	// Build command line string and set machine info
	commandLine := "gosearchmark " + strings.Join(os.Args[1:], " ")
	results.MachineInfo = output.MachineInfo{
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		NumCPU:      runtime.NumCPU(),
		GoVersion:   runtime.Version(),
		CommandLine: commandLine,
	}

	var base *output.Results
	if *baseline != "" {
		b, err := output.ReadJSON(*baseline)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading baseline: %v\n", err)
			return 1
		}
		base = &b
		printComparison(output.Compare(results, b))
	}

	// Determine output paths
	var mdPath, jsonPath, csvPath string
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil { //nolint:gosec // G301: 0755 is standard dir permission
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			return 1
		}
		mdPath = filepath.Join(*outDir, "gosearchmark_results.md")
		jsonPath = filepath.Join(*outDir, "gosearchmark_results.json")
		csvPath = filepath.Join(*outDir, "gosearchmark_results.csv")
	} else {
		mdPath = filepath.Join(os.TempDir(), "gosearchmark_results.md")
	}
	if *jsonOut != "" {
		jsonPath = *jsonOut
	}
	if *csvOut != "" {
		csvPath = *csvOut
	}

	if err := output.WriteMarkdown(mdPath, results, commandLine); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing Markdown: %v\n", err)
		return 1
	}
	fmt.Printf("Results: %s\n", mdPath)

	if jsonPath != "" {
		if err := output.WriteJSON(jsonPath, results, commandLine); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			return 1
		}
		fmt.Printf("         %s\n", jsonPath)
	}

	if csvPath != "" {
		if err := output.WriteCSV(csvPath, results, base); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			return 1
		}
		fmt.Printf("         %s\n", csvPath)
	}

	if *saveBaseline != "" {
		if err := output.WriteJSON(*saveBaseline, results, commandLine); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing baseline: %v\n", err)
			return 1
		}
		fmt.Printf("Baseline: %s\n", *saveBaseline)
	}

	if n := len(results.Failures); n > 0 {
		fmt.Fprintf(os.Stderr, "%d failure(s) recorded\n", n)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Println("gosearchmark - Compare file search strategies")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gosearchmark                      Run all benchmarks (default)")
	fmt.Println("  gosearchmark -suites search       Run only search benchmarks")
	fmt.Println("  gosearchmark -suites cache,memory Run cache and memory benchmarks")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -suites <list>         Comma-separated suites: search,cache,traverse,memory (default: all)")
	fmt.Println("  -strategies <list>     Comma-separated strategies to benchmark (default: all)")
	fmt.Println("  -caches <list>         Comma-separated cache backends to benchmark (default: all)")
	fmt.Println("  -cache <name>          Cache backend behind the cached strategy (default: simple)")
	fmt.Println("  -sizes <list>          Comma-separated fixture sizes in K lines (default: 10,25,50,100,250)")
	fmt.Println("  -rounds <n>            Measured rounds per case (default: 10)")
	fmt.Println("  -needle <text>         Line to search for in generated fixtures")
	fmt.Println("  -filter <substr>       Only run search cases whose name contains <substr>")
	fmt.Println("  -proc-timeout <dur>    Timeout per external tool invocation (default: 30s)")
	fmt.Println("  -outdir <dir>          Output directory for gosearchmark_results.{md,json,csv}")
	fmt.Println("  -json <file>           Output results to JSON file (a .zst suffix compresses)")
	fmt.Println("  -csv <file>            Output search cases to CSV file")
	fmt.Println("  -save-baseline <file>  Save a baseline snapshot for later -baseline runs")
	fmt.Println("  -baseline <file>       Compare search results against a saved baseline")
	fmt.Println()
	fmt.Println("Available suites:")
	fmt.Println()
	fmt.Println("  search   - Time every strategy against every fixture size")
	fmt.Println("  cache    - Cold lookup vs warm hits for every result cache backend")
	fmt.Println("  traverse - DFS vs BFS over a generated tree")
	fmt.Println("  memory   - Bytes allocated per search (isolated processes)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  gosearchmark -suites search -strategies linear,mmap,grep")
	fmt.Println("  gosearchmark -sizes 10,50 -rounds 20 -filter mmap")
	fmt.Println("  gosearchmark -cache otter -caches otter,theine")
	fmt.Println("  gosearchmark -save-baseline base.json.zst")
	fmt.Println("  gosearchmark -baseline base.json.zst -csv compare.csv")
	fmt.Println()
	fmt.Println("Available strategies:")
	for _, name := range strategy.AvailableNames() {
		fmt.Printf("  - %s\n", name)
	}
	fmt.Println()
	fmt.Println("Available cache backends:")
	for _, name := range resultcache.AvailableNames() {
		fmt.Printf("  - %s\n", name)
	}
}

const lineWidth = 80

func printHeader() {
	fmt.Println("gosearchmark")
	fmt.Println()

	// Build config summary
	var suitesRun []string
	for _, s := range validSuites {
		if suiteFilter[s] {
			suitesRun = append(suitesRun, s)
		}
	}

	var sizeStrs []string
	for _, lines := range fixtureSizes {
		sizeStrs = append(sizeStrs, fmt.Sprintf("%dK", lines/1000))
	}

	fmt.Printf("  strategies: %d\n", len(strategy.AllNames()))
	fmt.Printf("  backends:   %d\n", len(resultcache.AllNames()))
	fmt.Printf("  suites:     %s\n", strings.Join(suitesRun, ", "))
	fmt.Printf("  sizes:      %s lines\n", strings.Join(sizeStrs, ", "))
	fmt.Printf("  needle:     %q\n", searchNeedle)
	fmt.Printf("  rounds:     %d\n", roundCount)
	fmt.Println()
}

func printSuite(name, description string) {
	header := fmt.Sprintf("%s: %s ", name, description)
	padding := max(lineWidth-len(header), 4)
	fmt.Printf("%s%s\n\n", header, strings.Repeat("─", padding))
}

func printTest(name, description string) {
	fmt.Printf("  [%s] %s\n\n", name, description)
}

func usec(d time.Duration) float64 {
	return float64(d) / 1e3
}

func runSearchSuite(pool *fixture.Pool, cfg strategy.Config) (*output.SearchData, []benchmark.Failure, error) {
	printSuite("search", "needle on the last line")
	printTest("search", fmt.Sprintf("%d strategies, %d sizes, %d rounds each", len(strategy.AllNames()), len(fixtureSizes), roundCount))

	cases, failures, err := benchmark.RunSearch(pool, strategy.All(), cfg, benchmark.SearchOptions{
		Sizes:  fixtureSizes,
		Rounds: roundCount,
		Filter: caseFilter,
	})
	if err != nil {
		return nil, failures, err
	}

	for _, lines := range fixtureSizes {
		printSearchTable(lines, cases)
	}

	data := &output.SearchData{Needle: pool.Needle(), Sizes: fixtureSizes, Cases: cases}
	return data, failures, nil
}

// printSearchTable prints one fixture size's results sorted by mean time.
func printSearchTable(lines int, cases []benchmark.SearchCase) {
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

	fmt.Printf("  [%s]\n\n", output.SizeLabel(lines))
	fmt.Println("  | Strategy      | Mean µs | StdDev µs | Min µs | Max µs | Rounds/s |")
	fmt.Println("  |---------------|---------|-----------|--------|--------|----------|")

	for _, r := range rows {
		fmt.Printf("  | %-13s | %7.1f | %9.2f | %6.1f | %6.1f | %8.1f |\n",
			r.Strategy, usec(r.Timing.Mean), usec(r.Timing.StdDev), usec(r.Timing.Min), usec(r.Timing.Max), r.Timing.PerSec)
	}

	if len(rows) >= 2 && rows[0].Timing.Mean > 0 {
		entries := make([]output.WinnerEntry, len(rows))
		for i, r := range rows {
			entries[i] = output.WinnerEntry{Name: r.Strategy, Score: usec(r.Timing.Mean)}
		}
		winners, runnerUp := output.FormatWinners(entries)
		if runnerUp != nil {
			pct := (runnerUp.Score - entries[0].Score) / entries[0].Score * 100
			fmt.Printf("\n  winner: %s (%.1f µs avg, %s is %.1f%% slower)\n",
				strings.Join(winners, ", "), entries[0].Score, runnerUp.Name, pct)
		}
	}
	fmt.Println()
}

func runCacheSuite(pool *fixture.Pool) (*output.CacheData, []benchmark.Failure, error) {
	printSuite("cache", "result cache cold vs warm")

	lines := fixtureSizes[len(fixtureSizes)-1]
	printTest("cache", fmt.Sprintf("%d backends, %d-line fixture, %d warm rounds", len(resultcache.AllNames()), lines, roundCount))

	cases, failures, err := benchmark.RunCache(pool, lines, roundCount, resultcache.All())
	if err != nil {
		return nil, failures, err
	}

	printCacheTable(cases)
	return &output.CacheData{Lines: lines, Cases: cases}, failures, nil
}

// printCacheTable prints backends sorted by warm hit time.
func printCacheTable(cases []benchmark.CacheCase) {
	if len(cases) == 0 {
		fmt.Println("  (no backends completed)")
		fmt.Println()
		return
	}

	sorted := make([]benchmark.CacheCase, len(cases))
	copy(sorted, cases)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Warm.Mean < sorted[j].Warm.Mean
	})

	fmt.Println("  | Backend       | Cold µs | Warm ns | StdDev ns | Speedup |")
	fmt.Println("  |---------------|---------|---------|-----------|---------|")

	for _, r := range sorted {
		fmt.Printf("  | %-13s | %7.1f | %7d | %9d | %6.0fx |\n",
			r.Backend, usec(r.Cold), r.Warm.Mean.Nanoseconds(), r.Warm.StdDev.Nanoseconds(), r.Speedup)
	}

	if len(sorted) >= 2 && sorted[0].Warm.Mean > 0 {
		entries := make([]output.WinnerEntry, len(sorted))
		for i, r := range sorted {
			entries[i] = output.WinnerEntry{Name: r.Backend, Score: float64(r.Warm.Mean.Nanoseconds())}
		}
		winners, runnerUp := output.FormatWinners(entries)
		if runnerUp != nil {
			pct := (runnerUp.Score - entries[0].Score) / entries[0].Score * 100
			fmt.Printf("\n  winner: %s (%.0f ns warm, %s is %.1f%% slower)\n",
				strings.Join(winners, ", "), entries[0].Score, runnerUp.Name, pct)
		}
	}
	fmt.Println()
}

func runTraverseSuite() (*output.TraverseData, []benchmark.Failure, error) {
	printSuite("traverse", "tree search, DFS vs BFS")

	depth, width := benchmark.DefaultTreeDepth, benchmark.DefaultTreeWidth
	nodes := traverse.Size(depth, width)
	printTest("traverse", fmt.Sprintf("depth %d, width %d, %d nodes, %d rounds", depth, width, nodes, roundCount))

	cases, failures, err := benchmark.RunTraverse(depth, width, roundCount)
	if err != nil {
		return nil, failures, err
	}

	printTraverseTable(cases)
	return &output.TraverseData{Depth: depth, Width: width, Nodes: nodes, Cases: cases}, failures, nil
}

// printTraverseTable groups rows by target, faster algorithm first.
func printTraverseTable(cases []benchmark.TraverseCase) {
	if len(cases) == 0 {
		fmt.Println("  (no cases completed)")
		fmt.Println()
		return
	}

	var targets []string
	seen := make(map[string]bool)
	for _, c := range cases {
		if !seen[c.Target] {
			seen[c.Target] = true
			targets = append(targets, c.Target)
		}
	}

	fmt.Println("  | Algo | Target  | Mean µs | StdDev µs | Min µs | Max µs |")
	fmt.Println("  |------|---------|---------|-----------|--------|--------|")

	for _, target := range targets {
		var rows []benchmark.TraverseCase
		for _, c := range cases {
			if c.Target == target {
				rows = append(rows, c)
			}
		}
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Timing.Mean < rows[j].Timing.Mean
		})
		for _, r := range rows {
			fmt.Printf("  | %-4s | %-7s | %7.1f | %9.2f | %6.1f | %6.1f |\n",
				r.Algo, r.Target, usec(r.Timing.Mean), usec(r.Timing.StdDev), usec(r.Timing.Min), usec(r.Timing.Max))
		}
	}

	// Winner by total time across all targets
	totals := make(map[string]time.Duration)
	for _, c := range cases {
		totals[c.Algo] += c.Timing.Mean
	}
	type algoTotal struct {
		name  string
		total time.Duration
	}
	var ranked []algoTotal
	for name, total := range totals {
		ranked = append(ranked, algoTotal{name, total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].total < ranked[j].total
	})
	if len(ranked) >= 2 && ranked[0].total > 0 {
		best := ranked[0]
		second := ranked[1]
		pct := float64(second.total-best.total) / float64(best.total) * 100
		fmt.Printf("\n  winner: %s (%.1f µs total, %s is %.1f%% slower)\n", best.name, usec(best.total), second.name, pct)
	}
	fmt.Println()
}

func runMemorySuite(pool *fixture.Pool) (*output.MemoryData, []benchmark.Failure, error) {
	printSuite("memory", "bytes allocated per search (isolated processes)")

	lines := fixtureSizes[len(fixtureSizes)-1]
	fx, err := pool.Get(fixture.WithNeedleAtEnd(lines))
	if err != nil {
		return nil, nil, fmt.Errorf("fixture for %d lines: %w", lines, err)
	}
	printTest("memory", fmt.Sprintf("%d-line fixture, one search per process", lines))

	results, failures, err := benchmark.RunMemory(fx.Path, pool.Needle(), fx.NeedleLine)
	if err != nil {
		fmt.Printf("  error: %v\n\n", err)
		failures = append(failures, benchmark.Failure{Suite: "memory", Case: "probe", Detail: err.Error()})
		return nil, failures, nil
	}

	printMemoryTable(results)
	return &output.MemoryData{Lines: lines, Results: results}, failures, nil
}

// printMemoryTable prints strategies sorted by allocated bytes, least first.
func printMemoryTable(results []benchmark.MemoryResult) {
	if len(results) == 0 {
		fmt.Println("  (no strategies completed)")
		fmt.Println()
		return
	}

	fmt.Println("  | Strategy      | Allocated (KB) | Line   |")
	fmt.Println("  |---------------|----------------|--------|")

	for _, r := range results {
		fmt.Printf("  | %-13s | %14.1f | %6d |\n", r.Name, float64(r.Bytes)/1024, r.Line)
	}

	if len(results) >= 2 && results[1].Bytes > 0 {
		best := results[0]
		second := results[1]
		savings := float64(second.Bytes-best.Bytes) / float64(second.Bytes) * 100
		fmt.Printf("\n  winner: %s (%.1f%% less memory vs %s)\n", best.Name, savings, second.Name)
	}
	fmt.Println()
}

// printComparison prints per-case deltas against a saved baseline run.
func printComparison(deltas []output.Delta) {
	printSuite("baseline", "current vs saved run")

	if len(deltas) == 0 {
		fmt.Println("  (no overlapping search cases)")
		fmt.Println()
		return
	}

	fmt.Println("  | Case                | Current µs | Baseline µs | Delta %  |")
	fmt.Println("  |---------------------|------------|-------------|----------|")

	for _, d := range deltas {
		fmt.Printf("  | %-19s | %10.1f | %11.1f | %+7.2f%% |\n",
			d.Case, usec(d.Current), usec(d.Baseline), d.Pct)
	}
	fmt.Println()
}

func printOverallRanking(rankings []output.Ranking) {
	if len(rankings) == 0 {
		return
	}

	printSuite("summary", "ranked voting across all sizes")

	for i := 0; i < len(rankings) && i < 3; i++ {
		r := rankings[i]
		fmt.Printf("  #%d  %s (%.0f points)\n", r.Rank, r.Name, r.Score)
	}
	fmt.Println()
}
