// Package output provides result formatting and export.
package output

import (
	"github.com/nwalipaul0911/gosearchmark/internal/benchmark"
)

// Results holds everything one run produced.
type Results struct {
	Timestamp   string
	MachineInfo MachineInfo
	Search      *SearchData
	Cache       *CacheData
	Traverse    *TraverseData
	Memory      *MemoryData
	Failures    []benchmark.Failure
	Rankings    []Ranking
	MedalTable  *MedalTable
}

// MachineInfo holds information about the benchmark environment.
type MachineInfo struct {
	OS          string
	Arch        string
	NumCPU      int
	GoVersion   string
	CommandLine string
}

// SearchData holds search suite results.
type SearchData struct {
	Needle string
	Sizes  []int
	Cases  []benchmark.SearchCase
}

// CacheData holds cache suite results.
type CacheData struct {
	Lines int
	Cases []benchmark.CacheCase
}

// TraverseData holds traverse suite results.
type TraverseData struct {
	Depth int
	Width int
	Nodes int
	Cases []benchmark.TraverseCase
}

// MemoryData holds memory suite results.
type MemoryData struct {
	Lines   int
	Results []benchmark.MemoryResult
}

// Ranking represents an overall ranking entry.
type Ranking struct {
	Rank   int
	Name   string
	Score  float64
	Gold   int
	Silver int
	Bronze int
}

// BenchmarkMedal represents a single benchmark's top placements. Ties
// share a slot.
type BenchmarkMedal struct {
	Name   string
	Gold   []string
	Silver []string
	Bronze []string
}

// CategoryMedals holds medals for one suite.
type CategoryMedals struct {
	Name       string
	Benchmarks []BenchmarkMedal
	Rankings   []Ranking
}

// MedalTable holds all benchmark medals organized by suite.
type MedalTable struct {
	Categories []CategoryMedals
}
