package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwalipaul0911/gosearchmark/internal/benchmark"
)

func sampleResults() Results {
	return Results{
		MachineInfo: MachineInfo{OS: "linux", Arch: "amd64", NumCPU: 8, GoVersion: "go1.25.4"},
		Search: &SearchData{
			Needle: "the quick brown fox",
			Sizes:  []int{10_000, 25_000},
			Cases: []benchmark.SearchCase{
				{Strategy: "linear", Lines: 10_000, Timing: benchmark.Timing{Rounds: 10, Mean: 1200, StdDev: 50, Min: 1100, Max: 1400, PerSec: 833333.25}},
				{Strategy: "mmap", Lines: 10_000, Timing: benchmark.Timing{Rounds: 10, Mean: 800, StdDev: 20, Min: 760, Max: 860, PerSec: 1250000}},
				{Strategy: "cached", Lines: 25_000, Cached: true, Timing: benchmark.Timing{Rounds: 10, Mean: 90, StdDev: 4, Min: 82, Max: 101, PerSec: 11111111.5}},
			},
		},
		Cache: &CacheData{
			Lines: 25_000,
			Cases: []benchmark.CacheCase{
				{Backend: "simple", Lines: 25_000, Cold: 150000, Warm: benchmark.Timing{Rounds: 10, Mean: 120, StdDev: 8, Min: 110, Max: 140, PerSec: 8333333}, Speedup: 1250},
			},
		},
		Traverse: &TraverseData{
			Depth: 10, Width: 3, Nodes: 29_524,
			Cases: []benchmark.TraverseCase{
				{Algo: "dfs", Target: "leaf", Timing: benchmark.Timing{Rounds: 10, Mean: 45000, StdDev: 900, Min: 43000, Max: 47000, PerSec: 22222}},
			},
		},
		Memory: &MemoryData{
			Lines: 25_000,
			Results: []benchmark.MemoryResult{
				{Name: "mmap", Bytes: 8192, Line: 24_999},
				{Name: "linear", Bytes: 1_100_000, Line: 24_999},
			},
		},
		Failures: []benchmark.Failure{
			{Suite: "search", Case: "awk/10000", Strategy: "awk", Detail: "awk: exit status 2"},
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, WriteJSON(path, sampleResults(), "gosearchmark -rounds 3"))

	got, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "gosearchmark -rounds 3", got.MachineInfo.CommandLine)
	assert.NotEmpty(t, got.Timestamp)

	want := sampleResults()
	require.NotNil(t, got.Search)
	assert.Equal(t, want.Search.Cases, got.Search.Cases)
	require.NotNil(t, got.Cache)
	assert.Equal(t, want.Cache.Cases, got.Cache.Cases)
	require.NotNil(t, got.Traverse)
	assert.Equal(t, want.Traverse.Nodes, got.Traverse.Nodes)
	require.NotNil(t, got.Memory)
	assert.Equal(t, want.Memory.Results, got.Memory.Results)
	assert.Equal(t, want.Failures, got.Failures)
}

func TestJSONZstdRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json.zst")
	require.NoError(t, WriteJSON(path, sampleResults(), "gosearchmark"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, json.Valid(raw), "a .zst file must not hold plain JSON")

	got, err := ReadJSON(path)
	require.NoError(t, err)
	require.NotNil(t, got.Search)
	assert.Equal(t, sampleResults().Search.Cases, got.Search.Cases)
}

func TestReadJSONMissingFile(t *testing.T) {
	_, err := ReadJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestReadJSONGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := ReadJSON(path)
	assert.Error(t, err)
}
