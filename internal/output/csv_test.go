package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRoundTrip(t *testing.T) {
	results := sampleResults()
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteCSV(path, results, nil))

	cases, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, results.Search.Cases, cases)
}

func TestCSVBaselineColumns(t *testing.T) {
	current := sampleResults()
	baseline := sampleResults()
	for i := range baseline.Search.Cases {
		baseline.Search.Cases[i].Timing.Mean *= 2
	}

	path := filepath.Join(t.TempDir(), "compared.csv")
	require.NoError(t, WriteCSV(path, current, &baseline))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Contains(t, lines[0], "baseline_mean_ns")
	assert.Contains(t, lines[0], "delta_pct")
	assert.Contains(t, lines[1], "-50.00", "current at half the baseline mean")

	// The reader ignores baseline columns, so round-trip still holds.
	cases, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, current.Search.Cases, cases)
}

func TestCSVNoCases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteCSV(path, Results{}, nil))

	cases, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestReadCSVRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("size,strategy\nnot-a-number,linear\n"), 0o644))

	_, err := ReadCSV(path)
	assert.Error(t, err)
}
