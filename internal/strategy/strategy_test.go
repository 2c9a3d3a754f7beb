package strategy

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNeedle = "the quick brown fox"

// writeFixture writes a key0..keyN-1 file with the needle replacing the
// lines named in at, and returns its path.
func writeFixture(tb testing.TB, lines int, needle string, at ...int) string {
	tb.Helper()

	pos := make(map[int]bool, len(at))
	for _, i := range at {
		pos[i] = true
	}

	var b strings.Builder
	for i := range lines {
		if pos[i] {
			b.WriteString(needle)
		} else {
			fmt.Fprintf(&b, "key%d", i)
		}
		b.WriteByte('\n')
	}

	path := filepath.Join(tb.TempDir(), "fixture.txt")
	require.NoError(tb, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

// newTestStrategy instantiates the named strategy, skipping the test when
// the external tool it depends on is not installed.
func newTestStrategy(t *testing.T, name string) Strategy {
	t.Helper()

	switch name {
	case "grep", "grep-m1":
		if _, err := exec.LookPath("grep"); err != nil {
			t.Skip("grep not installed")
		}
	case "awk":
		if _, err := exec.LookPath("awk"); err != nil {
			t.Skip("awk not installed")
		}
	}

	s := New(name, Config{Cache: newMapCache()})
	require.NotNil(t, s, "unknown strategy %q", name)
	return s
}

func TestAllNamesCoversRegistry(t *testing.T) {
	assert.Len(t, AvailableNames(), len(registry))
	for _, name := range AvailableNames() {
		assert.Contains(t, registry, name)
	}
}

func TestSetFilter(t *testing.T) {
	t.Cleanup(func() { SetFilter(nil) })

	SetFilter([]string{"linear", "awk"})
	assert.Equal(t, []string{"linear", "awk"}, AllNames())
	assert.Len(t, All(), 2)

	SetFilter(nil)
	assert.Equal(t, AvailableNames(), AllNames())
}

func TestStrategiesFindNeedleAtEnd(t *testing.T) {
	path := writeFixture(t, 10, testNeedle, 9)
	want := Result{Line: 9, Text: testNeedle, Found: true}

	for _, name := range AvailableNames() {
		t.Run(name, func(t *testing.T) {
			s := newTestStrategy(t, name)
			got, err := s.Search(path, testNeedle)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %+v, want %+v", got, want)
		})
	}
}

func TestStrategiesReportFirstOccurrence(t *testing.T) {
	path := writeFixture(t, 10, testNeedle, 2, 7)
	want := Result{Line: 2, Text: testNeedle, Found: true}

	for _, name := range AvailableNames() {
		t.Run(name, func(t *testing.T) {
			s := newTestStrategy(t, name)
			got, err := s.Search(path, testNeedle)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestStrategiesFindNeedleOnFirstLine(t *testing.T) {
	path := writeFixture(t, 100, testNeedle, 0)
	want := Result{Line: 0, Text: testNeedle, Found: true}

	for _, name := range AvailableNames() {
		t.Run(name, func(t *testing.T) {
			s := newTestStrategy(t, name)
			got, err := s.Search(path, testNeedle)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestStrategiesAgreeOnAbsentNeedle(t *testing.T) {
	path := writeFixture(t, 10, testNeedle)

	for _, name := range AvailableNames() {
		t.Run(name, func(t *testing.T) {
			s := newTestStrategy(t, name)
			got, err := s.Search(path, testNeedle)
			require.NoError(t, err)
			assert.Equal(t, Result{}, got)
		})
	}
}

func TestStrategiesAgreeOnBackslashNeedle(t *testing.T) {
	// Backslashes survive sanitization, so every strategy must take
	// them literally; awk in particular must not C-escape them away.
	const needle = `path\to\thing`
	path := writeFixture(t, 10, needle, 4)
	want := Result{Line: 4, Text: needle, Found: true}

	for _, name := range AvailableNames() {
		t.Run(name, func(t *testing.T) {
			s := newTestStrategy(t, name)
			got, err := s.Search(path, needle)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestStrategiesAgreeOnEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	for _, name := range AvailableNames() {
		t.Run(name, func(t *testing.T) {
			s := newTestStrategy(t, name)
			got, err := s.Search(path, testNeedle)
			require.NoError(t, err)
			assert.Equal(t, Result{}, got)
		})
	}
}

func TestStrategiesHandleMissingTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.txt")
	content := "key0\nkey1\n" + testNeedle
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	want := Result{Line: 2, Text: testNeedle, Found: true}

	for _, name := range AvailableNames() {
		t.Run(name, func(t *testing.T) {
			s := newTestStrategy(t, name)
			got, err := s.Search(path, testNeedle)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestStrategiesPartialLinesNeverMatch(t *testing.T) {
	// Needle text embedded in a longer line must not count as a match.
	path := filepath.Join(t.TempDir(), "fixture.txt")
	content := "prefix " + testNeedle + "\n" + testNeedle + " suffix\n" + testNeedle + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	want := Result{Line: 2, Text: testNeedle, Found: true}

	for _, name := range AvailableNames() {
		t.Run(name, func(t *testing.T) {
			s := newTestStrategy(t, name)
			got, err := s.Search(path, testNeedle)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestInProcessStrategiesErrorOnMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	for _, name := range []string{"linear", "readlines", "mmap", "cached"} {
		t.Run(name, func(t *testing.T) {
			s := newTestStrategy(t, name)
			_, err := s.Search(missing, testNeedle)
			assert.Error(t, err)
		})
	}
}

func TestGrepMissingFileIsProcError(t *testing.T) {
	if _, err := exec.LookPath("grep"); err != nil {
		t.Skip("grep not installed")
	}

	s := New("grep", Config{})
	_, err := s.Search(filepath.Join(t.TempDir(), "nope.txt"), testNeedle)
	require.Error(t, err)

	var pe *ProcError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "grep", pe.Tool)
	assert.GreaterOrEqual(t, pe.Code, 2)
	assert.NotEmpty(t, pe.Stderr)
}

func TestAwkMissingFileIsProcError(t *testing.T) {
	if _, err := exec.LookPath("awk"); err != nil {
		t.Skip("awk not installed")
	}

	s := New("awk", Config{})
	_, err := s.Search(filepath.Join(t.TempDir(), "nope.txt"), testNeedle)
	require.Error(t, err)

	var pe *ProcError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "awk", pe.Tool)
}
