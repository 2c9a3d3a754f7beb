// Package fixture generates and tracks the temp files the benchmarks search.
package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/zeebo/xxh3"

	"github.com/nwalipaul0911/gosearchmark/internal/strategy"
)

// Sizes lists the default fixture sizes in lines.
var Sizes = []int{10_000, 25_000, 50_000, 100_000, 250_000}

// Spec describes the shape of a generated fixture file.
type Spec struct {
	Lines    int
	NeedleAt []int // 0-based lines that hold the needle; empty means absent
}

// WithNeedleAtEnd returns a spec with the needle on the last line, the
// worst case for early-exit strategies.
func WithNeedleAtEnd(lines int) Spec {
	return Spec{Lines: lines, NeedleAt: []int{lines - 1}}
}

// WithoutNeedle returns a spec whose fixture never contains the needle.
func WithoutNeedle(lines int) Spec {
	return Spec{Lines: lines}
}

// Fixture is a generated search corpus on disk.
type Fixture struct {
	Path       string
	Lines      int
	Needle     string
	NeedleLine int    // first needle line, -1 when absent
	Sum        uint64 // xxh3 fingerprint of the file contents
}

// Expected returns the result every strategy must produce for this fixture.
func (fx Fixture) Expected() strategy.Result {
	if fx.NeedleLine < 0 {
		return strategy.Result{}
	}
	return strategy.Result{Line: fx.NeedleLine, Text: fx.Needle, Found: true}
}

// Generate writes a fixture to w: line i is "key<i>" except the positions
// in spec.NeedleAt, which hold the needle verbatim. Every line ends with a
// newline, so the file has exactly spec.Lines lines. The returned sum
// fingerprints the written bytes.
func Generate(w io.Writer, spec Spec, needle string) (uint64, error) {
	if spec.Lines < 0 {
		return 0, fmt.Errorf("negative line count %d", spec.Lines)
	}

	at := make(map[int]bool, len(spec.NeedleAt))
	for _, i := range spec.NeedleAt {
		if i < 0 || i >= spec.Lines {
			return 0, fmt.Errorf("needle line %d outside 0..%d", i, spec.Lines-1)
		}
		at[i] = true
	}

	h := xxh3.New()
	bw := bufio.NewWriter(io.MultiWriter(w, h))
	for i := range spec.Lines {
		var err error
		if at[i] {
			_, err = fmt.Fprintln(bw, needle)
		} else {
			_, err = fmt.Fprintf(bw, "key%d\n", i)
		}
		if err != nil {
			return 0, err
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// Create generates a fixture file inside dir. Any failure is fatal to the
// run, so partial files are removed before returning.
func Create(dir string, spec Spec, needle string) (Fixture, error) {
	path := filepath.Join(dir, fileName(spec))
	f, err := os.Create(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("create fixture %s: %w", path, err)
	}

	sum, err := Generate(f, spec, needle)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return Fixture{}, fmt.Errorf("write fixture %s: %w", path, err)
	}

	fx := Fixture{Path: path, Lines: spec.Lines, Needle: needle, NeedleLine: -1, Sum: sum}
	if len(spec.NeedleAt) > 0 {
		fx.NeedleLine = slices.Min(spec.NeedleAt)
	}
	return fx, nil
}

// Verify re-hashes the file and fails if its contents changed. The
// benchmarks call it after every case: strategies must never mutate the
// files they search.
func Verify(fx Fixture) error {
	f, err := os.Open(fx.Path)
	if err != nil {
		return fmt.Errorf("verify fixture %s: %w", fx.Path, err)
	}
	defer f.Close()

	h := xxh3.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("verify fixture %s: %w", fx.Path, err)
	}
	if got := h.Sum64(); got != fx.Sum {
		return fmt.Errorf("fixture %s changed on disk: sum %x, want %x", fx.Path, got, fx.Sum)
	}
	return nil
}

func fileName(spec Spec) string {
	if len(spec.NeedleAt) == 0 {
		return fmt.Sprintf("lines%d_absent.txt", spec.Lines)
	}
	return fmt.Sprintf("lines%d_at%d_n%d.txt", spec.Lines, slices.Min(spec.NeedleAt), len(spec.NeedleAt))
}
