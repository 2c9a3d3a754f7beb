package strategy

import (
	"bytes"
	"os"
)

type readLinesStrategy struct{}

// NewReadLines creates a strategy that reads the whole file into memory
// before comparing lines. Peak memory is proportional to file size.
func NewReadLines(Config) Strategy {
	return readLinesStrategy{}
}

func (readLinesStrategy) Search(path, needle string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	lines := bytes.Split(data, []byte{'\n'})
	// A trailing newline yields one empty trailing element, not a line.
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}

	needleB := []byte(needle)
	for i, line := range lines {
		if bytes.Equal(line, needleB) {
			return Result{Line: i, Text: needle, Found: true}, nil
		}
	}
	return Result{}, nil
}

func (readLinesStrategy) Name() string {
	return "readlines"
}
