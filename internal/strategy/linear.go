package strategy

import (
	"bufio"
	"bytes"
	"os"
)

// maxLine bounds a single fixture line for the buffered scanners.
const maxLine = 1024 * 1024

type linearStrategy struct{}

// NewLinear creates a strategy that scans the file line by line,
// stopping as soon as the needle is found.
func NewLinear(Config) Strategy {
	return linearStrategy{}
}

func (linearStrategy) Search(path, needle string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	needleB := []byte(needle)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for line := 0; sc.Scan(); line++ {
		if bytes.Equal(sc.Bytes(), needleB) {
			return Result{Line: line, Text: needle, Found: true}, nil
		}
	}
	if err := sc.Err(); err != nil {
		return Result{}, err
	}
	return Result{}, nil
}

func (linearStrategy) Name() string {
	return "linear"
}
