package strategy

import (
	"bytes"

	"github.com/nwalipaul0911/gosearchmark/internal/mmap"
)

type mmapStrategy struct{}

// NewMmap creates a strategy that memory-maps the file and walks the
// mapping newline by newline without heap copies.
func NewMmap(Config) Strategy {
	return mmapStrategy{}
}

func (mmapStrategy) Search(path, needle string) (Result, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer m.Close()

	needleB := []byte(needle)
	data := m.Data
	for line := 0; len(data) > 0; line++ {
		cur := data
		if end := bytes.IndexByte(data, '\n'); end >= 0 {
			cur = data[:end]
			data = data[end+1:]
		} else {
			data = nil
		}
		if bytes.Equal(cur, needleB) {
			return Result{Line: line, Text: needle, Found: true}, nil
		}
	}
	return Result{}, nil
}

func (mmapStrategy) Name() string {
	return "mmap"
}
