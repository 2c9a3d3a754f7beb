// Package strategy provides interchangeable needle-in-file search implementations.
package strategy

import "time"

// Result is the outcome of one needle lookup. Line is 0-based.
// The zero value means the needle was not found.
type Result struct {
	Line  int    `json:"line"`
	Text  string `json:"text"`
	Found bool   `json:"found"`
}

// Equal reports whether two results agree.
func (r Result) Equal(other Result) bool {
	return r == other
}

// Strategy locates a line exactly equal to needle within a file.
// All strategies report the first occurrence.
type Strategy interface {
	Search(path, needle string) (Result, error)
	Name() string
}

// Factory creates a strategy from shared configuration.
type Factory func(cfg Config) Strategy

// DefaultProcTimeout bounds a single external tool invocation.
const DefaultProcTimeout = 30 * time.Second

// Config carries the dependencies strategies receive at construction.
type Config struct {
	// Cache backs the cached strategy. The other strategies ignore it.
	Cache ResultCache
	// ProcTimeout bounds each external tool invocation.
	// Zero means DefaultProcTimeout.
	ProcTimeout time.Duration
}

func (c Config) procTimeout() time.Duration {
	if c.ProcTimeout > 0 {
		return c.ProcTimeout
	}
	return DefaultProcTimeout
}
