package fixture

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Pool owns the session's fixture files in one temp directory. Fixtures
// are generated lazily, at most once per spec, and shared across suites.
// Close removes the whole directory.
type Pool struct {
	dir    string
	needle string

	mu      sync.Mutex
	entries map[string]func() (Fixture, error)
}

// NewPool creates the session directory for generated fixtures.
func NewPool(needle string) (*Pool, error) {
	dir, err := os.MkdirTemp("", "gosearchmark-*")
	if err != nil {
		return nil, fmt.Errorf("create fixture dir: %w", err)
	}
	return &Pool{dir: dir, needle: needle, entries: make(map[string]func() (Fixture, error))}, nil
}

// Dir returns the session directory path.
func (p *Pool) Dir() string {
	return p.dir
}

// Needle returns the needle the pool's fixtures are built around.
func (p *Pool) Needle() string {
	return p.needle
}

// Get returns the fixture for spec, generating it on first use. The lock
// only guards the entry map, so distinct specs can generate in parallel.
func (p *Pool) Get(spec Spec) (Fixture, error) {
	key := fileName(spec)

	p.mu.Lock()
	once, ok := p.entries[key]
	if !ok {
		once = sync.OnceValues(func() (Fixture, error) {
			return Create(p.dir, spec, p.needle)
		})
		p.entries[key] = once
	}
	p.mu.Unlock()

	return once()
}

// Warm pre-generates the fixtures for all sizes, with and without the
// needle, so generation cost never lands inside a measured round. This is
// the only concurrent part of the harness; measurement stays sequential.
func (p *Pool) Warm(ctx context.Context, sizes []int) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, lines := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := p.Get(WithNeedleAtEnd(lines)); err != nil {
				return err
			}
			_, err := p.Get(WithoutNeedle(lines))
			return err
		})
	}
	return g.Wait()
}

// Close removes the session directory and everything in it.
func (p *Pool) Close() error {
	return os.RemoveAll(p.dir)
}
