package strategy

import "testing"

func BenchmarkInProcessStrategies(b *testing.B) {
	path := writeFixture(b, 100_000, testNeedle, 99_999)

	for _, name := range []string{"linear", "readlines", "mmap"} {
		s := New(name, Config{})
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				r, err := s.Search(path, testNeedle)
				if err != nil {
					b.Fatal(err)
				}
				if !r.Found {
					b.Fatal("needle not found")
				}
			}
		})
	}
}

func BenchmarkCachedStrategy(b *testing.B) {
	path := writeFixture(b, 100_000, testNeedle, 99_999)
	s := NewCached(Config{Cache: newMapCache()})

	// Prime the cache so the loop measures the hit path.
	if _, err := s.Search(path, testNeedle); err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		r, err := s.Search(path, testNeedle)
		if err != nil {
			b.Fatal(err)
		}
		if !r.Found {
			b.Fatal("needle not found")
		}
	}
}
