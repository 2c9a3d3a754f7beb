package strategy

// registry maps strategy names to their factory functions.
var registry = map[string]Factory{
	"linear":    NewLinear,
	"readlines": NewReadLines,
	"mmap":      NewMmap,
	"grep":      NewGrep,
	"grep-m1":   NewGrepFirstMatch,
	"awk":       NewAwk,
	"cached":    NewCached,
}

// defaultOrder defines the display order for strategies.
var defaultOrder = []string{
	"linear", "readlines", "mmap", "grep", "grep-m1", "awk", "cached",
}

// Filter holds the current strategy filter (nil = all strategies).
var Filter map[string]bool

// SetFilter sets which strategies to include in benchmarks.
func SetFilter(names []string) {
	if len(names) == 0 {
		Filter = nil
		return
	}
	Filter = make(map[string]bool)
	for _, name := range names {
		Filter[name] = true
	}
}

// All returns factories for all (or filtered) strategies.
func All() []Factory {
	var factories []Factory
	for _, name := range defaultOrder {
		if Filter != nil && !Filter[name] {
			continue
		}
		if f, ok := registry[name]; ok {
			factories = append(factories, f)
		}
	}
	return factories
}

// AllNames returns the names of all (or filtered) strategies.
func AllNames() []string {
	if Filter == nil {
		return defaultOrder
	}
	var names []string
	for _, name := range defaultOrder {
		if Filter[name] {
			names = append(names, name)
		}
	}
	return names
}

// AvailableNames returns all strategy names (ignoring filter).
func AvailableNames() []string {
	return defaultOrder
}

// New creates the named strategy, or nil if the name is unknown.
func New(name string, cfg Config) Strategy {
	f, ok := registry[name]
	if !ok {
		return nil
	}
	return f(cfg)
}
