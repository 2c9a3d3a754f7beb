package strategy

type cachedStrategy struct {
	cache ResultCache
	inner Strategy
}

// NewCached creates a strategy that consults a result cache before
// delegating to a linear scan. The cache comes from Config; with no
// cache configured it degrades to the plain linear scan.
func NewCached(cfg Config) Strategy {
	return &cachedStrategy{cache: cfg.Cache, inner: NewLinear(cfg)}
}

func (s *cachedStrategy) Search(path, needle string) (Result, error) {
	if s.cache == nil {
		return s.inner.Search(path, needle)
	}
	key, err := CacheKey(path, needle)
	if err != nil {
		return Result{}, err
	}
	v, _, err := GetOrCompute(s.cache, key, func() (Result, error) {
		return s.inner.Search(path, needle)
	})
	return v, err
}

func (*cachedStrategy) Name() string {
	return "cached"
}
