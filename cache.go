package algohankel

import "sync"

// cacheKey identifies a transform up to the parameters that determine its
// grid and operator. The axis is part of the key so cached transforms
// come back ready to apply.
type cacheKey struct {
	p    float64
	n    int
	r    float64
	size int
	axis int
}

// Cache memoizes constructed transforms. Building the dense operator is
// the O(N^2) dominant cost of using the package; a cache amortizes it
// across call sites that keep requesting the same parameters. Transforms
// are immutable, so handing the same instance to every caller is safe.
type Cache struct {
	mu sync.Mutex
	m  map[cacheKey]*Transform
}

// NewCache creates an empty transform cache.
func NewCache() *Cache {
	return &Cache{m: make(map[cacheKey]*Transform)}
}

// DefaultCache is the process-wide transform cache.
var DefaultCache = NewCache()

// QDSHT returns the cached transform for the given parameters, building
// and caching it on first request.
func (c *Cache) QDSHT(order float64, sphDim int, radius float64, size int, opts ...Option) (*Transform, error) {
	probe := &Transform{axis: 0}
	for _, opt := range opts {
		opt(probe)
	}

	key := cacheKey{p: order, n: sphDim, r: radius, size: size, axis: probe.axis}

	c.mu.Lock()
	defer c.mu.Unlock()

	if q, ok := c.m[key]; ok {
		return q, nil
	}

	q, err := NewQDSHT(order, sphDim, radius, size, opts...)
	if err != nil {
		return nil, err
	}

	c.m[key] = q

	return q, nil
}

// QDHT is the cylindrical (spherical dimension 1) case of QDSHT.
func (c *Cache) QDHT(order, radius float64, size int, opts ...Option) (*Transform, error) {
	return c.QDSHT(order, 1, radius, size, opts...)
}

// Len returns the number of cached transforms.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.m)
}

// Clear removes all cached transforms.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m = make(map[cacheKey]*Transform)
}
