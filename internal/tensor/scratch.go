package tensor

import "sync"

// Scratch buffers for the permutation and real/imaginary staging used by
// the apply kernels. Pooling keeps concurrent transforms from allocating
// per call; buffers are retained at whatever capacity they grew to.
var floatPool = sync.Pool{
	New: func() any { return new([]float64) },
}

func getFloats(n int) *[]float64 {
	p := floatPool.Get().(*[]float64)
	if cap(*p) < n {
		*p = make([]float64, n)
	}

	*p = (*p)[:n]

	return p
}

func putFloats(p *[]float64) {
	floatPool.Put(p)
}
