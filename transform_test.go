package algohankel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-hankel/internal/specfun"
)

func TestNewQDSHTValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		order  float64
		dim    int
		radius float64
		size   int
		opts   []Option
		want   error
	}{
		{"negative order", -1, 1, 1, 8, nil, ErrInvalidOrder},
		{"nan order", math.NaN(), 1, 1, 8, nil, ErrInvalidOrder},
		{"zero dimension", 0, 0, 1, 8, nil, ErrInvalidDimension},
		{"zero radius", 0, 1, 0, 8, nil, ErrInvalidRadius},
		{"negative radius", 0, 1, -2, 8, nil, ErrInvalidRadius},
		{"infinite radius", 0, 1, math.Inf(1), 8, nil, ErrInvalidRadius},
		{"zero size", 0, 1, 1, 0, nil, ErrInvalidSize},
		{"negative axis", 0, 1, 1, 8, []Option{WithAxis(-1)}, ErrInvalidAxis},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewQDSHT(tc.order, tc.dim, tc.radius, tc.size, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGridInvariants(t *testing.T) {
	t.Parallel()

	for _, tq := range roundTripTransforms {
		q, err := NewQDSHT(tq.order, tq.dim, 7.5, 32)
		require.NoError(t, err, tq.name)

		r := q.RNodes()
		k := q.KNodes()
		sr := q.ScaleR()
		sk := q.ScaleK()

		require.Len(t, r, 32)

		for i := 0; i < len(r); i++ {
			assert.Positive(t, sr[i], "scaleR[%d]", i)
			assert.Positive(t, sk[i], "scaleK[%d]", i)

			if i > 0 {
				assert.Greater(t, r[i], r[i-1], "r not increasing at %d", i)
				assert.Greater(t, k[i], k[i-1], "k not increasing at %d", i)
			}
		}

		assert.Less(t, r[len(r)-1], q.R(), "nodes must lie inside the aperture")

		// K = S/R with S the (N+1)-th zero.
		s := specfun.SphBesselJZeros(tq.order, tq.dim, 33)[32]
		assert.InEpsilon(t, s/q.R(), q.K(), 1e-12)

		// r and k are the zeros scaled by R/S and K/S.
		zeros := specfun.SphBesselJZeros(tq.order, tq.dim, 32)
		for i, z := range zeros {
			assert.InEpsilon(t, z*q.R()/s, r[i], 1e-12)
			assert.InEpsilon(t, z*q.K()/s, k[i], 1e-12)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	q, err := NewQDHT(0, 1, 8)
	require.NoError(t, err)

	r := q.RNodes()
	r[0] = -1
	assert.NotEqual(t, r[0], q.RNodes()[0])

	sr := q.ScaleR()
	sr[0] = -1
	assert.NotEqual(t, sr[0], q.ScaleR()[0])
}

func TestWithAxisRetarget(t *testing.T) {
	t.Parallel()

	q, err := NewQDHT(0, 1, 8)
	require.NoError(t, err)

	same, err := q.WithAxis(0)
	require.NoError(t, err)
	assert.Same(t, q, same)

	q1, err := q.WithAxis(1)
	require.NoError(t, err)
	assert.Equal(t, 1, q1.Axis())
	assert.Equal(t, 0, q.Axis())
	assert.Equal(t, q.RNodes(), q1.RNodes())

	_, err = q.WithAxis(-1)
	assert.ErrorIs(t, err, ErrInvalidAxis)
}

// The Gaussian exp(-r^2/2) is its own transform at order 0 in every
// spherical dimension under this normalization.
func TestGaussianSelfTransform(t *testing.T) {
	t.Parallel()

	for _, dim := range []int{1, 2, 3} {
		q, err := NewQDSHT(0, dim, 10, 128)
		require.NoError(t, err)

		a, err := NewArrayFrom(gaussianAt(q.RNodes()), q.Len())
		require.NoError(t, err)

		ak, err := Apply(q, a)
		require.NoError(t, err)

		want := gaussianAt(q.KNodes())
		for i, got := range ak.Data() {
			assert.InDelta(t, want[i], got, 1e-9, "dim %d node %d", dim, i)
		}
	}
}
