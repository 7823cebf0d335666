package specfun

import "math"

// BesselJZeros returns the first n positive zeros of J_nu in increasing
// order. Initial estimates come from McMahon's asymptotic expansion and are
// polished by Newton iterations; a bisection fallback guards the rare case
// of an estimate escaping its bracket. nu must be >= 0; returns nil for
// n <= 0.
func BesselJZeros(nu float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	zeros := make([]float64, 0, n)
	prev := nu // all zeros lie above the order

	for m := 1; m <= n; m++ {
		guess := mcmahon(nu, m)
		if guess <= prev {
			guess = prev + 0.5
		}

		z := newtonZero(nu, guess)
		if z <= prev {
			z = bisectZero(nu, prev+1e-12, math.Max(guess, prev)+math.Pi+1)
		}

		zeros = append(zeros, z)
		prev = z
	}

	return zeros
}

// BesselJZero returns the m-th positive zero of J_nu (1-based).
func BesselJZero(nu float64, m int) float64 {
	zs := BesselJZeros(nu, m)
	if zs == nil {
		return math.NaN()
	}

	return zs[m-1]
}

// mcmahon is McMahon's large-zero expansion for the m-th zero of J_nu.
func mcmahon(nu float64, m int) float64 {
	b := (float64(m) + 0.5*nu - 0.25) * math.Pi
	mu := 4 * nu * nu
	e := 8 * b

	z := b - (mu-1)/e
	z -= 4 * (mu - 1) * (7*mu - 31) / (3 * e * e * e)
	z -= 32 * (mu - 1) * (83*mu*mu - 982*mu + 3779) / (15 * e * e * e * e * e)

	return z
}

// newtonZero polishes a zero estimate with damped Newton steps, using
// J'_nu(x) = (nu/x) J_nu(x) - J_{nu+1}(x).
func newtonZero(nu, guess float64) float64 {
	z := guess

	for i := 0; i < 60; i++ {
		j := BesselJ(nu, z)

		jp := (nu/z)*j - BesselJ(nu+1, z)
		if jp == 0 {
			break
		}

		dz := j / jp
		if dz > 1 {
			dz = 1
		} else if dz < -1 {
			dz = -1
		}

		z -= dz
		if math.Abs(dz) <= 1e-14*z {
			break
		}
	}

	return z
}

// bisectZero locates a sign change of J_nu in (lo, hi), widening hi if
// needed, and hands the midpoint back to Newton.
func bisectZero(nu, lo, hi float64) float64 {
	for i := 0; i < 100; i++ {
		if BesselJ(nu, lo)*BesselJ(nu, hi) < 0 {
			break
		}

		hi += 0.5
	}

	for i := 0; i < 200; i++ {
		mid := 0.5 * (lo + hi)
		if BesselJ(nu, lo)*BesselJ(nu, mid) <= 0 {
			hi = mid
		} else {
			lo = mid
		}

		if hi-lo < 1e-15*hi {
			break
		}
	}

	return newtonZero(nu, 0.5*(lo+hi))
}
