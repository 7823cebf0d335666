package specfun

import "math"

// SphScale returns the dimension constant c_n of the hyperspherical Bessel
// functions: sqrt(pi/2) for even n, 1 for odd n.
func SphScale(n int) float64 {
	if n%2 == 0 {
		return math.Sqrt(math.Pi / 2)
	}

	return 1
}

// SphBesselJ computes the hyperspherical Bessel function
//
//	j_p^n(x) = c_n x^(-(n-1)/2) J_{p+(n-1)/2}(x)
//
// for order p >= 0 and spherical dimension n >= 1. For n = 1 it reduces to
// J_p, for n = 2 with p = 0 to sin(x)/x. Arguments below the small-argument
// threshold take the x -> 0 limit: c_n / (2^a Gamma(a+1)) with a = (n-1)/2
// when p == 0, and 0 otherwise.
func SphBesselJ(p float64, n int, x float64) float64 {
	cn := SphScale(n)
	alpha := 0.5 * (float64(n) - 1)

	if math.Abs(x) < smallArg {
		if p != 0 {
			return 0
		}

		return cn / (math.Pow(2, alpha) * math.Gamma(alpha+1))
	}

	return cn * math.Pow(x, -alpha) * BesselJ(p+alpha, x)
}

// SphBesselJZeros returns the first count positive zeros of j_p^n, which
// coincide with the zeros of J_{p+(n-1)/2}.
func SphBesselJZeros(p float64, n, count int) []float64 {
	return BesselJZeros(p+0.5*(float64(n)-1), count)
}
