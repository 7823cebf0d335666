package tensor

// axisToFront rewrites src, viewed as (outer, n, inner), into dst laid out
// as (n, outer, inner). Each copy moves a contiguous run of inner elements.
func axisToFront[T Scalar](dst, src []T, outer, n, inner int) {
	if outer == 1 {
		copy(dst, src)

		return
	}

	for o := 0; o < outer; o++ {
		for j := 0; j < n; j++ {
			s := (o*n + j) * inner
			d := (j*outer + o) * inner
			copy(dst[d:d+inner], src[s:s+inner])
		}
	}
}

// axisFromFront is the inverse of axisToFront: src laid out as
// (n, outer, inner) is rewritten into dst as (outer, n, inner).
func axisFromFront[T Scalar](dst, src []T, outer, n, inner int) {
	if outer == 1 {
		copy(dst, src)

		return
	}

	for o := 0; o < outer; o++ {
		for j := 0; j < n; j++ {
			s := (j*outer + o) * inner
			d := (o*n + j) * inner
			copy(dst[d:d+inner], src[s:s+inner])
		}
	}
}
