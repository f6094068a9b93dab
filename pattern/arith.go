package pattern

import "math/bits"

// addExact returns a+b and whether the sum fits in an int64.
func addExact(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// mulExact returns a*b and whether the product fits in an int64.
func mulExact(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absU(a), absU(b))
	if hi != 0 {
		return 0, false
	}
	if neg {
		if lo > 1<<63 {
			return 0, false
		}
		return int64(-lo), true
	}
	if lo > 1<<63-1 {
		return 0, false
	}
	return int64(lo), true
}

// powExact returns x^k (k ≥ 1) and whether every intermediate product fits.
func powExact(x int64, k int) (int64, bool) {
	r := x
	for i := 1; i < k; i++ {
		var ok bool
		if r, ok = mulExact(r, x); !ok {
			return 0, false
		}
	}
	return r, true
}

// IsPower reports whether x^k == y exactly.
func IsPower(x, y int64, k int) bool {
	p, ok := powExact(x, k)
	return ok && p == y
}

func absU(v int64) uint64 {
	if v < 0 {
		return uint64(-v) // wraps correctly for math.MinInt64
	}
	return uint64(v)
}
