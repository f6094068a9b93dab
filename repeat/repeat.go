// Package repeat tests whether a slice is built from a block that repeats
// at least twice.
//
// A slice s of length L is repeating when some block length d satisfies
// 2 ≤ d < L and L % d == 0, and every block s[k·d:(k+1)·d] is element-wise
// equivalent to the first block s[0:d]. Block length 1 is deliberately not
// considered, so the shortest repeating slice has four elements.
package repeat

// minBlock is the smallest block length tried.
const minBlock = 2

// IsRepeatingFunc reports whether s repeats under the equivalence eq.
// The first block length that works wins.
//
// Complexity: O(L · σ(L)) comparisons in the worst case, where σ(L) is the
// number of divisors of L.
func IsRepeatingFunc[T any](s []T, eq func(a, b T) bool) bool {
	n := len(s)
	for d := minBlock; d < n; d++ {
		if n%d != 0 {
			continue
		}
		if blocksMatch(s, d, eq) {
			return true
		}
	}

	return false
}

// IsRepeating is IsRepeatingFunc with ==.
func IsRepeating[T comparable](s []T) bool {
	return IsRepeatingFunc(s, func(a, b T) bool { return a == b })
}

// blocksMatch compares every block of length d against the first one.
func blocksMatch[T any](s []T, d int, eq func(a, b T) bool) bool {
	first := s[:d]
	for start := d; start < len(s); start += d {
		for i, v := range s[start : start+d] {
			if !eq(v, first[i]) {
				return false
			}
		}
	}

	return true
}
