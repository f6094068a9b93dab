// Package choice builds Choice Sets: for one adjacent pair (x, y) of a
// sequence, the set of every operation that turns x into y exactly.
//
// ⚙️ Usage:
//
//	sets := choice.FromSequence([]int64{2, 4, 2}, nil)
//	// sets[0] = {+2, *2, =4, ^2}
//	// sets[1] = {-2, /2, =2, root 2}
//	common := choice.Intersection(sets)
//
// A Set is immutable once built. It never is empty for a real pair, since
// SetTo(y) and Add(y-x) are always valid.
package choice
