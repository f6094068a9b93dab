// Package pattern defines the vocabulary used to describe how one integer
// of a sequence turns into the next, and the Pattern value that strings
// those operations together.
//
// 🚀 What is a pattern?
//
//	A Pattern is an ordered list of operations applied cyclically:
//	element i+1 of the sequence equals pattern[i mod n] applied to
//	element i. For example
//
//	  1, 4, 3, 6, 5   is explained by   +3, -1
//
// ✨ Vocabulary:
//   - SetTo(v)       "=v"      replace the value
//   - Add(d)         "+d"/"-d" add a (possibly negative) delta
//   - MultiplyBy(f)  "*f"      exact multiplication
//   - DivideBy(f)    "/f"      exact division (no remainder)
//   - Square, Cube   "^2","^3"
//   - SquareRoot, CubeRoot  "root 2","root 3" (exact roots only)
//   - Custom(r)      caller-supplied Relation, rendered by its label
//   - Nested(p)      a second-order element whose k-th occurrence applies p[k]
//
// Ordering:
//
//	Operations are totally ordered (kind name alphabetically, then operand,
//	then label, then sub-pattern) and Patterns lexicographically. The order
//	exists only to make result sets deterministic; it is not a ranking.
//
// Arithmetic:
//
//	All values are int64. Squares and cubes use overflow-checked products,
//	so a relation whose product would wrap simply does not hold.
package pattern
