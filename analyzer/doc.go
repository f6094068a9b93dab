// Package analyzer infers the shortest cyclic patterns that generate a
// finite integer sequence.
//
// 🚀 How it works
//
//	For a cycle length n, every transition i (seq[i] → seq[i+1]) belongs to
//	offset i mod n. An operation can sit at offset o only if it is valid for
//	every transition with that offset, so the engine intersects the Choice
//	Sets of those transitions. Complete patterns are the cross product of the
//	per-offset candidates, built offset by offset and sorted.
//
//	  seq    = 1, 4, 3, 6, 5
//	  n = 2  offset 0: {+3,*4,=4} ∩ {+3,*2,=6} = {+3}
//	         offset 1: {-1,=3}    ∩ {-1,=5}    = {-1}
//	  result = [+3, -1]
//
// ✨ Meta search (WithMeta)
//
//	When the operation at an offset is not constant but drifts by a law of
//	its own (increments 1, 2, 3, 4, …), the meta engine proposes a Nested
//	element. A sub-pattern qualifies when every element carries an operand,
//	those operands follow a length-1 pattern, and the operation kinds repeat
//	in blocks of two or more.
//
// ⚙️ Usage:
//
//	a := analyzer.New(seq, analyzer.WithMeta())
//	if p, ok := a.FindAnyPattern(4); ok {
//		fmt.Println(p) // e.g. "[+1, +2, +3, +4]"
//	}
//
// Conventions:
//   - A cycle length or bound ≤ 0 yields no patterns.
//   - A sequence with fewer than two elements has no transitions and yields
//     no patterns for any length: an intersection over zero Choice Sets is
//     empty.
//   - Absence of a pattern is a normal result (nil / false), never an error.
//
// Complexity:
//
//	The result of FindPatternsOfLength(n) can grow as the product of the
//	per-offset candidate counts, and the meta engine enumerates the product
//	of the Choice Sets at each offset. Callers bound n and the sequence length.
package analyzer
