package choice

import (
	"slices"

	"github.com/katalvlaran/seacanal/pattern"
)

// FromPair returns every operation that maps x to y exactly:
//   - SetTo(y), always;
//   - Add(y-x) unless the difference overflows;
//   - MultiplyBy(y/x) when x ≠ 0 and x divides y;
//   - DivideBy(x/y) when y ≠ 0 and y divides x (x = 0 would give /0);
//   - Square, SquareRoot, Cube, CubeRoot when the exact power relation holds;
//   - Custom(r) for every relation r that holds on (x, y).
//
// Every candidate is confirmed with Holds, which drops quotients and
// differences that wrapped around.
//
// Complexity: O(len(rels)) plus the cost of the relation predicates.
func FromPair(x, y int64, rels []*pattern.Relation) *Set {
	s := NewSet(pattern.SetTo(y))

	ops := []pattern.Operation{pattern.Add(y - x)}
	if x != 0 && y%x == 0 {
		ops = append(ops, pattern.MultiplyBy(y/x))
	}
	if x != 0 && y != 0 && x%y == 0 {
		ops = append(ops, pattern.DivideBy(x/y))
	}
	ops = append(ops, pattern.Square(), pattern.SquareRoot(), pattern.Cube(), pattern.CubeRoot())
	for _, op := range ops {
		if op.Holds(x, y) {
			s.add(op)
		}
	}

	for _, r := range rels {
		if r.Holds(x, y) {
			s.add(pattern.Custom(r))
		}
	}
	return s
}

// FromSequence returns one Set per adjacent pair of seq; nil when seq has
// fewer than two elements.
func FromSequence(seq []int64, rels []*pattern.Relation) []*Set {
	if len(seq) < 2 {
		return nil
	}
	rels = slices.Clone(rels)
	sets := make([]*Set, 0, len(seq)-1)
	for i := 0; i+1 < len(seq); i++ {
		sets = append(sets, FromPair(seq[i], seq[i+1], rels))
	}
	return sets
}

func sortOps(ops []pattern.Operation) {
	slices.SortFunc(ops, pattern.Operation.Compare)
}
