package choice

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/katalvlaran/seacanal/pattern"
)

// Set is a deduplicated, insertion-ordered set of operations.
type Set struct {
	ops *orderedmap.OrderedMap[pattern.Key, pattern.Operation]
}

// NewSet returns a Set holding ops, duplicates dropped.
func NewSet(ops ...pattern.Operation) *Set {
	s := &Set{ops: orderedmap.NewOrderedMap[pattern.Key, pattern.Operation]()}
	for _, op := range ops {
		s.add(op)
	}
	return s
}

func (s *Set) add(op pattern.Operation) {
	s.ops.Set(op.Key(), op)
}

// Len returns the number of distinct operations.
func (s *Set) Len() int { return s.ops.Len() }

// Has reports whether op is a member.
func (s *Set) Has(op pattern.Operation) bool {
	_, ok := s.ops.Get(op.Key())
	return ok
}

// Ops returns the members sorted ascending.
func (s *Set) Ops() []pattern.Operation {
	out := make([]pattern.Operation, 0, s.ops.Len())
	for el := s.ops.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	sortOps(out)
	return out
}

// Intersect returns the operations present in both s and o.
// Complexity: O(|s|).
func (s *Set) Intersect(o *Set) *Set {
	out := NewSet()
	for el := s.ops.Front(); el != nil; el = el.Next() {
		if _, ok := o.ops.Get(el.Key); ok {
			out.ops.Set(el.Key, el.Value)
		}
	}
	return out
}

// Union returns the operations present in either set, s first.
func (s *Set) Union(o *Set) *Set {
	out := NewSet()
	for _, src := range []*Set{s, o} {
		for el := src.ops.Front(); el != nil; el = el.Next() {
			out.ops.Set(el.Key, el.Value)
		}
	}
	return out
}

// String renders the sorted members, e.g. "{+2, *2, =4, ^2}".
func (s *Set) String() string {
	return "{" + pattern.New(s.Ops()...).String() + "}"
}

// Intersection folds Intersect over sets. It is empty for zero sets:
// with no transition to test, no operation is known to be valid.
func Intersection(sets []*Set) *Set {
	if len(sets) == 0 {
		return NewSet()
	}
	acc := sets[0]
	for _, s := range sets[1:] {
		acc = acc.Intersect(s)
	}
	return acc
}
