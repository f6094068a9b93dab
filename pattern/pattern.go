package pattern

import (
	"cmp"
	"slices"
	"strings"
)

// Pattern is an ordered list of operations applied cyclically: element i+1
// of a sequence is pattern[i mod len(pattern)] applied to element i.
// The empty pattern explains only sequences with fewer than two elements.
type Pattern []Operation

// New builds a pattern from ops.
func New(ops ...Operation) Pattern {
	return Pattern(slices.Clone(ops))
}

// Empty returns a pattern with no operations.
func Empty() Pattern { return Pattern{} }

// Len returns the cycle length.
func (p Pattern) Len() int { return len(p) }

// Append returns a new pattern equal to p followed by op. p is not modified.
// Complexity: O(len(p)).
func (p Pattern) Append(op Operation) Pattern {
	out := make(Pattern, len(p), len(p)+1)
	copy(out, p)
	return append(out, op)
}

// ExtendEach returns one new pattern per op, each equal to p followed by op.
// Complexity: O(len(ops) · len(p)).
func (p Pattern) ExtendEach(ops []Operation) []Pattern {
	out := make([]Pattern, 0, len(ops))
	for _, op := range ops {
		out = append(out, p.Append(op))
	}
	return out
}

// Compare orders patterns lexicographically by element; a proper prefix
// sorts first.
func (p Pattern) Compare(q Pattern) int {
	for i := 0; i < len(p) && i < len(q); i++ {
		if c := p[i].Compare(q[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(p), len(q))
}

// Equal reports element-wise equality.
func (p Pattern) Equal(q Pattern) bool {
	return slices.EqualFunc(p, q, Operation.Equal)
}

// Kinds returns the kind of every element, ignoring operands.
func (p Pattern) Kinds() []Kind {
	kinds := make([]Kind, len(p))
	for i, op := range p {
		kinds[i] = op.kind
	}
	return kinds
}

// Operands returns the operand of every element, or false as soon as an
// element carries none (Square, Custom, Nested, …).
func (p Pattern) Operands() ([]int64, bool) {
	out := make([]int64, 0, len(p))
	for _, op := range p {
		v, ok := op.Operand()
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// Explains reports whether p reproduces seq: for every i, applying
// p[i mod n] to seq[i] yields seq[i+1]. A nested element at offset o
// applies its k-th sub-operation to the k-th transition with that offset.
func (p Pattern) Explains(seq []int64) bool {
	if len(seq) < 2 {
		return true
	}
	if len(p) == 0 {
		return false
	}
	n := len(p)
	for i := 0; i+1 < len(seq); i++ {
		op := p[i%n]
		if op.kind == KindNested {
			k := i / n
			if k >= len(op.sub) {
				return false
			}
			op = op.sub[k]
		}
		if !op.Holds(seq[i], seq[i+1]) {
			return false
		}
	}
	return true
}

// String renders the elements comma-separated, e.g. "+3, -1".
func (p Pattern) String() string {
	var b strings.Builder
	for i, op := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(op.String())
	}
	return b.String()
}

func (p Pattern) encode(b *strings.Builder) {
	for i, op := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		op.encode(b)
	}
}

// Sort orders patterns ascending in place.
func Sort(ps []Pattern) {
	slices.SortFunc(ps, Pattern.Compare)
}
