package pattern

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Operation is one element of a Pattern: an operation kind together with
// the operand, relation or sub-pattern it needs. The zero value is Add(0).
type Operation struct {
	kind    Kind
	operand int64
	rel     *Relation
	sub     Pattern
}

// SetTo replaces the value with v.
func SetTo(v int64) Operation { return Operation{kind: KindSetTo, operand: v} }

// Add adds delta (which may be negative).
func Add(delta int64) Operation { return Operation{kind: KindAdd, operand: delta} }

// MultiplyBy multiplies by factor.
func MultiplyBy(factor int64) Operation { return Operation{kind: KindMultiplyBy, operand: factor} }

// DivideBy divides exactly by factor.
func DivideBy(factor int64) Operation { return Operation{kind: KindDivideBy, operand: factor} }

// Square raises to the second power.
func Square() Operation { return Operation{kind: KindSquare} }

// SquareRoot takes an exact square root.
func SquareRoot() Operation { return Operation{kind: KindSquareRoot} }

// Cube raises to the third power.
func Cube() Operation { return Operation{kind: KindCube} }

// CubeRoot takes an exact cube root.
func CubeRoot() Operation { return Operation{kind: KindCubeRoot} }

// Custom wraps a caller-supplied relation. Panics on nil.
func Custom(rel *Relation) Operation {
	if rel == nil {
		panic("pattern: Custom(nil)")
	}
	return Operation{kind: KindCustom, rel: rel}
}

// Nested wraps a sub-pattern whose k-th element applies at the k-th
// occurrence of the offset holding this operation. The sub-pattern is copied.
func Nested(sub Pattern) Operation {
	return Operation{kind: KindNested, sub: slices.Clone(sub)}
}

// Kind returns the operation variant.
func (o Operation) Kind() Kind { return o.kind }

// Operand returns the integer operand for SetTo, Add, MultiplyBy and DivideBy.
func (o Operation) Operand() (int64, bool) {
	if !o.kind.HasOperand() {
		return 0, false
	}
	return o.operand, true
}

// Relation returns the custom relation, or nil for other kinds.
func (o Operation) Relation() *Relation { return o.rel }

// Sub returns a copy of the nested sub-pattern, or nil for other kinds.
func (o Operation) Sub() Pattern { return slices.Clone(o.sub) }

// Holds reports whether applying o to x yields exactly y.
// A nested operation never holds for a single pair; see Pattern.Explains.
func (o Operation) Holds(x, y int64) bool {
	switch o.kind {
	case KindSetTo:
		return y == o.operand
	case KindAdd:
		s, ok := addExact(x, o.operand)
		return ok && s == y
	case KindMultiplyBy:
		p, ok := mulExact(x, o.operand)
		return ok && p == y
	case KindDivideBy:
		return o.operand != 0 && x%o.operand == 0 && x/o.operand == y
	case KindSquare:
		return IsPower(x, y, 2)
	case KindSquareRoot:
		return IsPower(y, x, 2)
	case KindCube:
		return IsPower(x, y, 3)
	case KindCubeRoot:
		return IsPower(y, x, 3)
	case KindCustom:
		return o.rel.Holds(x, y)
	default:
		return false
	}
}

// Compare orders operations by kind, operand, custom label (then
// registration order) and finally sub-pattern. It returns -1, 0 or +1.
func (o Operation) Compare(p Operation) int {
	if c := cmp.Compare(o.kind, p.kind); c != 0 {
		return c
	}
	switch o.kind {
	case KindCustom:
		if c := strings.Compare(o.rel.label, p.rel.label); c != 0 {
			return c
		}
		return cmp.Compare(o.rel.seq, p.rel.seq)
	case KindNested:
		return o.sub.Compare(p.sub)
	default:
		return cmp.Compare(o.operand, p.operand)
	}
}

// Equal reports structural equality. Custom relations are equal only when
// they are the same *Relation.
func (o Operation) Equal(p Operation) bool {
	return o.kind == p.kind && o.operand == p.operand && o.rel == p.rel && o.sub.Equal(p.sub)
}

// Key is a comparable identity for an Operation, usable as a map key.
// Two operations have equal keys iff they are Equal.
type Key struct {
	kind    Kind
	operand int64
	rel     *Relation
	sub     string
}

// Key returns the comparable identity of o.
func (o Operation) Key() Key {
	k := Key{kind: o.kind, operand: o.operand, rel: o.rel}
	if o.kind == KindNested {
		var b strings.Builder
		o.sub.encode(&b)
		k.sub = b.String()
	}
	return k
}

// encode writes an unambiguous identity of o.
func (o Operation) encode(b *strings.Builder) {
	fmt.Fprintf(b, "%d:%d", o.kind, o.operand)
	switch o.kind {
	case KindCustom:
		fmt.Fprintf(b, ":%p", o.rel)
	case KindNested:
		b.WriteByte('(')
		o.sub.encode(b)
		b.WriteByte(')')
	}
}

// String renders o symbolically: "=5", "+3", "-3", "*2", "/2", "^2", "^3",
// "root 2", "root 3", a custom label, or "[<sub-pattern>]".
func (o Operation) String() string {
	n := strconv.FormatInt(o.operand, 10)
	switch o.kind {
	case KindSetTo:
		return "=" + n
	case KindAdd:
		if o.operand < 0 {
			return n
		}
		return "+" + n
	case KindMultiplyBy:
		return "*" + n
	case KindDivideBy:
		return "/" + n
	case KindSquare:
		return "^2"
	case KindCube:
		return "^3"
	case KindSquareRoot:
		return "root 2"
	case KindCubeRoot:
		return "root 3"
	case KindCustom:
		return o.rel.label
	case KindNested:
		return "[" + o.sub.String() + "]"
	default:
		return "?"
	}
}
