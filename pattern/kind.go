package pattern

// Kind identifies an operation variant. Kinds are declared in alphabetical
// order of their names so that sorting by Kind sorts by name.
type Kind int

const (
	KindAdd Kind = iota
	KindCube
	KindCubeRoot
	KindCustom
	KindDivideBy
	KindMultiplyBy
	KindNested
	KindSetTo
	KindSquare
	KindSquareRoot
)

var kindNames = [...]string{
	KindAdd:        "Add",
	KindCube:       "Cube",
	KindCubeRoot:   "CubeRoot",
	KindCustom:     "Custom",
	KindDivideBy:   "DivideBy",
	KindMultiplyBy: "MultiplyBy",
	KindNested:     "Nested",
	KindSetTo:      "SetTo",
	KindSquare:     "Square",
	KindSquareRoot: "SquareRoot",
}

// String returns the kind name, e.g. "MultiplyBy".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// HasOperand reports whether operations of this kind carry an integer operand.
func (k Kind) HasOperand() bool {
	switch k {
	case KindSetTo, KindAdd, KindMultiplyBy, KindDivideBy:
		return true
	default:
		return false
	}
}
