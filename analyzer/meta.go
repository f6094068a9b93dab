package analyzer

import (
	"github.com/katalvlaran/seacanal/choice"
	"github.com/katalvlaran/seacanal/pattern"
	"github.com/katalvlaran/seacanal/repeat"
)

// metaPartial is a sub-pattern under construction together with the
// operations shared by every transition between its operands so far, and
// the block lengths its kinds still repeat with.
type metaPartial struct {
	sub     pattern.Pattern
	last    int64
	common  *choice.Set // nil until the sub-pattern holds two operands
	periods []int
}

// metaCandidates looks for a regular but non-constant operation across the
// occurrences of one offset. sets holds the Choice Set of each occurrence
// in order; every qualifying sub-pattern (one operation per occurrence) is
// returned wrapped in pattern.Nested.
//
// Three prunings keep the expansion small without changing the result:
// elements without an operand never qualify, a prefix whose operand
// transitions already share no operation cannot gain one by growing, and a
// prefix whose kinds break every candidate block length cannot repeat.
func metaCandidates(sets []*choice.Set) []pattern.Operation {
	periods := blockLengths(len(sets))
	if len(periods) == 0 {
		return nil
	}

	partials := []metaPartial{{sub: pattern.Empty(), periods: periods}}
	for _, s := range sets {
		ops := withOperand(s.Ops())
		next := make([]metaPartial, 0, len(partials)*len(ops))
		for _, p := range partials {
			for _, op := range ops {
				if q, ok := p.extend(op); ok {
					next = append(next, q)
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		partials = next
	}

	var out []pattern.Operation
	for _, p := range partials {
		if isMetaPattern(p.sub) {
			out = append(out, pattern.Nested(p.sub))
		}
	}
	return out
}

// blockLengths returns every d with 2 ≤ d < n and n % d == 0.
func blockLengths(n int) []int {
	var ds []int
	for d := 2; d < n; d++ {
		if n%d == 0 {
			ds = append(ds, d)
		}
	}
	return ds
}

func (p metaPartial) extend(op pattern.Operation) (metaPartial, bool) {
	i := p.sub.Len()
	var periods []int
	for _, d := range p.periods {
		if i < d || sameKind(op, p.sub[i-d]) {
			periods = append(periods, d)
		}
	}
	if len(periods) == 0 {
		return metaPartial{}, false
	}

	v, _ := op.Operand()
	q := metaPartial{sub: p.sub.Append(op), last: v, common: p.common, periods: periods}
	if i == 0 {
		return q, true
	}

	step := choice.FromPair(p.last, v, nil)
	if q.common == nil {
		q.common = step
	} else {
		q.common = q.common.Intersect(step)
	}
	return q, q.common.Len() > 0
}

// isMetaPattern applies the two validity filters: the kinds must repeat in
// blocks of two or more, and the operands must themselves follow a
// pattern of length 1 (found without meta search).
func isMetaPattern(sub pattern.Pattern) bool {
	if sub.Len() == 0 {
		return false
	}
	if !repeat.IsRepeatingFunc(sub, sameKind) {
		return false
	}
	operands, ok := sub.Operands()
	if !ok {
		return false
	}
	_, found := FromSlice(operands).FindAnyPatternOfLength(1)
	return found
}

func sameKind(a, b pattern.Operation) bool { return a.Kind() == b.Kind() }

func withOperand(ops []pattern.Operation) []pattern.Operation {
	out := ops[:0:0]
	for _, op := range ops {
		if op.Kind().HasOperand() {
			out = append(out, op)
		}
	}
	return out
}
