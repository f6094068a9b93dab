package analyzer

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seacanal/choice"
	"github.com/katalvlaran/seacanal/pattern"
	"github.com/katalvlaran/seacanal/stepper"
)

// Analyzer identifies patterns that describe one sequence. It is immutable
// after construction and safe for concurrent use.
type Analyzer struct {
	choices     []*choice.Set
	meta        bool
	parallelism int
}

// New builds an Analyzer for seq. The slice is not retained.
// Complexity: O(len(seq) · len(relations)).
func New(seq []int64, opts ...Option) *Analyzer {
	cfg := newAnalyzerConfig(opts...)
	return &Analyzer{
		choices:     choice.FromSequence(seq, cfg.relations),
		meta:        cfg.meta,
		parallelism: cfg.parallelism,
	}
}

// FromSlice builds an Analyzer over the built-in vocabulary only.
func FromSlice(seq []int64) *Analyzer { return New(seq) }

// NewWithRelations builds an Analyzer that also considers rels.
func NewWithRelations(seq []int64, rels ...*pattern.Relation) *Analyzer {
	return New(seq, WithRelations(rels...))
}

// NewWithMeta builds an Analyzer with meta search enabled.
func NewWithMeta(seq []int64) *Analyzer { return New(seq, WithMeta()) }

// Len returns the number of transitions (adjacent pairs) in the sequence.
func (a *Analyzer) Len() int { return len(a.choices) }

// Meta reports whether meta search is enabled.
func (a *Analyzer) Meta() bool { return a.meta }

// FindPatternsOfLength returns every pattern of exactly n operations that
// explains the sequence, sorted ascending. It returns nil when none exists
// or n ≤ 0.
func (a *Analyzer) FindPatternsOfLength(n int) []pattern.Pattern {
	if n <= 0 {
		return nil
	}

	pats := []pattern.Pattern{pattern.Empty()}
	for _, cands := range a.candidates(n) {
		if len(cands) == 0 {
			return nil
		}
		next := make([]pattern.Pattern, 0, len(pats)*len(cands))
		for _, p := range pats {
			next = append(next, p.ExtendEach(cands)...)
		}
		pats = next
	}

	pattern.Sort(pats)
	return pats
}

// FindPatterns returns the patterns of the smallest length in 1..max that
// has any, or nil.
func (a *Analyzer) FindPatterns(max int) []pattern.Pattern {
	for n := 1; n <= max; n++ {
		if pats := a.FindPatternsOfLength(n); len(pats) > 0 {
			return pats
		}
	}
	return nil
}

// FindAnyPatternOfLength returns the greatest pattern of length n, if any.
func (a *Analyzer) FindAnyPatternOfLength(n int) (pattern.Pattern, bool) {
	return last(a.FindPatternsOfLength(n))
}

// FindAnyPattern returns the greatest pattern of the smallest length in
// 1..max that has any.
func (a *Analyzer) FindAnyPattern(max int) (pattern.Pattern, bool) {
	return last(a.FindPatterns(max))
}

func last(pats []pattern.Pattern) (pattern.Pattern, bool) {
	if len(pats) == 0 {
		return nil, false
	}
	return pats[len(pats)-1], true
}

// candidates returns the sorted candidate operations of every offset of a
// cycle of length n. The sequential path stops at the first empty offset;
// the slots after it stay nil.
func (a *Analyzer) candidates(n int) [][]pattern.Operation {
	out := make([][]pattern.Operation, n)
	if a.parallelism <= 1 {
		for o := range n {
			if out[o] = a.offsetCandidates(o, n); len(out[o]) == 0 {
				break
			}
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(a.parallelism)
	for o := range n {
		g.Go(func() error {
			out[o] = a.offsetCandidates(o, n)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
	return out
}

// offsetCandidates intersects the Choice Sets of every transition at
// offset and, with meta search on, adds the nested candidates.
func (a *Analyzer) offsetCandidates(offset, n int) []pattern.Operation {
	sets := a.occurrences(offset, n)
	cands := choice.Intersection(sets)
	if a.meta {
		cands = cands.Union(choice.NewSet(metaCandidates(sets)...))
	}
	return cands.Ops()
}

// occurrences collects the Choice Sets at offset, offset+n, offset+2n, ….
func (a *Analyzer) occurrences(offset, n int) []*choice.Set {
	var sets []*choice.Set
	for i := range stepper.New(offset, len(a.choices), n).All() {
		sets = append(sets, a.choices[i])
	}
	return sets
}
