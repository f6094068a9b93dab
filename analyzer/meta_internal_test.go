package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/seacanal/choice"
	"github.com/katalvlaran/seacanal/pattern"
)

func TestBlockLengths(t *testing.T) {
	assert.Empty(t, blockLengths(0))
	assert.Empty(t, blockLengths(3))
	assert.Empty(t, blockLengths(7))
	assert.Equal(t, []int{2}, blockLengths(4))
	assert.Equal(t, []int{2, 3, 4, 6}, blockLengths(12))
}

func TestMetaPartial_ExtendDropsBrokenPeriods(t *testing.T) {
	p := metaPartial{sub: pattern.Empty(), periods: []int{2, 3}}

	var ok bool
	for _, op := range []pattern.Operation{pattern.Add(0), pattern.SetTo(0)} {
		p, ok = p.extend(op)
		assert.True(t, ok)
	}
	assert.Equal(t, []int{2, 3}, p.periods)

	// Index 2 must repeat index 0 (Add) for d=2.
	q, ok := p.extend(pattern.SetTo(0))
	assert.True(t, ok)
	assert.Equal(t, []int{3}, q.periods)

	// Index 3 must match index 0 (Add) for d=3; SetTo breaks the last period.
	_, ok = q.extend(pattern.SetTo(0))
	assert.False(t, ok)
}

func TestMetaCandidates_NoBlockLength(t *testing.T) {
	sets := choice.FromSequence(make([]int64, 6), nil) // 5 transitions
	assert.Nil(t, metaCandidates(sets))
}
