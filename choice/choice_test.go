package choice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seacanal/choice"
	"github.com/katalvlaran/seacanal/pattern"
)

func TestFromPair(t *testing.T) {
	tests := []struct {
		name string
		x, y int64
		want string
	}{
		{"double", 2, 4, "{+2, *2, =4, ^2}"},
		{"halve", 4, 2, "{-2, /2, =2, root 2}"},
		{"no ratio", 4, 7, "{+3, =7}"},
		{"from zero", 0, 5, "{+5, =5}"},
		{"to zero", 5, 0, "{-5, *0, =0}"},
		{"zero to zero", 0, 0, "{+0, ^3, root 3, =0, ^2, root 2}"},
		{"one to one", 1, 1, "{+0, ^3, root 3, /1, *1, =1, ^2, root 2}"},
		{"cube", 3, 27, "{+24, ^3, *9, =27}"},
		{"cube root", 27, 3, "{-24, root 3, /9, =3}"},
		{"negative", -2, 4, "{+6, *-2, =4, ^2}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, choice.FromPair(tt.x, tt.y, nil).String())
		})
	}
}

// TestFromPair_Extremes checks that wrapped differences and quotients are
// not offered.
func TestFromPair_Extremes(t *testing.T) {
	assert.Equal(t, "{/-9223372036854775808, =1}", choice.FromPair(math.MinInt64, 1, nil).String())
	assert.Equal(t, "{-9223372036854775807, =-9223372036854775808}", choice.FromPair(-1, math.MinInt64, nil).String())
}

// TestFromPair_AlwaysValid checks that every member really maps x to y.
func TestFromPair_AlwaysValid(t *testing.T) {
	rels := []*pattern.Relation{pattern.Power(4), pattern.Root(4), pattern.Modulo(5)}
	for _, pair := range [][2]int64{{1, 2}, {2, 16}, {16, 2}, {81, 3}, {-8, -2}, {12, 2}, {0, 0}} {
		s := choice.FromPair(pair[0], pair[1], rels)
		require.GreaterOrEqual(t, s.Len(), 2)
		assert.True(t, s.Has(pattern.SetTo(pair[1])))
		assert.True(t, s.Has(pattern.Add(pair[1]-pair[0])))
		for _, op := range s.Ops() {
			assert.True(t, op.Holds(pair[0], pair[1]), "%v on %v", op, pair)
		}
	}
}

func TestFromPair_Custom(t *testing.T) {
	pow4, root4 := pattern.Power(4), pattern.Root(4)
	rels := []*pattern.Relation{pow4, root4}

	s := choice.FromPair(2, 16, rels)
	assert.True(t, s.Has(pattern.Custom(pow4)))
	assert.False(t, s.Has(pattern.Custom(root4)))
	assert.False(t, s.Has(pattern.Custom(pattern.Power(4))), "relations compare by identity")

	s = choice.FromPair(81, 3, rels)
	assert.True(t, s.Has(pattern.Custom(root4)))
}

func TestFromSequence(t *testing.T) {
	assert.Nil(t, choice.FromSequence(nil, nil))
	assert.Nil(t, choice.FromSequence([]int64{5}, nil))

	sets := choice.FromSequence([]int64{1, 4, 3}, nil)
	require.Len(t, sets, 2)
	assert.Equal(t, "{+3, *4, =4}", sets[0].String())
	assert.Equal(t, "{-1, =3}", sets[1].String())
}

func TestIntersection(t *testing.T) {
	assert.Zero(t, choice.Intersection(nil).Len(), "no sets, no candidates")

	sets := choice.FromSequence([]int64{1, 4, 3, 6, 5}, nil)
	even := choice.Intersection([]*choice.Set{sets[0], sets[2]})
	odd := choice.Intersection([]*choice.Set{sets[1], sets[3]})
	assert.Equal(t, "{+3}", even.String())
	assert.Equal(t, "{-1}", odd.String())

	assert.Zero(t, choice.Intersection(sets).Len())
	assert.Equal(t, sets[0].String(), choice.Intersection(sets[:1]).String())
}

func TestSet_Union(t *testing.T) {
	a := choice.NewSet(pattern.Add(1), pattern.SetTo(2))
	b := choice.NewSet(pattern.SetTo(2), pattern.Cube())

	u := a.Union(b)
	assert.Equal(t, 3, u.Len())
	assert.Equal(t, "{+1, ^3, =2}", u.String())
	assert.Equal(t, 2, a.Len(), "operands untouched")
}
