package repeat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/seacanal/repeat"
)

func TestIsRepeating(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want bool
	}{
		{"nil", nil, false},
		{"single", []int{1}, false},
		{"pair", []int{1, 1}, false},
		{"triple of equal values", []int{7, 7, 7}, false},
		{"block of two", []int{1, 2, 1, 2}, true},
		{"uniform four", []int{3, 3, 3, 3}, true},
		{"block of three", []int{1, 2, 3, 1, 2, 3}, true},
		{"block of two in six", []int{1, 2, 1, 2, 1, 2}, true},
		{"broken tail", []int{1, 2, 1, 2, 1, 3}, false},
		{"prime length", []int{1, 1, 1, 1, 1}, false},
		{"no repetition", []int{1, 2, 3, 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repeat.IsRepeating(tt.in))
		})
	}
}

// TestIsRepeatingFunc uses a predicate coarser than equality.
func TestIsRepeatingFunc(t *testing.T) {
	sameInitial := func(a, b string) bool { return a[0] == b[0] }

	words := strings.Fields("add mul apply minus")
	assert.True(t, repeat.IsRepeatingFunc(words, sameInitial))
	assert.False(t, repeat.IsRepeating(words), "plain equality sees distinct words")

	words = strings.Fields("add mul minus apply")
	assert.False(t, repeat.IsRepeatingFunc(words, sameInitial))
}
