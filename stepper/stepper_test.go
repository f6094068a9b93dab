package stepper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/seacanal/stepper"
)

// TestStepper_Collect covers the usual offset/cycle combinations.
func TestStepper_Collect(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step int
		want             []int
	}{
		{"offset zero", 0, 7, 2, []int{0, 2, 4, 6}},
		{"offset one", 1, 7, 2, []int{1, 3, 5}},
		{"step one", 0, 3, 1, []int{0, 1, 2}},
		{"start at end", 4, 4, 1, nil},
		{"start past end", 5, 4, 3, nil},
		{"single", 2, 3, 10, []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stepper.New(tt.start, tt.end, tt.step).Collect()
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestStepper_SingleUse verifies that an exhausted Stepper stays exhausted.
func TestStepper_SingleUse(t *testing.T) {
	s := stepper.New(0, 3, 1)
	assert.Equal(t, []int{0, 1, 2}, s.Collect())

	_, ok := s.Next()
	assert.False(t, ok, "exhausted stepper must not restart")
	assert.Nil(t, s.Collect())
}

// TestStepper_EarlyBreak leaves the remaining indices for later calls.
func TestStepper_EarlyBreak(t *testing.T) {
	s := stepper.New(0, 10, 3)
	for i := range s.All() {
		assert.Equal(t, 0, i)
		break
	}
	assert.Equal(t, []int{3, 6, 9}, s.Collect())
}

func TestStepper_NonPositiveStepPanics(t *testing.T) {
	assert.Panics(t, func() { stepper.New(0, 3, 0) })
	assert.Panics(t, func() { stepper.New(0, 3, -1) })
}
