// SPDX-License-Identifier: MIT
// Package: seacanal/stepper
//
// stepper.go — arithmetic-progression index generator.
//
// Contract:
//   • Yields start, start+step, start+2·step, … while the value is < end.
//   • Finite and single-use: once exhausted a Stepper stays exhausted.
//   • step must be positive; New panics otherwise (programmer error).

// Package stepper enumerates the positions of a sequence that share one
// cyclic offset: for a cycle of length n and offset o, the indices are
// o, o+n, o+2n, … below the number of transitions.
package stepper

import "iter"

// Stepper is a lazy producer of indices start, start+step, … < end.
type Stepper struct {
	next int
	end  int
	step int
}

// New returns a Stepper over [start, end) with the given positive step.
// Complexity: O(1).
func New(start, end, step int) *Stepper {
	if step <= 0 {
		panic("stepper: step must be positive")
	}
	return &Stepper{next: start, end: end, step: step}
}

// Next returns the next index and true, or (0, false) once the
// progression has reached end.
func (s *Stepper) Next() (int, bool) {
	if s.next >= s.end {
		return 0, false
	}
	i := s.next
	s.next += s.step

	return i, true
}

// All returns an iterator draining the remaining indices.
func (s *Stepper) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			i, ok := s.Next()
			if !ok || !yield(i) {
				return
			}
		}
	}
}

// Collect drains the remaining indices into a slice.
// Complexity: O((end-start)/step).
func (s *Stepper) Collect() []int {
	var out []int
	for i := range s.All() {
		out = append(out, i)
	}

	return out
}
