// Package seacanal finds the shortest repeating cycle of arithmetic
// operations that explains a finite integer sequence.
//
// 🚀 What is seacanal?
//
//	Given 1, 4, 3, 6, 5 it answers "+3, -1": add three, subtract one,
//	repeat. Given 1, 2, 4, 7, 11 it answers "[+1, +2, +3, +4]": an element
//	whose own operand drifts by a cycle of its own.
//
// Under the hood, everything is organized in small packages:
//
//	stepper/  — strided integer ranges used to walk one offset of a cycle
//	repeat/   — block-repetition test for slices
//	pattern/  — operations, custom relations and the Pattern type
//	choice/   — the set of operations valid for one transition
//	analyzer/ — the search engine (plain and nested cycles)
//	cmd/seacanal — command-line front end
//
// Quick example:
//
//	a := analyzer.New([]int64{1, 4, 3, 6, 5}, analyzer.WithMeta())
//	p, ok := a.FindAnyPattern(3) // "+3, -1", true
//
//	go install github.com/katalvlaran/seacanal/cmd/seacanal@latest
package seacanal
