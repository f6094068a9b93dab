package analyzer_test

import (
	"fmt"

	"github.com/katalvlaran/seacanal/analyzer"
	"github.com/katalvlaran/seacanal/pattern"
)

// ExampleAnalyzer_FindAnyPattern finds the alternating +3/-1 rule.
func ExampleAnalyzer_FindAnyPattern() {
	a := analyzer.FromSlice([]int64{1, 4, 3, 6, 5})

	if p, ok := a.FindAnyPattern(4); ok {
		fmt.Println(p)
	}
	// Output:
	// +3, -1
}

// ExampleAnalyzer_FindPatternsOfLength lists every length-2 explanation of
// a sequence bouncing between 2 and 4.
func ExampleAnalyzer_FindPatternsOfLength() {
	a := analyzer.FromSlice([]int64{2, 4, 2, 4})

	for _, p := range a.FindPatternsOfLength(2)[:4] {
		fmt.Println(p)
	}
	// Output:
	// +2, -2
	// +2, /2
	// +2, =2
	// +2, root 2
}

// ExampleWithRelations registers fourth powers and roots.
func ExampleWithRelations() {
	a := analyzer.New([]int64{1, 2, 16, 2, 3, 81, 3},
		analyzer.WithRelations(pattern.Power(4), pattern.Root(4)))

	p, _ := a.FindAnyPattern(4)
	fmt.Println(p)
	// Output:
	// +1, ^4, root 4
}

// ExampleWithMeta detects increments that grow by one each step.
func ExampleWithMeta() {
	a := analyzer.New([]int64{1, 2, 4, 7, 11}, analyzer.WithMeta())

	p, ok := a.FindAnyPattern(2)
	fmt.Println(p, ok)
	// Output:
	// [+1, +2, +3, +4] true
}
