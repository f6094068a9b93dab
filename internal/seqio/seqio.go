// Package seqio reads integer sequences from text and renders search results.
//
// Input is whitespace-delimited signed decimal integers on a single line,
// e.g. "1 4 3 6 5". Commas are accepted as separators too.
package seqio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/seacanal/pattern"
)

var (
	// ErrEmptySequence is returned when the input holds no integers.
	ErrEmptySequence = errors.New("seqio: empty sequence")

	// ErrInvalidToken is returned for a token that is not a decimal int64.
	ErrInvalidToken = errors.New("seqio: invalid numeric input")
)

// NoPattern is printed when the search finds nothing.
const NoPattern = "No pattern found"

// Separator is printed between the input echo and the result.
const Separator = "----------"

// Parse turns one line of text into a sequence.
func Parse(line string) ([]int64, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, ErrEmptySequence
	}

	seq := make([]int64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrInvalidToken, i+1, f)
		}
		seq = append(seq, v)
	}
	return seq, nil
}

// ParseArgs parses command-line arguments as one sequence.
func ParseArgs(args []string) ([]int64, error) {
	return Parse(strings.Join(args, " "))
}

// ReadLine reads the first line of r and parses it.
func ReadLine(r io.Reader) ([]int64, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return Parse(line)
}

// DefaultBound is the largest cycle length worth trying for a sequence of
// length n: min(n-1, n/2+1). A pattern longer than half the transitions
// would repeat too rarely to mean anything.
func DefaultBound(n int) int {
	return max(0, min(n-1, n/2+1))
}

// Format renders the result of a search: each pattern on its own line, or
// NoPattern when there is none.
func Format(pats []pattern.Pattern) []string {
	if len(pats) == 0 {
		return []string{NoPattern}
	}
	out := make([]string, len(pats))
	for i, p := range pats {
		out[i] = p.String()
	}
	return out
}
