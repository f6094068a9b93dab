// SPDX-License-Identifier: MIT
// Package: seacanal/pattern
//
// relation.go — caller-supplied relations extending the built-in vocabulary.
//
// Contract:
//   • A Relation is a pure boolean test over (x, y) plus a display label.
//   • Relations are compared by identity: register each one once and reuse
//     the same *Relation when building expected patterns.
//   • Relations sharing a label are ordered by registration.
//   • Constructors panic on meaningless input (nil predicate, empty label,
//     exponent < 2, zero modulus); the search engine itself never panics.

package pattern

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// registered numbers relations in creation order.
var registered atomic.Uint64

// Predicate decides whether a relation holds between x and its successor y.
type Predicate interface {
	Holds(x, y int64) bool
}

// PredicateFunc adapts an ordinary function to Predicate.
type PredicateFunc func(x, y int64) bool

// Holds calls f(x, y).
func (f PredicateFunc) Holds(x, y int64) bool { return f(x, y) }

// Relation is a named custom operation.
type Relation struct {
	label string
	pred  Predicate
	seq   uint64
}

// NewRelation registers a custom relation rendered as label.
// Panics on an empty label or a nil predicate.
func NewRelation(label string, pred Predicate) *Relation {
	if label == "" {
		panic("pattern: NewRelation with empty label")
	}
	if pred == nil {
		panic("pattern: NewRelation with nil predicate")
	}
	return &Relation{label: label, pred: pred, seq: registered.Add(1)}
}

// Label returns the display label.
func (r *Relation) Label() string { return r.label }

// Holds evaluates the relation's predicate.
func (r *Relation) Holds(x, y int64) bool { return r.pred.Holds(x, y) }

// String implements fmt.Stringer.
func (r *Relation) String() string { return r.label }

// Power returns the relation y == x^k, labelled "^k". Panics if k < 2.
func Power(k int) *Relation {
	if k < 2 {
		panic(fmt.Sprintf("pattern: Power(%d): exponent must be ≥ 2", k))
	}
	return NewRelation("^"+strconv.Itoa(k), PredicateFunc(func(x, y int64) bool {
		return IsPower(x, y, k)
	}))
}

// Root returns the relation x == y^k, labelled "root k". Panics if k < 2.
func Root(k int) *Relation {
	if k < 2 {
		panic(fmt.Sprintf("pattern: Root(%d): exponent must be ≥ 2", k))
	}
	return NewRelation("root "+strconv.Itoa(k), PredicateFunc(func(x, y int64) bool {
		return IsPower(y, x, k)
	}))
}

// Modulo returns the relation y == x % m, labelled "%m". Panics if m == 0.
func Modulo(m int64) *Relation {
	if m == 0 {
		panic("pattern: Modulo(0)")
	}
	return NewRelation("%"+strconv.FormatInt(m, 10), PredicateFunc(func(x, y int64) bool {
		return x%m == y
	}))
}
