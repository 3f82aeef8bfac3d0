// Package sestoft: public types for the span-based checker.
//
// This file declares Span, the Con constraint, Pat and Res, and the
// pattern constructors Any and ConPat.
package sestoft

// Span measures how many constructors exist for a constructor's type:
// either a finite count or infinity (integer literals, strings, ...).
// Spans are comparable with ==.
type Span struct {
	n        int
	infinite bool
}

// Finite returns the span of a type with exactly n constructors.
func Finite(n int) Span { return Span{n: n} }

// Infinity returns the span of a type with unboundedly many constructors.
// A match over such a type can never be completed by listing constructors
// alone; only a wildcard makes it exhaustive.
func Infinity() Span { return Span{infinite: true} }

// Con constrains the caller's constructor type: constructors identify
// themselves by equality and know the span of the type they belong to.
type Con interface {
	comparable
	Span() Span
}

// Pat is a pattern over constructors of type C: either a wildcard or a
// constructor applied to sub-patterns. Build values with Any and ConPat;
// the zero value is not a valid pattern.
type Pat[C Con] struct {
	wild bool
	con  C
	args []Pat[C]
}

// Any returns the pattern matching anything.
func Any[C Con]() Pat[C] {
	return Pat[C]{wild: true}
}

// ConPat returns the pattern matching con applied to the given arguments.
func ConPat[C Con](con C, args ...Pat[C]) Pat[C] {
	return Pat[C]{con: con, args: args}
}

// Res is the verdict of Check.
//
// When Unreachable is non-negative the arms as a whole were exhaustive,
// but the arm at that index can never match; the original formulation
// reports the first such arm only.
type Res struct {
	// Exhaustive reports whether every value is matched by some arm.
	Exhaustive bool

	// Unreachable is the index of the first arm proven unreachable,
	// or -1 when every arm is reachable.
	Unreachable int
}
