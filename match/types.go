// Package match: pattern model, Lang policy and sentinel errors.
//
// This file declares Pat, RawPat, ConPat, OrPat, the Lang interface,
// the CheckResult record and the public pattern constructors.
//
// Errors:
//
//	ErrAnyWithArgs - a wildcard pattern was given arguments.
//	ErrTooManyArgs - a pattern has more arguments than its constructor has fields.
package match

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for contract violations in the caller's pattern or type
// construction. Both indicate a bug in the front end driving the checker,
// never a diagnostic about the user's source program. Lang failures are
// wrapped with %w at the call site; match them with errors.Is / errors.As
// on the underlying sentinel.
var (
	// ErrAnyWithArgs indicates a pattern built on the wildcard constructor
	// (Lang.Any) carried arguments. Wildcards bind the whole value and
	// therefore must have none.
	ErrAnyWithArgs = errors.New("match: wildcard pattern must have no arguments")

	// ErrTooManyArgs indicates a constructor pattern supplied more arguments
	// than the constructor has field types. Fewer is allowed (missing fields
	// are padded with wildcards, as with partial record patterns); more is a
	// contract violation.
	ErrTooManyArgs = errors.New("match: pattern has more arguments than the constructor has fields")
)

// Lang is the caller-implemented policy describing the language whose
// patterns are being checked. Type parameters:
//
//	Cx - opaque per-call context (e.g. a type environment). Passed to every
//	     policy call by value; use a pointer type if the policy mutates it.
//	I  - pattern identity; must be usable as a map key.
//	C  - constructor identity (True/False, Cons/Nil, a record shape, ...).
//	T  - type identity.
//
// Obligations: Split must terminate and return a finite set even for
// infinite or recursive types (bound it on depth and/or seen); every
// constructor Split can emit must be covered by itself and by Any().
type Lang[Cx any, I comparable, C, T any] interface {
	// Any returns the constructor matching anything (a wildcard or variable
	// pattern). Patterns built on it must have no arguments.
	Any() C

	// Split resolves the constructors to branch over when a pattern with
	// constructor con scrutinizes a value of type ty. seen holds the
	// constructors already present in the current matrix column; it is
	// read-only. depth starts at 0 and grows by one per recursion level;
	// implementations may return fewer constructors at higher depths to
	// bound enumeration for infinite types, but need not.
	Split(cx Cx, ty T, con C, seen []C, depth int) ([]C, error)

	// ArgTys returns the field types of con when scrutinizing a value of
	// type ty.
	ArgTys(cx Cx, ty T, con C) ([]T, error)

	// Covers reports whether lhs matches any value built with rhs.
	// Sometimes this is as simple as lhs == rhs.
	Covers(lhs, rhs C) bool
}

// Pat is one pattern node.
//
// Idx identifies the user-written pattern this node came from, so that
// reachability can be reported per source arm; nodes synthesized during
// checking (wildcards produced by specialization) carry nil.
type Pat[I comparable, C any] struct {
	// Raw is the pattern payload: ConPat or OrPat.
	Raw RawPat[I, C]

	// Idx is the originating pattern identity, or nil for synthetic nodes.
	Idx *I
}

// RawPat is the payload of a Pat: either a constructor applied to
// sub-patterns (ConPat) or an ordered list of alternatives (OrPat).
// The variant set is closed.
type RawPat[I comparable, C any] interface {
	isRawPat()
	fmt.Stringer
}

// ConPat is a constructor applied to sub-patterns.
type ConPat[I comparable, C any] struct {
	// Con is the constructor.
	Con C

	// Args are the sub-patterns, one per (leading) constructor field.
	Args []Pat[I, C]
}

// OrPat is an or-pattern: it matches if any alternative matches, tried in
// source order. Arm priority is observable, so the order is significant.
type OrPat[I comparable, C any] []Pat[I, C]

func (ConPat[I, C]) isRawPat() {}
func (OrPat[I, C]) isRawPat()  {}

// Con returns a constructor pattern for the user-written arm idx.
func Con[I comparable, C any](con C, args []Pat[I, C], idx I) Pat[I, C] {
	return Pat[I, C]{Raw: ConPat[I, C]{Con: con, Args: args}, Idx: &idx}
}

// Zero returns a constructor pattern with no arguments.
func Zero[I comparable, C any](con C, idx I) Pat[I, C] {
	return Con[I, C](con, nil, idx)
}

// Or returns an or-pattern over the given alternatives, in match order.
func Or[I comparable, C any](pats []Pat[I, C], idx I) Pat[I, C] {
	return Pat[I, C]{Raw: OrPat[I, C](pats), Idx: &idx}
}

// AnyNoIdx returns a wildcard pattern with no pattern identity, using the
// Lang's Any constructor. Useful for padding caller-side patterns the same
// way the checker pads its own.
func AnyNoIdx[Cx any, I comparable, C, T any](lang Lang[Cx, I, C, T]) Pat[I, C] {
	return conNoIdx[I](lang.Any(), nil)
}

// conNoIdx builds a synthetic constructor pattern carrying no identity.
func conNoIdx[I comparable, C any](con C, args []Pat[I, C]) Pat[I, C] {
	return Pat[I, C]{Raw: ConPat[I, C]{Con: con, Args: args}}
}

// CheckResult is the outcome of one Check call.
type CheckResult[I comparable, C any] struct {
	// Unreachable holds the identities of patterns no value can ever reach.
	Unreachable map[I]bool

	// Missing holds witnesses: concrete patterns exhibiting values no arm
	// covers. Empty means the match is exhaustive. The set is minimal, not
	// a full enumeration of uncovered values.
	Missing []Pat[I, C]
}

// String renders the pattern, e.g. "Pair(True, _)" or "True | False".
func (p Pat[I, C]) String() string {
	return p.Raw.String()
}

// String renders the constructor with %v and parenthesizes any arguments.
func (cp ConPat[I, C]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", cp.Con)
	for i, a := range cp.Args {
		if i == 0 {
			b.WriteString("(")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	if len(cp.Args) > 0 {
		b.WriteString(")")
	}
	return b.String()
}

// String joins the alternatives with " | ". An or-pattern with no
// alternatives matches nothing and renders as "<NEVER>".
func (op OrPat[I, C]) String() string {
	if len(op) == 0 {
		return "<NEVER>"
	}
	parts := make([]string, len(op))
	for i, p := range op {
		parts[i] = p.String()
	}
	return strings.Join(parts, " | ")
}
