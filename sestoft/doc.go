// Package sestoft decides whether a sequence of patterns is exhaustive
// and non-redundant, following Peter Sestoft's "ML pattern match
// compilation and partial evaluation".
//
// Unlike package match, which asks a Lang policy to enumerate
// constructors, this checker needs only one fact per constructor: the
// span of its type (how many constructors that type has, possibly
// infinite). That makes it a good fit for languages whose datatype
// declarations are at hand when patterns are built, and a poor fit for
// guard-like or range constructors, which it cannot express.
//
// Key features:
//   - Check(pats): one call, one Res — exhaustive or not, plus the first
//     unreachable arm if any
//   - Constructors are any comparable type with a Span() method
//   - Wildcards and constructor patterns, nested arbitrarily (no
//     or-patterns; expand them before calling)
//   - Infinite spans (integers, strings) are handled: such a match is
//     only exhaustive once a wildcard appears
//
// The verdict favors the match as a whole: Unreachable is only reported
// when the arms are exhaustive, mirroring the usual front-end flow of
// "first make it total, then prune it".
package sestoft
