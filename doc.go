// Package matchcheck is your toolbox for deciding whether a `match`/`case`
// construct is exhaustive and which of its arms are dead code — without
// knowing anything about your language's syntax or type system.
//
// 🚀 What is matchcheck?
//
//	A small, dependency-light library that brings together:
//		• match/   — Maranget-style usefulness checking: unreachable arms +
//		             concrete witnesses of uncovered values, driven by a
//		             caller-supplied Lang policy
//		• finite/  — a ready-made Lang over finite constructor alphabets
//		             (enums, records, tuples) for tests and small interpreters
//		• sestoft/ — the classic Sestoft partial-evaluation checker for
//		             languages that know each constructor's span up front
//
// ✨ Why choose matchcheck?
//
//   - Language-agnostic — constructors, types and pattern identities are
//     opaque type parameters; you supply a four-method Lang policy
//   - Deterministic — identical inputs always yield the identical result
//   - Pure Go — no cgo, no I/O, no goroutines; one call, one answer
//   - Honest diagnostics — a minimal set of missing-value witnesses, not a
//     bare "not exhaustive" bit
//
// Quick sketch (booleans):
//
//	lang := finite.New(
//		finite.Type("bool", "True", "False"),
//	)
//	pats := []match.Pat[int, string]{
//		match.Zero("True", 0),
//	}
//	res, _ := match.Check(lang, finite.NoCx{}, pats, "bool")
//	// res.Missing renders as [False]; res.Unreachable is empty.
//
// Start with package match; reach for finite when you need a Lang to test
// against, and for sestoft when your constructors carry their own spans.
package matchcheck
