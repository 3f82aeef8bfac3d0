// Package match decides pattern-match exhaustiveness and redundancy:
// given the ordered arms of a match construct and the scrutinee's type, it
// reports which arms can never be reached and exhibits concrete witnesses
// of values no arm covers.
//
// The algorithm is Maranget's decision-theoretic usefulness check (the
// same family used by compilers such as rustc): an arm is useful relative
// to the arms before it when some value matches it and none of them; a
// match is exhaustive when a wildcard is no longer useful after all arms.
//
// Key features:
//   - Check(lang, cx, pats, ty): one call, one self-contained CheckResult
//   - Lang policy: constructors, types and pattern identities are opaque
//     type parameters; the caller's four-method Lang supplies constructor
//     enumeration (Split), field typing (ArgTys) and covering (Covers)
//   - Or-patterns with sequential (arm-priority) semantics, nested
//     arbitrarily, expanded eagerly inside the matrix
//   - Partial patterns: arms may supply fewer arguments than a constructor
//     has fields (record patterns with missing labels); the rest are
//     padded with wildcards
//   - Witnesses: Missing holds a minimal set of uncovered-value patterns,
//     each of which would be a reachable arm if appended to the match
//
// Complexity:
//
//   - Time:   exponential in the worst case, as inherent to usefulness
//     checking; in practice bounded by pattern nesting depth and by the
//     number of constructors Split chooses to enumerate per column.
//   - Memory: the matrix is cloned at each or-alternative and candidate
//     constructor (copy-on-branch); rows share immutable pattern storage.
//
// Errors:
//
//   - ErrAnyWithArgs  - wildcard pattern with arguments.
//   - ErrTooManyArgs  - more pattern arguments than constructor fields.
//   - any error returned by a Lang method, wrapped with %w.
//
// All errors are contract violations by the front end driving the checker,
// not user-facing diagnostics, and abort the whole Check with no partial
// result. Internal invariant violations (e.g. a constructor pattern failing
// to cover its own split, a ragged matrix row) panic: they indicate a bug
// in the Lang implementation or the checker itself.
//
// The check is purely synchronous: no I/O, no goroutines, no state shared
// across calls. Recursion depth follows pattern nesting; inputs are the
// front end's own construction, not adversarial user text.
package match
