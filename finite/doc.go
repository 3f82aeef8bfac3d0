// Package finite provides a ready-made match.Lang over finite,
// first-order constructor alphabets: enums, tuples and record-like shapes
// whose constructors are known up front.
//
// It exists for two audiences: test suites that need a deliberately simple
// language to keep checking decidable, and small interpreters whose whole
// type vocabulary fits in a table.
//
// Key features:
//   - Declarative tables: New(Enum("bool", "True", "False"),
//     Type("pair", Ctor("Pair", "bool", "bool")))
//   - Closed-world Split: the wildcard branches over the constructors not
//     yet covered in the column, or all of them once covered, so
//     single-constructor types still get their fields explored
//   - No truncation: every alphabet is finite, so the depth parameter of
//     match.Lang is ignored
//
// Errors:
//
//   - ErrUnknownType - a type name absent from the tables.
//   - ErrUnknownCon  - a constructor that does not belong to the type.
//
// Constructor names are global, as with top-level data constructors in ML:
// declaring the same name under two types makes the latter win.
package finite
