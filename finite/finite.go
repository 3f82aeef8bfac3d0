// Package finite: table construction and the Lang policy methods.
package finite

import "errors"

// Wildcard is the constructor matching anything. Patterns built on it must
// have no arguments.
const Wildcard = "_"

// Sentinel errors for malformed lookups against the constructor tables.
var (
	// ErrUnknownType indicates a type name absent from the Lang's tables.
	ErrUnknownType = errors.New("finite: unknown type")

	// ErrUnknownCon indicates a constructor that does not belong to the
	// type being scrutinized.
	ErrUnknownCon = errors.New("finite: unknown constructor")
)

// NoCx is the empty checking context: a finite Lang carries all of its
// state in its own tables.
type NoCx struct{}

// ConSpec declares one constructor and the type names of its fields.
type ConSpec struct {
	// Name is the constructor name. Must not be Wildcard.
	Name string

	// Fields are the field type names, in declaration order.
	Fields []string
}

// TypeSpec declares one type and its constructors, in declaration order.
type TypeSpec struct {
	// Name is the type name.
	Name string

	// Cons are the type's constructors.
	Cons []ConSpec
}

// Ctor declares a constructor with the given field types.
func Ctor(name string, fields ...string) ConSpec {
	return ConSpec{Name: name, Fields: fields}
}

// Enum declares a type whose constructors all have zero fields.
func Enum(name string, cons ...string) TypeSpec {
	specs := make([]ConSpec, len(cons))
	for i, c := range cons {
		specs[i] = ConSpec{Name: c}
	}
	return TypeSpec{Name: name, Cons: specs}
}

// Type declares a type from explicit constructor specs.
func Type(name string, cons ...ConSpec) TypeSpec {
	return TypeSpec{Name: name, Cons: cons}
}

// Lang is a match.Lang over a closed, finite constructor alphabet.
// Types and constructors are identified by name; pattern identities may be
// any comparable type the caller chooses.
//
// The zero value has no types; build one with New.
type Lang struct {
	cons   map[string][]string // type name -> constructor names, in order
	fields map[string][]string // constructor name -> field type names
}

// New builds a Lang from type declarations. Constructor names must be
// unique across the whole Lang (as with top-level data constructors in ML
// and Haskell).
func New(types ...TypeSpec) Lang {
	l := Lang{
		cons:   make(map[string][]string, len(types)),
		fields: make(map[string][]string),
	}
	for _, t := range types {
		names := make([]string, len(t.Cons))
		for i, c := range t.Cons {
			names[i] = c.Name
			l.fields[c.Name] = c.Fields
		}
		l.cons[t.Name] = names
	}
	return l
}

// Any returns the wildcard constructor.
func (Lang) Any() string { return Wildcard }

// Split resolves the constructors to branch over for a column of type ty.
//
// A concrete constructor splits into itself. The wildcard splits into the
// type's constructors not yet seen in the column — or all of them once
// every constructor is covered, so that sub-patterns of complete
// signatures (single-constructor types, records) still get explored.
//
// depth is ignored: every alphabet here is finite, so enumeration needs no
// truncation.
func (l Lang) Split(_ NoCx, ty, con string, seen []string, _ int) ([]string, error) {
	all, ok := l.cons[ty]
	if !ok {
		return nil, ErrUnknownType
	}
	if con != Wildcard {
		if !member(all, con) {
			return nil, ErrUnknownCon
		}
		return []string{con}, nil
	}
	covered := make(map[string]bool, len(seen))
	for _, s := range seen {
		covered[s] = true
	}
	var missing []string
	for _, c := range all {
		if !covered[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return missing, nil
	}
	return append([]string(nil), all...), nil
}

// ArgTys returns the field type names of con within type ty.
func (l Lang) ArgTys(_ NoCx, ty, con string) ([]string, error) {
	all, ok := l.cons[ty]
	if !ok {
		return nil, ErrUnknownType
	}
	if !member(all, con) {
		return nil, ErrUnknownCon
	}
	return append([]string(nil), l.fields[con]...), nil
}

// Covers reports whether lhs matches values built with rhs: the wildcard
// covers everything, and otherwise covering is equality.
func (Lang) Covers(lhs, rhs string) bool {
	return lhs == Wildcard || lhs == rhs
}

func member(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
