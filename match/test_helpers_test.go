// Package match_test contains shared fixtures for the usefulness tests.
//
// Every scenario runs over package finite — a deliberately simple,
// decidable Lang — so the tests exercise the algorithm, never a
// constructor-enumeration policy.
package match_test

import (
	"errors"

	"github.com/katalvlaran/matchcheck/finite"
	"github.com/katalvlaran/matchcheck/match"
)

// boolLang scrutinizes plain booleans.
func boolLang() finite.Lang {
	return finite.New(finite.Enum("bool", "True", "False"))
}

// pairLang adds a pair of booleans: Pair(bool, bool).
func pairLang() finite.Lang {
	return finite.New(
		finite.Enum("bool", "True", "False"),
		finite.Type("pair", finite.Ctor("Pair", "bool", "bool")),
	)
}

// recLang adds a two-field record-like shape for partial patterns.
func recLang() finite.Lang {
	return finite.New(
		finite.Enum("bool", "True", "False"),
		finite.Type("rec", finite.Ctor("Rec", "bool", "bool")),
	)
}

// pat is the pattern shape every scenario here uses.
type pat = match.Pat[int, string]

// check runs match.Check with the given finite Lang.
func check(l finite.Lang, pats []pat, ty string) (*match.CheckResult[int, string], error) {
	return match.Check(l, finite.NoCx{}, pats, ty)
}

// strs renders patterns for order-sensitive assertions.
func strs(pats []pat) []string {
	out := make([]string, len(pats))
	for i, p := range pats {
		out[i] = p.String()
	}
	return out
}

// withIdx tags a (possibly synthesized) pattern with an arm identity, the
// way a front end would when turning a witness into a new source arm.
func withIdx(p pat, idx int) pat {
	p.Idx = &idx
	return p
}

// errSplit is a sentinel for the failing-Lang fixture.
var errSplit = errors.New("boom")

// failingLang wraps a finite Lang and fails every Split call, to observe
// short-circuit error propagation.
type failingLang struct {
	finite.Lang
}

func (failingLang) Split(_ finite.NoCx, _, _ string, _ []string, _ int) ([]string, error) {
	return nil, errSplit
}
