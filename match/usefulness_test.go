// Package match_test verifies the usefulness algorithm end to end:
// exhaustiveness, redundancy, or-pattern ordering, witnesses and error
// propagation, over deliberately finite languages.
package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matchcheck/finite"
	"github.com/katalvlaran/matchcheck/match"
)

// wild returns a synthesized wildcard pattern carrying no arm identity.
func wild() pat {
	return match.AnyNoIdx[finite.NoCx, int, string, string](boolLang())
}

func TestCheck_BoolComplete(t *testing.T) {
	res, err := check(boolLang(), []pat{
		match.Zero("True", 0),
		match.Zero("False", 1),
	}, "bool")
	require.NoError(t, err)
	assert.Empty(t, res.Missing)
	assert.Empty(t, res.Unreachable)
}

func TestCheck_WildcardShadowsLaterArm(t *testing.T) {
	res, err := check(boolLang(), []pat{
		match.Zero(finite.Wildcard, 0),
		match.Zero("True", 1),
	}, "bool")
	require.NoError(t, err)
	assert.Empty(t, res.Missing)
	assert.Equal(t, map[int]bool{1: true}, res.Unreachable)
	// Redundancy never escapes the input arms.
	for idx := range res.Unreachable {
		assert.Contains(t, []int{0, 1}, idx)
	}
}

func TestCheck_BoolMissingFalse(t *testing.T) {
	res, err := check(boolLang(), []pat{match.Zero("True", 0)}, "bool")
	require.NoError(t, err)
	assert.Empty(t, res.Unreachable)
	assert.Equal(t, []string{"False"}, strs(res.Missing))
}

func TestCheck_NoArms(t *testing.T) {
	res, err := check(boolLang(), nil, "bool")
	require.NoError(t, err)
	assert.Empty(t, res.Unreachable)
	assert.Equal(t, []string{"True", "False"}, strs(res.Missing))
}

func TestCheck_TrailingWildcardCompletes(t *testing.T) {
	res, err := check(boolLang(), []pat{
		match.Zero("True", 0),
		match.Zero(finite.Wildcard, 1),
	}, "bool")
	require.NoError(t, err)
	assert.Empty(t, res.Missing)
	assert.Empty(t, res.Unreachable)
}

func TestCheck_ArmsAfterWildcardUnreachable(t *testing.T) {
	res, err := check(boolLang(), []pat{
		match.Zero(finite.Wildcard, 0),
		match.Zero("True", 1),
		match.Zero("False", 2),
	}, "bool")
	require.NoError(t, err)
	assert.Empty(t, res.Missing)
	assert.Equal(t, map[int]bool{1: true, 2: true}, res.Unreachable)
}

func TestCheck_PairNotExhaustive(t *testing.T) {
	res, err := check(pairLang(), []pat{
		match.Con("Pair", []pat{match.Zero("True", 1), wild()}, 0),
		match.Con("Pair", []pat{wild(), match.Zero("False", 2)}, 3),
	}, "pair")
	require.NoError(t, err)
	assert.Empty(t, res.Unreachable)
	assert.Equal(t, []string{"Pair(False, True)"}, strs(res.Missing))
}

func TestCheck_PartialPatternPadsFields(t *testing.T) {
	// Rec has two fields but the arm supplies only the first, as with a
	// record pattern whose remaining labels are elided.
	res, err := check(recLang(), []pat{
		match.Con("Rec", []pat{match.Zero("True", 1)}, 0),
	}, "rec")
	require.NoError(t, err)
	assert.Empty(t, res.Unreachable)
	assert.Equal(t, []string{"Rec(False, True)", "Rec(False, False)"}, strs(res.Missing))
}

func TestCheck_OrCoversType(t *testing.T) {
	res, err := check(boolLang(), []pat{
		match.Or([]pat{match.Zero("True", 1), match.Zero("False", 2)}, 0),
	}, "bool")
	require.NoError(t, err)
	assert.Empty(t, res.Missing)
	assert.Empty(t, res.Unreachable)
}

func TestCheck_OrDuplicateAlternativeUnreachable(t *testing.T) {
	// The second True is tested after the first is assumed matched, so it
	// alone is dead; the or-arm as a whole stays reachable.
	res, err := check(boolLang(), []pat{
		match.Or([]pat{match.Zero("True", 1), match.Zero("True", 2)}, 0),
	}, "bool")
	require.NoError(t, err)
	assert.Equal(t, []string{"False"}, strs(res.Missing))
	assert.Equal(t, map[int]bool{2: true}, res.Unreachable)
}

func TestCheck_OrIsSequentialNotSymmetric(t *testing.T) {
	// True on its own is reachable, but inside or(_, True) it follows an
	// alternative that already matched everything.
	res, err := check(boolLang(), []pat{
		match.Or([]pat{match.Zero(finite.Wildcard, 1), match.Zero("True", 2)}, 0),
	}, "bool")
	require.NoError(t, err)
	assert.Empty(t, res.Missing)
	assert.Equal(t, map[int]bool{2: true}, res.Unreachable)
}

func TestCheck_OrInsideConstructorArgs(t *testing.T) {
	res, err := check(pairLang(), []pat{
		match.Con("Pair", []pat{
			match.Or([]pat{match.Zero("True", 1), match.Zero("False", 2)}, 3),
			wild(),
		}, 0),
	}, "pair")
	require.NoError(t, err)
	assert.Empty(t, res.Missing)
	assert.Empty(t, res.Unreachable)
}

func TestCheck_WitnessRoundTrip(t *testing.T) {
	scenarios := []struct {
		name string
		lang finite.Lang
		pats []pat
		ty   string
	}{
		{"bool/one-arm", boolLang(), []pat{match.Zero("True", 0)}, "bool"},
		{"bool/no-arms", boolLang(), nil, "bool"},
		{"pair/two-arms", pairLang(), []pat{
			match.Con("Pair", []pat{match.Zero("True", 1), wild()}, 0),
			match.Con("Pair", []pat{wild(), match.Zero("False", 2)}, 3),
		}, "pair"},
	}
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			res, err := check(sc.lang, sc.pats, sc.ty)
			require.NoError(t, err)
			require.NotEmpty(t, res.Missing)

			// Appending any witness as one more arm must make a reachable arm.
			for i, w := range res.Missing {
				idx := 1000 + i
				again, err := check(sc.lang, append(append([]pat{}, sc.pats...), withIdx(w, idx)), sc.ty)
				require.NoError(t, err)
				assert.False(t, again.Unreachable[idx], "witness %s came back unreachable", w)
			}
		})
	}
}

func TestCheck_Deterministic(t *testing.T) {
	pats := []pat{
		match.Con("Pair", []pat{match.Zero("True", 1), wild()}, 0),
		match.Con("Pair", []pat{wild(), match.Zero("False", 2)}, 3),
	}
	first, err := check(pairLang(), pats, "pair")
	require.NoError(t, err)
	second, err := check(pairLang(), pats, "pair")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheck_WildcardWithArgs(t *testing.T) {
	res, err := check(boolLang(), []pat{
		match.Con(finite.Wildcard, []pat{match.Zero("True", 1)}, 0),
	}, "bool")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, match.ErrAnyWithArgs)
}

func TestCheck_TooManyArgs(t *testing.T) {
	res, err := check(boolLang(), []pat{
		match.Con("True", []pat{wild()}, 0),
	}, "bool")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, match.ErrTooManyArgs)
}

func TestCheck_UnknownType(t *testing.T) {
	res, err := check(boolLang(), []pat{match.Zero("True", 0)}, "tristate")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, finite.ErrUnknownType)
}

func TestCheck_LangErrorShortCircuits(t *testing.T) {
	res, err := match.Check(failingLang{boolLang()}, finite.NoCx{}, []pat{
		match.Zero("True", 0),
	}, "bool")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, errSplit)
}
