// Package match: the usefulness recursion and the Check entry point.
package match

import "fmt"

// Check decides reachability and exhaustiveness for an ordered list of
// match-arm patterns scrutinizing a value of type ty.
//
// Each pattern is tested for usefulness against all patterns before it
// (later arms see earlier ones, including redundant ones); a final pass
// with a synthetic wildcard collects witnesses of uncovered values.
//
// Returns an error when the patterns or types violate the checker's
// contract (ErrAnyWithArgs, ErrTooManyArgs) or when a Lang call fails;
// there is no partial result. Panics on internal invariant violations,
// which indicate a bug in the Lang implementation itself.
func Check[Cx any, I comparable, C, T any](
	lang Lang[Cx, I, C, T],
	cx Cx,
	pats []Pat[I, C],
	ty T,
) (*CheckResult[I, C], error) {
	// 1. Every pattern identity starts out presumed unreachable.
	c := &checker[Cx, I, C, T]{
		lang: lang,
		cx:   cx,
		ac:   make(map[I]bool),
		wild: lang.Any(),
	}
	for i := range pats {
		collectIdxs(c.ac, pats[i])
	}

	// 2. Test each arm against the matrix of prior arms, then insert it.
	//    Reachable identities are removed from ac inside useful.
	var mtx matrix[I, C]
	for _, p := range pats {
		if _, err := c.useful(0, &mtx, []typedPat[I, C, T]{{pat: p, ty: ty}}); err != nil {
			return nil, err
		}
		mtx.push([]Pat[I, C]{p})
	}

	// 3. A wildcard useful against the full matrix exhibits uncovered values.
	wits, err := c.useful(0, &mtx, []typedPat[I, C, T]{{pat: c.anyPat(), ty: ty}})
	if err != nil {
		return nil, err
	}
	missing := make([]Pat[I, C], 0, len(wits))
	for _, w := range wits {
		if len(w) != 1 {
			panic("match: top-level witness is not a single column")
		}
		missing = append(missing, w[0])
	}

	return &CheckResult[I, C]{Unreachable: c.ac, Missing: missing}, nil
}

// collectIdxs adds every pattern identity in p, recursively, to ac.
func collectIdxs[I comparable, C any](ac map[I]bool, p Pat[I, C]) {
	if p.Idx != nil {
		ac[*p.Idx] = true
	}
	switch raw := p.Raw.(type) {
	case ConPat[I, C]:
		for _, a := range raw.Args {
			collectIdxs(ac, a)
		}
	case OrPat[I, C]:
		for _, a := range raw {
			collectIdxs(ac, a)
		}
	}
}

// typedPat pairs a pattern with the type of the value column it occupies.
type typedPat[I comparable, C, T any] struct {
	pat Pat[I, C]
	ty  T
}

// checker carries the state threaded through the usefulness recursion.
type checker[Cx any, I comparable, C, T any] struct {
	lang Lang[Cx, I, C, T]
	cx   Cx
	ac   map[I]bool // identities still presumed unreachable
	wild C          // lang.Any(), resolved once
}

// anyPat returns a synthetic wildcard pattern.
func (c *checker[Cx, I, C, T]) anyPat() Pat[I, C] {
	return conNoIdx[I](c.wild, nil)
}

// useful reports whether the value pattern vector val is useful relative
// to mtx: the returned witnesses are concrete pattern vectors matched by
// val but by no row of mtx. An empty result means not useful. val is a
// stack — its last element is the next column to be specialized.
//
// Whenever a pattern with an identity produces witnesses, that identity
// is removed from c.ac: usefulness discovered anywhere inside a nested
// constructor or or-alternative proves the originating arm reachable.
func (c *checker[Cx, I, C, T]) useful(
	depth int,
	mtx *matrix[I, C],
	val []typedPat[I, C, T],
) ([][]Pat[I, C], error) {
	if nc, ok := mtx.numCols(); ok && nc != len(val) {
		panic("match: value stack and matrix disagree on columns")
	}

	// Base case: no columns left. An empty matrix leaves the empty vector
	// as the one witness; any remaining row already fully matches.
	if len(val) == 0 {
		if mtx.numRows() == 0 {
			return [][]Pat[I, C]{nil}, nil
		}
		return nil, nil
	}

	top := val[len(val)-1]
	rest := val[:len(val)-1]
	var wits [][]Pat[I, C]

	switch raw := top.pat.Raw.(type) {
	case OrPat[I, C]:
		// Sequential fold over the alternatives: each is tested against a
		// matrix extended with the alternatives before it, so arm priority
		// within the or-pattern stays observable.
		m := mtx.clone()
		for _, alt := range raw {
			branch := concatTyped(rest, typedPat[I, C, T]{pat: alt, ty: top.ty})
			ws, err := c.useful(depth+1, &m, branch)
			if err != nil {
				return nil, err
			}
			wits = append(wits, ws...)
			m.push(stripTys(branch))
		}

	case ConPat[I, C]:
		cons, err := c.lang.Split(c.cx, top.ty, raw.Con, mtx.trailingCons(), depth)
		if err != nil {
			return nil, fmt.Errorf("match: split: %w", err)
		}
		for _, con := range cons {
			// Specialize the matrix by con: rows whose trailing pattern
			// covers con survive, with that pattern replaced by its fields.
			var sub matrix[I, C]
			for _, r := range mtx.nonEmptyRows() {
				fields, ok, err := c.specialize(top.ty, r.conPat, con)
				if err != nil {
					return nil, err
				}
				if ok {
					sub.push(concatPats(r.pats, stripTys(fields)...))
				}
			}

			// Specialize the value's own pattern; a constructor pattern
			// always covers a constructor produced by its own split.
			fields, ok, err := c.specialize(top.ty, raw, con)
			if err != nil {
				return nil, err
			}
			if !ok {
				panic("match: constructor pattern does not cover its own split")
			}
			n := len(fields)
			ws, err := c.useful(depth+1, &sub, concatTyped(rest, fields...))
			if err != nil {
				return nil, err
			}

			// Fold each witness's trailing n columns back into one
			// constructor node carrying the original arm identity.
			for wi, w := range ws {
				args := make([]Pat[I, C], n)
				for j := 0; j < n; j++ {
					args[j] = w[len(w)-1-j]
				}
				ws[wi] = append(w[:len(w)-n], Pat[I, C]{
					Raw: ConPat[I, C]{Con: con, Args: args},
					Idx: top.pat.Idx,
				})
			}
			wits = append(wits, ws...)
		}
	}

	if top.pat.Idx != nil && len(wits) > 0 {
		delete(c.ac, *top.pat.Idx)
	}
	return wits, nil
}

// specialize resolves the pattern pat, of column type ty, against the
// candidate value constructor valCon. It returns the resulting typed
// sub-patterns in reverse field order (ready for stack pushes), or
// ok=false when pat cannot match values built with valCon (the row is
// eliminated) — distinct from matching with zero fields.
func (c *checker[Cx, I, C, T]) specialize(
	ty T,
	pat ConPat[I, C],
	valCon C,
) ([]typedPat[I, C, T], bool, error) {
	switch {
	case c.lang.Covers(pat.Con, c.wild):
		// A wildcard: one synthetic wildcard per field of valCon.
		if len(pat.Args) != 0 {
			return nil, false, ErrAnyWithArgs
		}
		tys, err := c.lang.ArgTys(c.cx, ty, valCon)
		if err != nil {
			return nil, false, fmt.Errorf("match: arg types: %w", err)
		}
		out := make([]typedPat[I, C, T], len(tys))
		for i, t := range tys {
			out[len(tys)-1-i] = typedPat[I, C, T]{pat: c.anyPat(), ty: t}
		}
		return out, true, nil

	case c.lang.Covers(pat.Con, valCon):
		// Pair the supplied arguments with valCon's fields positionally;
		// missing trailing arguments (partial record patterns) become
		// wildcards.
		tys, err := c.lang.ArgTys(c.cx, ty, valCon)
		if err != nil {
			return nil, false, fmt.Errorf("match: arg types: %w", err)
		}
		if len(tys) < len(pat.Args) {
			return nil, false, ErrTooManyArgs
		}
		out := make([]typedPat[I, C, T], len(tys))
		for i, t := range tys {
			p := c.anyPat()
			if i < len(pat.Args) {
				p = pat.Args[i]
			}
			out[len(tys)-1-i] = typedPat[I, C, T]{pat: p, ty: t}
		}
		return out, true, nil

	default:
		return nil, false, nil
	}
}

// concatPats returns a freshly allocated concatenation of a and b, never
// aliasing either argument's backing array.
func concatPats[I comparable, C any](a []Pat[I, C], b ...Pat[I, C]) []Pat[I, C] {
	out := make([]Pat[I, C], 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// concatTyped is concatPats for typed pattern stacks.
func concatTyped[I comparable, C, T any](a []typedPat[I, C, T], b ...typedPat[I, C, T]) []typedPat[I, C, T] {
	out := make([]typedPat[I, C, T], 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// stripTys projects the pattern component of a typed stack.
func stripTys[I comparable, C, T any](val []typedPat[I, C, T]) []Pat[I, C] {
	out := make([]Pat[I, C], len(val))
	for i := range val {
		out[i] = val[i].pat
	}
	return out
}
