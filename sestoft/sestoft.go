package sestoft

// Sestoft — exhaustiveness and redundancy by partial evaluation
//
// Description:
//
//	Adapted from "ML pattern match compilation and partial evaluation"
//	(Peter Sestoft). The checker walks the arms in order, maintaining a
//	description of what is statically known about the match head: either
//	positively ("it is this constructor, with these argument
//	descriptions") or negatively ("it is none of these constructors").
//	Matching a constructor against a description decides Yes, No or
//	Maybe; Maybe forks into an assumed-match branch and a refined
//	negative branch.
//
// Differences from the paper (inherited from the adaptation):
//  1. No decision tree is produced — nothing is being compiled.
//  2. No access paths are recorded, for the same reason.
//  3. Matched arms are tracked, to report unreachable ones.
//  4. Work lists run back-to-front for cheap stack pops.
//
// Completeness comes from Span: a negative description listing all but
// one constructor of a finite span forces the last constructor. Infinite
// spans are never forced, so only a wildcard completes them.
//
// Complexity:
//
//	Time:   exponential in the worst case (each Maybe forks), as inherent
//	        to the problem; linear for wildcard-terminated matches.
//	Memory: O(total pattern size) per branch; work lists are deep-copied
//	        at the single fork point to keep branches isolated.

// desc is what is statically known about one value position: positively
// a constructor with argument descriptions, or negatively a set of
// constructors the value is not built with.
type desc[C Con] struct {
	pos   bool
	con   C         // pos: the known constructor
	descs []desc[C] // pos: argument descriptions, leftmost first
	neg   map[C]bool
}

// negEmpty returns the vacuous description: not known to be anything.
func negEmpty[C Con]() desc[C] {
	return desc[C]{neg: make(map[C]bool)}
}

// clone deep-copies the description. Inner descriptions are shared
// read-only everywhere else; only the fork in doMatch clones.
func (d desc[C]) clone() desc[C] {
	out := desc[C]{pos: d.pos, con: d.con}
	if d.descs != nil {
		out.descs = make([]desc[C], len(d.descs))
		for i, a := range d.descs {
			out.descs[i] = a.clone()
		}
	}
	if d.neg != nil {
		out.neg = make(map[C]bool, len(d.neg))
		for k := range d.neg {
			out.neg[k] = true
		}
	}
	return out
}

// argPat is an unprocessed constructor argument alongside what previous
// arms established about that position.
type argPat[C Con] struct {
	pat  Pat[C]
	desc desc[C]
}

// workItem is one partially processed constructor: descs hold the
// descriptions of arguments already handled (leftmost first), args the
// pending arguments in reverse order (last element is next).
type workItem[C Con] struct {
	con   C
	descs []desc[C]
	args  []argPat[C]
}

// cloneWork deep-copies a work list so one fork branch cannot observe the
// other's mutations. Patterns are immutable and stay shared.
func cloneWork[C Con](work []workItem[C]) []workItem[C] {
	out := make([]workItem[C], len(work))
	for i, item := range work {
		var descs []desc[C]
		if item.descs != nil {
			descs = make([]desc[C], len(item.descs))
			for j, d := range item.descs {
				descs[j] = d.clone()
			}
		}
		var args []argPat[C]
		if item.args != nil {
			args = make([]argPat[C], len(item.args))
			for j, a := range item.args {
				args[j] = argPat[C]{pat: a.pat, desc: a.desc.clone()}
			}
		}
		out[i] = workItem[C]{con: item.con, descs: descs, args: args}
	}
	return out
}

// patIter walks the remaining arms. It is passed by value, so every call
// naturally snapshots its position; the arm slice itself is read-only.
type patIter[C Con] struct {
	pats []Pat[C]
	next int
}

func (it *patIter[C]) take() (int, Pat[C], bool) {
	if it.next >= len(it.pats) {
		return 0, Pat[C]{}, false
	}
	i := it.next
	it.next++
	return i, it.pats[i], true
}

// staticMatch verdicts.
const (
	smYes = iota
	smNo
	smMaybe
)

// Check reports whether the arms are exhaustive and whether any arm is
// unreachable. Arms are matched in order from first to last.
func Check[C Con](pats []Pat[C]) Res {
	reached := make([]bool, len(pats))
	if !fail(reached, negEmpty[C](), patIter[C]{pats: pats}) {
		return Res{Exhaustive: false, Unreachable: -1}
	}
	for i, ok := range reached {
		if !ok {
			return Res{Exhaustive: true, Unreachable: i}
		}
	}
	return Res{Exhaustive: true, Unreachable: -1}
}

// fail hands the accumulated description to the next arm, if any.
// Returns whether the match turned out exhaustive.
func fail[C Con](reached []bool, d desc[C], it patIter[C]) bool {
	i, p, ok := it.take()
	if !ok {
		return false
	}
	return doMatch(reached, i, p, d, nil, it)
}

// succeed drains the work list for the arm at idx; an empty list proves
// the arm reachable.
func succeed[C Con](reached []bool, idx int, work []workItem[C], it patIter[C]) bool {
	for {
		if len(work) == 0 {
			reached[idx] = true
			return true
		}
		item := work[len(work)-1]
		work = work[:len(work)-1]
		if len(item.args) == 0 {
			// Constructor fully processed: fold it into a positive
			// description for the argument one level up.
			work = augment(work, desc[C]{pos: true, con: item.con, descs: item.descs})
			continue
		}
		a := item.args[len(item.args)-1]
		item.args = item.args[:len(item.args)-1]
		work = append(work, item)
		return doMatch(reached, idx, a.pat, a.desc, work, it)
	}
}

// succeedWith queues con's arguments as new work for the arm at idx,
// pairing them with argument descriptions from d when positive.
func succeedWith[C Con](
	reached []bool,
	idx int,
	work []workItem[C],
	con C,
	argPats []Pat[C],
	d desc[C],
	it patIter[C],
) bool {
	var argDescs []desc[C]
	if d.pos {
		argDescs = d.descs
	} else {
		argDescs = make([]desc[C], len(argPats))
		for i := range argDescs {
			argDescs[i] = negEmpty[C]()
		}
	}
	if len(argPats) != len(argDescs) {
		panic("sestoft: argument and description counts disagree")
	}
	args := make([]argPat[C], len(argPats))
	for i := range argPats {
		// Reversed, so the leftmost source argument is popped first.
		args[len(argPats)-1-i] = argPat[C]{pat: argPats[i], desc: argDescs[i]}
	}
	work = append(work, workItem[C]{con: con, args: args})
	return succeed(reached, idx, work, it)
}

// augment attaches d as the next processed-argument description of the
// work list's top item. Each item's descs slice is uniquely owned (fresh
// at creation, deep-copied on clone), so appending in place is safe.
func augment[C Con](work []workItem[C], d desc[C]) []workItem[C] {
	if len(work) > 0 {
		last := &work[len(work)-1]
		last.descs = append(last.descs, d)
	}
	return work
}

// buildDesc reassembles the overall description of the match head from a
// base description and the surrounding work list.
func buildDesc[C Con](d desc[C], work []workItem[C]) desc[C] {
	for i := len(work) - 1; i >= 0; i-- {
		item := work[i]
		descs := make([]desc[C], 0, len(item.descs)+1+len(item.args))
		// Processed argument descriptions first, then this one, then the
		// pending arguments straightened back into source order.
		descs = append(descs, item.descs...)
		descs = append(descs, d)
		for j := len(item.args) - 1; j >= 0; j-- {
			descs = append(descs, item.args[j].desc)
		}
		d = desc[C]{pos: true, con: item.con, descs: descs}
	}
	return d
}

// staticMatch matches con against d: smYes when consistent, smNo when
// ruled out, smMaybe with a copy of the negative set otherwise (only
// negative descriptions can be ambiguous).
func staticMatch[C Con](con C, d desc[C]) (int, map[C]bool) {
	if d.pos {
		if d.con == con {
			return smYes, nil
		}
		return smNo, nil
	}
	if d.neg[con] {
		return smNo, nil
	}
	if con.Span() == Finite(len(d.neg)+1) {
		// Every other constructor is excluded; con is forced.
		return smYes, nil
	}
	cp := make(map[C]bool, len(d.neg)+1)
	for k := range d.neg {
		cp[k] = true
	}
	return smMaybe, cp
}

// doMatch matches one pattern against one description, dispatching to
// succeed/fail; the Maybe case forks into an assumed-match branch (on a
// cloned work list) and a refined negative branch.
func doMatch[C Con](
	reached []bool,
	idx int,
	p Pat[C],
	d desc[C],
	work []workItem[C],
	it patIter[C],
) bool {
	if p.wild {
		return succeed(reached, idx, augment(work, d), it)
	}
	verdict, cons := staticMatch(p.con, d)
	switch verdict {
	case smYes:
		return succeedWith(reached, idx, work, p.con, p.args, d, it)
	case smNo:
		return fail(reached, buildDesc(d, work), it)
	default:
		cons[p.con] = true
		return succeedWith(reached, idx, cloneWork(work), p.con, p.args, d, it) &&
			fail(reached, buildDesc(desc[C]{neg: cons}, work), it)
	}
}
