// Package match: the pattern matrix.
//
// A matrix is a 2-D table of patterns, one row per (expanded) arm already
// processed. It exists only inside one Check call and is private to the
// package, so its contracts are enforced with panics, not errors: a ragged
// push or an empty-row iteration is a checker bug, never caller input.
package match

// matrix is a growable table of patterns. Invariant: all rows have the
// same column count.
//
// Rows share the slice holding their non-trailing patterns, and branches
// of the algorithm share rows across matrix clones. This is safe because
// a Pat is never mutated after construction: every row or value-stack
// extension allocates a fresh slice (see concatPats).
type matrix[I comparable, C any] struct {
	rows []row[I, C]
}

// row is one matrix row: either empty (zero columns), or non-empty with
// its rightmost pattern already resolved to a constructor pattern.
// Or-patterns never survive into a row: push expands them eagerly.
type row[I comparable, C any] struct {
	// empty marks a zero-column row; pats and conPat are meaningless then.
	empty bool

	// pats are the non-trailing patterns, in column order.
	pats []Pat[I, C]

	// conPat is the rightmost pattern.
	conPat ConPat[I, C]
}

// width returns the row's column count.
func (r row[I, C]) width() int {
	if r.empty {
		return 0
	}
	return len(r.pats) + 1
}

// numRows returns the number of rows.
func (m *matrix[I, C]) numRows() int {
	return len(m.rows)
}

// numCols returns the column count and true, or false if there are no rows.
func (m *matrix[I, C]) numCols() (int, bool) {
	if len(m.rows) == 0 {
		return 0, false
	}
	return m.rows[0].width(), true
}

// clone returns a matrix that can grow independently of m.
func (m *matrix[I, C]) clone() matrix[I, C] {
	rows := make([]row[I, C], len(m.rows))
	copy(rows, m.rows)
	return matrix[I, C]{rows: rows}
}

// nonEmptyRows returns all rows, panicking if any row is empty. Callers
// only reach this in states with at least one remaining column, which
// structurally excludes empty rows.
func (m *matrix[I, C]) nonEmptyRows() []row[I, C] {
	for i := range m.rows {
		if m.rows[i].empty {
			panic("match: empty matrix row")
		}
	}
	return m.rows
}

// trailingCons collects the constructor of every row's rightmost pattern.
func (m *matrix[I, C]) trailingCons() []C {
	rows := m.nonEmptyRows()
	cons := make([]C, len(rows))
	for i := range rows {
		cons[i] = rows[i].conPat.Con
	}
	return cons
}

// push appends rowPats to the bottom of the matrix. An empty rowPats
// appends a single empty row. Otherwise the last pattern is recursively
// flattened: each or-alternative yields one row, all sharing the other
// patterns. Panics if rowPats disagrees with the matrix's column count.
func (m *matrix[I, C]) push(rowPats []Pat[I, C]) {
	// 1. Column-count contract.
	if nc, ok := m.numCols(); ok && nc != len(rowPats) {
		panic("match: ragged matrix row")
	}

	// 2. Zero columns: a single empty row.
	n := len(rowPats)
	if n == 0 {
		m.rows = append(m.rows, row[I, C]{empty: true})
		return
	}

	// 3. Expand the trailing pattern, one row per flattened alternative.
	var conPats []ConPat[I, C]
	expandOr(&conPats, rowPats[n-1])
	rest := rowPats[:n-1]
	for _, cp := range conPats {
		m.rows = append(m.rows, row[I, C]{pats: rest, conPat: cp})
	}
}

// expandOr flattens nested or-patterns into their constituent constructor
// patterns, in match order.
func expandOr[I comparable, C any](ac *[]ConPat[I, C], p Pat[I, C]) {
	switch raw := p.Raw.(type) {
	case ConPat[I, C]:
		*ac = append(*ac, raw)
	case OrPat[I, C]:
		for _, alt := range raw {
			expandOr(ac, alt)
		}
	}
}
