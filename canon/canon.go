package canon

// Canonicalize returns the lexicographically smallest adjacency matrix (rows
// compared in order, each row as its uint64 value) reachable by permuting
// in's vertices within their partition cells, and the permutation that
// produced it.
func Canonicalize(in *Input) (*Certificate, error) {
	if in.N > 64 {
		return nil, ErrWordBudgetExceeded
	}
	if in.N == 0 {
		return nil, ErrEmptyInput
	}

	s := &search{
		in:   in,
		perm: make([]int, in.N),
	}
	s.best = make([]uint64, in.N)
	s.bestLab = make([]int, in.N)

	s.tryCell(0, 0)

	return &Certificate{Matrix: s.best, Lab: s.bestLab}, nil
}

type search struct {
	in      *Input
	perm    []int
	found   bool
	best    []uint64
	bestLab []int
}

// tryCell fills final positions [posOffset, posOffset+len(cell)) with every
// ordering of in.Cells[cellIdx]'s members, recursing into the next cell
// once one is fixed, and compares the resulting full matrix once every
// cell has been placed.
func (s *search) tryCell(cellIdx, posOffset int) {
	if cellIdx == len(s.in.Cells) {
		s.considerComplete()
		return
	}

	cell := s.in.Cells[cellIdx]
	permuteInto(cell, func(order []int) {
		for i, orig := range order {
			s.perm[posOffset+i] = orig
		}
		s.tryCell(cellIdx+1, posOffset+len(cell))
	})
}

func (s *search) considerComplete() {
	matrix := buildMatrix(s.in, s.perm)
	if !s.found || lessMatrix(matrix, s.best) {
		copy(s.best, matrix)
		copy(s.bestLab, s.perm)
		s.found = true
	}
}

// buildMatrix materializes the N-vertex adjacency matrix that results from
// placing original position perm[i] at final position i, for every i.
func buildMatrix(in *Input, perm []int) []uint64 {
	n := in.N
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		oi := perm[i]
		var row uint64
		for j := 0; j < n; j++ {
			if in.Adj[oi]&(uint64(1)<<uint(perm[j])) != 0 {
				row |= uint64(1) << uint(j)
			}
		}
		out[i] = row
	}

	return out
}

func lessMatrix(a, b []uint64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// permuteInto calls visit once per permutation of items, via Heap's
// algorithm. visit must not retain the slice it is given.
func permuteInto(items []int, visit func(order []int)) {
	n := len(items)
	buf := append([]int(nil), items...)
	if n == 0 {
		visit(buf)
		return
	}

	c := make([]int, n)
	visit(buf)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				buf[0], buf[i] = buf[i], buf[0]
			} else {
				buf[c[i]], buf[i] = buf[i], buf[c[i]]
			}
			visit(buf)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}
