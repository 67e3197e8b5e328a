package matrix

// Iterator walks a matrix one logical row at a time, yielding each row as
// a compact 1×m matrix. A matrix with a single logical row is walked by
// column instead, so iterating always decomposes into smaller pieces
// rather than yielding the matrix back unchanged.
type Iterator struct {
	src      *Matrix
	pos      int
	count    int
	byColumn bool
}

// Iter returns an iterator over x. The iterator holds a reference to x's
// view; releasing x before the iterator is exhausted is a caller error.
func (x *Matrix) Iter() *Iterator {
	si, sj := x.Shape()
	if si == 1 {
		return &Iterator{src: x, count: sj, byColumn: true}
	}
	return &Iterator{src: x, count: si}
}

// Next returns the next row (or column element, for single-row matrices)
// and true, or nil and false once the iterator is exhausted.
func (it *Iterator) Next() (*Matrix, bool) {
	if it.pos >= it.count {
		return nil, false
	}
	var out *Matrix
	var err error
	if it.byColumn {
		out, err = it.src.Get(All(), Index(it.pos))
	} else {
		out, err = it.src.Get(Index(it.pos), All())
	}
	if err != nil {
		panic(err) // positions are bounded by the source shape
	}
	it.pos++
	return out, true
}
