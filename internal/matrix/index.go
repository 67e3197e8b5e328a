package matrix

import "fmt"

// The index resolver translates a pair of per-axis selectors into the shape
// of the addressed sub-matrix and the flat positions it occupies in the
// row-major physical buffer. It only ever sees the three numbers that
// define a view's layout (n, m, transposed); it never touches element data.

// linearize computes the flat position of an in-bounds logical coordinate.
// The transpose flag swaps the roles of i and j; it never reorders storage.
func linearize(m int, transposed bool, i, j int) int {
	if transposed {
		return j*m + i
	}
	return i*m + j
}

// LinearizeScalar maps the logical coordinate (i, j) of an (n, m) view to
// its flat buffer position, or fails with ErrIndexOutOfBounds. This is the
// single point where the transpose flag decides physical addressing; every
// higher-level resolution routes through it.
func LinearizeScalar(n, m int, transposed bool, i, j int) (int, error) {
	if !transposed && 0 <= i && i < n && 0 <= j && j < m {
		return linearize(m, transposed, i, j), nil
	}
	if transposed && 0 <= j && j < n && 0 <= i && i < m {
		return linearize(m, transposed, i, j), nil
	}
	si, sj := logicalExtents(n, m, transposed)
	return 0, fmt.Errorf("coordinate (%d, %d) outside a %d×%d matrix: %w", i, j, si, sj, ErrIndexOutOfBounds)
}

// logicalExtents returns the per-axis sizes as seen by callers, after the
// transpose flag is applied.
func logicalExtents(n, m int, transposed bool) (int, int) {
	if transposed {
		return m, n
	}
	return n, m
}

// axisLength returns the number of coordinates a single-axis selector
// contributes, without resolving them.
func axisLength(extent int, sel Selector) (int, error) {
	switch s := sel.(type) {
	case Index:
		return 1, nil
	case Set:
		return len(s), nil
	case Span:
		_, _, length, err := s.resolve(extent)
		return length, err
	default:
		return 0, fmt.Errorf("axis selector %T: %w", sel, ErrInvalidSelectorType)
	}
}

// axisCoords expands a single-axis selector into the ordered logical
// coordinates it addresses. Bounds are not checked here; LinearizeScalar is
// the single authority for that.
func axisCoords(extent int, sel Selector) ([]int, error) {
	switch s := sel.(type) {
	case Index:
		return []int{int(s)}, nil
	case Set:
		coords := make([]int, len(s))
		for k, e := range s {
			v, ok := asIndex(e)
			if !ok {
				return nil, fmt.Errorf("set element %v (%T): %w", e, e, ErrInvalidSetElement)
			}
			coords[k] = v
		}
		return coords, nil
	case Span:
		start, step, length, err := s.resolve(extent)
		if err != nil {
			return nil, err
		}
		coords := make([]int, length)
		for k := range coords {
			coords[k] = start + k*step
		}
		return coords, nil
	default:
		return nil, fmt.Errorf("axis selector %T: %w", sel, ErrInvalidSelectorType)
	}
}

// exactPair enforces the two-axis selector contract of the resolver's free
// functions. Canonicalize, not exactPair, is where incomplete selectors are
// filled in.
func exactPair(sel []Selector) ([2]Selector, error) {
	var pair [2]Selector
	if len(sel) != 2 {
		return pair, fmt.Errorf("got %d selectors: %w", len(sel), ErrInvalidSelectorLength)
	}
	pair[0], pair[1] = sel[0], sel[1]
	return pair, nil
}

// SubShape computes the logical shape of the sub-matrix addressed by a
// two-element selector pair against an (n, m, transposed) view. An Index
// contributes extent 1, a Set its length, and a Span its clamped length
// against the logical extent of its axis. Scalar indices are not
// bounds-checked here; that happens during linearization.
func SubShape(n, m int, transposed bool, sel ...Selector) (int, int, error) {
	pair, err := exactPair(sel)
	if err != nil {
		return 0, 0, err
	}
	maxI, maxJ := logicalExtents(n, m, transposed)
	si, err := axisLength(maxI, pair[0])
	if err != nil {
		return 0, 0, err
	}
	sj, err := axisLength(maxJ, pair[1])
	if err != nil {
		return 0, 0, err
	}
	return si, sj, nil
}

// LinearizeIndices resolves a two-element selector pair to the ordered flat
// buffer positions it addresses, in row-major order of the sub-shape (axis
// i outer, axis j inner). The result length always equals the product of
// the SubShape extents. Resolution fails fast: the first out-of-bounds
// coordinate aborts with no partial result.
func LinearizeIndices(n, m int, transposed bool, sel ...Selector) ([]int, error) {
	pair, err := exactPair(sel)
	if err != nil {
		return nil, err
	}
	maxI, maxJ := logicalExtents(n, m, transposed)
	ci, err := axisCoords(maxI, pair[0])
	if err != nil {
		return nil, err
	}
	cj, err := axisCoords(maxJ, pair[1])
	if err != nil {
		return nil, err
	}

	linear := make([]int, 0, len(ci)*len(cj))
	for _, i := range ci {
		for _, j := range cj {
			pos, err := LinearizeScalar(n, m, transposed, i, j)
			if err != nil {
				return nil, err
			}
			linear = append(linear, pos)
		}
	}
	return linear, nil
}

// SelectAll returns the flat positions of every element of an (n, m,
// transposed) view in logical row-major order. Two views of equal logical
// shape can be walked in lockstep through their respective SelectAll
// sequences regardless of how either is transposed; every elementwise
// operation relies on this.
func SelectAll(n, m int, transposed bool) []int {
	linear, err := LinearizeIndices(n, m, transposed, All(), All())
	if err != nil {
		panic(err) // full spans over a valid shape cannot fail
	}
	return linear
}
