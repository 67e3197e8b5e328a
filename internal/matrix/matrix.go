// Package matrix implements dense 2-D float32 matrices over shared,
// reference-counted flat buffers.
//
// A Matrix is a cheap view: it pairs a buffer with a shape and a transpose
// flag. Transposition flips the flag and never moves data, so views of the
// same buffer may disagree about layout while reading the same storage.
// Selectors (Index, Set, Span) address sub-matrices the way slicing does in
// array languages: scalar indices must be in bounds, spans clamp silently.
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a 2-D view over a reference-counted float32 buffer. The
// transpose flag swaps the logical axes without touching storage, so the
// physical layout is always n rows by m columns, row-major.
type Matrix struct {
	buf        *buffer
	n, m       int
	transposed bool
}

// New returns an (n, m) matrix of zeros.
func New(n, m int) (*Matrix, error) {
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("shape (%d, %d): %w", n, m, ErrInvalidShape)
	}
	return &Matrix{buf: newBuffer(n * m), n: n, m: m}, nil
}

// Full returns an (n, m) matrix with every element set to v.
func Full(n, m int, v float32) (*Matrix, error) {
	mat, err := New(n, m)
	if err != nil {
		return nil, err
	}
	for i := range mat.buf.data {
		mat.buf.data[i] = v
	}
	return mat, nil
}

// FromSlice returns an (n, m) matrix initialized from data in row-major
// order. The slice is copied; the caller keeps ownership of data.
func FromSlice(n, m int, data []float32) (*Matrix, error) {
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("shape (%d, %d): %w", n, m, ErrInvalidShape)
	}
	if len(data) != n*m {
		return nil, fmt.Errorf("%d elements for shape (%d, %d): %w", len(data), n, m, ErrShapeDataMismatch)
	}
	mat := &Matrix{buf: newBuffer(n * m), n: n, m: m}
	copy(mat.buf.data, data)
	return mat, nil
}

// NewFrom returns an (n, m) matrix initialized from an arbitrary numeric
// sequence: []float32, []float64, []int, or []any holding numeric values.
// Row-major order, copied.
func NewFrom(n, m int, data any) (*Matrix, error) {
	seq, err := floatSeq(data)
	if err != nil {
		return nil, err
	}
	return FromSlice(n, m, seq)
}

// floatSeq converts a supported sequence type to a fresh []float32.
func floatSeq(data any) ([]float32, error) {
	switch d := data.(type) {
	case []float32:
		out := make([]float32, len(d))
		copy(out, d)
		return out, nil
	case []float64:
		out := make([]float32, len(d))
		for i, v := range d {
			out[i] = float32(v)
		}
		return out, nil
	case []int:
		out := make([]float32, len(d))
		for i, v := range d {
			out[i] = float32(v)
		}
		return out, nil
	case []any:
		out := make([]float32, len(d))
		for i, v := range d {
			f, ok := asFloat(v)
			if !ok {
				return nil, fmt.Errorf("element %d is %T: %w", i, v, ErrInvalidElementType)
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, fmt.Errorf("sequence type %T: %w", data, ErrInvalidElementType)
	}
}

// asFloat converts a single numeric value to float32.
func asFloat(v any) (float32, bool) {
	switch x := v.(type) {
	case float32:
		return x, true
	case float64:
		return float32(x), true
	case int:
		return float32(x), true
	case int32:
		return float32(x), true
	case int64:
		return float32(x), true
	default:
		return 0, false
	}
}

// Shape returns the logical extents of the view, transposition applied.
func (x *Matrix) Shape() (int, int) {
	return logicalExtents(x.n, x.m, x.transposed)
}

// Size returns the total number of elements.
func (x *Matrix) Size() int { return x.n * x.m }

// Transposed reports whether the view's axes are swapped relative to its
// physical layout.
func (x *Matrix) Transposed() bool { return x.transposed }

// Data returns the elements in logical row-major order as a fresh slice.
func (x *Matrix) Data() []float32 {
	out := make([]float32, 0, x.Size())
	for _, pos := range SelectAll(x.n, x.m, x.transposed) {
		out = append(out, x.buf.data[pos])
	}
	return out
}

// T returns a transposed view sharing this matrix's buffer. O(1); no
// element moves. Transposing twice yields the original orientation.
func (x *Matrix) T() *Matrix {
	x.buf.addRef()
	return &Matrix{buf: x.buf, n: x.n, m: x.m, transposed: !x.transposed}
}

// Copy returns a compact, untransposed deep copy of the view.
func (x *Matrix) Copy() *Matrix {
	si, sj := x.Shape()
	out := &Matrix{buf: newBuffer(si * sj), n: si, m: sj}
	copy(out.buf.data, x.Data())
	return out
}

// Release drops this view's reference to the shared buffer. The buffer is
// freed when the last view releases it. Using the matrix after Release is a
// caller error.
func (x *Matrix) Release() {
	x.buf.release()
}

// At reads the element at logical coordinate (i, j).
func (x *Matrix) At(i, j int) (float32, error) {
	pos, err := LinearizeScalar(x.n, x.m, x.transposed, i, j)
	if err != nil {
		return 0, err
	}
	return x.buf.data[pos], nil
}

// Set writes the element at logical coordinate (i, j).
func (x *Matrix) Set(i, j int, v float32) error {
	pos, err := LinearizeScalar(x.n, x.m, x.transposed, i, j)
	if err != nil {
		return err
	}
	x.buf.data[pos] = v
	return nil
}

// Get materializes the sub-matrix addressed by sel as a new compact matrix.
// A single selector addresses axis i and implies All() on axis j. A fully
// scalar selection yields a 1×1 matrix; use At for a bare value. Selections
// with a zero-length axis fail with ErrEmptySelection.
func (x *Matrix) Get(sel ...Selector) (*Matrix, error) {
	pair, err := Canonicalize(sel...)
	if err != nil {
		return nil, err
	}
	si, sj, err := SubShape(x.n, x.m, x.transposed, pair[0], pair[1])
	if err != nil {
		return nil, err
	}
	if si == 0 || sj == 0 {
		return nil, fmt.Errorf("selection shape (%d, %d): %w", si, sj, ErrEmptySelection)
	}
	linear, err := LinearizeIndices(x.n, x.m, x.transposed, pair[0], pair[1])
	if err != nil {
		return nil, err
	}
	out := &Matrix{buf: newBuffer(si * sj), n: si, m: sj}
	for k, pos := range linear {
		out.buf.data[k] = x.buf.data[pos]
	}
	return out, nil
}

// Assign writes value into the sub-matrix addressed by sel. value may be a
// *Matrix of matching logical shape, a numeric sequence of matching length
// in row-major order, or a single numeric value broadcast across the
// selection. Nothing is written until the whole selection and value have
// resolved, so a failed Assign leaves the matrix untouched. A *Matrix
// source is read in place while writing: if it overlaps the destination,
// later reads observe earlier writes.
func (x *Matrix) Assign(value any, sel ...Selector) error {
	pair, err := Canonicalize(sel...)
	if err != nil {
		return err
	}
	si, sj, err := SubShape(x.n, x.m, x.transposed, pair[0], pair[1])
	if err != nil {
		return err
	}
	if si == 0 || sj == 0 {
		return fmt.Errorf("selection shape (%d, %d): %w", si, sj, ErrEmptySelection)
	}
	linear, err := LinearizeIndices(x.n, x.m, x.transposed, pair[0], pair[1])
	if err != nil {
		return err
	}

	switch v := value.(type) {
	case *Matrix:
		vi, vj := v.Shape()
		if vi != si || vj != sj {
			return fmt.Errorf("assigning (%d, %d) into (%d, %d) selection: %w", vi, vj, si, sj, ErrShapeMismatch)
		}
		// Element-by-element through the live source buffer. When v
		// aliases x, later reads see earlier writes; callers wanting
		// copy semantics pass v.Copy().
		src := SelectAll(v.n, v.m, v.transposed)
		for k, pos := range linear {
			x.buf.data[pos] = v.buf.data[src[k]]
		}
		return nil
	case []float32, []float64, []int, []any:
		src, err := floatSeq(v)
		if err != nil {
			return err
		}
		if len(src) != len(linear) {
			return fmt.Errorf("%d elements for (%d, %d) selection: %w", len(src), si, sj, ErrShapeMismatch)
		}
		for k, pos := range linear {
			x.buf.data[pos] = src[k]
		}
		return nil
	default:
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("assigned value %T: %w", value, ErrInvalidElementType)
		}
		for _, pos := range linear {
			x.buf.data[pos] = f
		}
		return nil
	}
}

// String renders the matrix in logical orientation, one bracketed row per
// line.
func (x *Matrix) String() string {
	si, sj := x.Shape()
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix(%d, %d)[", si, sj)
	data := x.Data()
	for i := 0; i < si; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		for j := 0; j < sj; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", data[i*sj+j])
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
