package matrix

import (
	"fmt"
	"math"

	"github.com/planar-engine/planar/internal/parallel"
)

// Conventional tolerances for AllClose. The function itself takes whatever
// the caller passes; zero tolerances mean exact comparison.
const (
	DefaultRelTol = 1e-5
	DefaultAbsTol = 1e-8
)

// kernelCfg sizes the worker pool for elementwise and product kernels.
// Small matrices stay on the calling goroutine.
var kernelCfg = parallel.DefaultConfig()

// apply returns a new matrix with f mapped over every element. The result
// keeps the receiver's layout, so it compares equal position-for-position.
func (x *Matrix) apply(f func(float32) float32) *Matrix {
	out := &Matrix{buf: newBuffer(x.n * x.m), n: x.n, m: x.m, transposed: x.transposed}
	parallel.For(len(x.buf.data), func(i int) {
		out.buf.data[i] = f(x.buf.data[i])
	}, kernelCfg)
	return out
}

// zipWith combines two views of equal logical shape elementwise. Both
// operands are walked in logical row-major order, so mixed transposition
// between them is handled transparently. The result inherits the
// receiver's physical layout and transpose flag.
func (x *Matrix) zipWith(y *Matrix, f func(a, b float32) float32) (*Matrix, error) {
	xi, xj := x.Shape()
	yi, yj := y.Shape()
	if xi != yi || xj != yj {
		return nil, fmt.Errorf("shapes (%d, %d) and (%d, %d): %w", xi, xj, yi, yj, ErrShapeMismatch)
	}
	xs := SelectAll(x.n, x.m, x.transposed)
	ys := SelectAll(y.n, y.m, y.transposed)
	out := &Matrix{buf: newBuffer(x.n * x.m), n: x.n, m: x.m, transposed: x.transposed}
	parallel.For(len(xs), func(k int) {
		out.buf.data[xs[k]] = f(x.buf.data[xs[k]], y.buf.data[ys[k]])
	}, kernelCfg)
	return out, nil
}

// Neg returns the elementwise negation.
func (x *Matrix) Neg() *Matrix {
	return x.apply(func(v float32) float32 { return -v })
}

// Abs returns the elementwise absolute value.
func (x *Matrix) Abs() *Matrix {
	return x.apply(func(v float32) float32 {
		return float32(math.Abs(float64(v)))
	})
}

// Add returns the elementwise sum x + y.
func (x *Matrix) Add(y *Matrix) (*Matrix, error) {
	return x.zipWith(y, func(a, b float32) float32 { return a + b })
}

// Sub returns the elementwise difference x - y.
func (x *Matrix) Sub(y *Matrix) (*Matrix, error) {
	return x.zipWith(y, func(a, b float32) float32 { return a - b })
}

// Mul returns the elementwise (Hadamard) product x * y. For the matrix
// product see MatMul.
func (x *Matrix) Mul(y *Matrix) (*Matrix, error) {
	return x.zipWith(y, func(a, b float32) float32 { return a * b })
}

// Div returns the elementwise quotient x / y. After the shape check the
// divisor is scanned: any zero in y aborts with ErrDivisionByZero before
// anything is computed.
func (x *Matrix) Div(y *Matrix) (*Matrix, error) {
	xi, xj := x.Shape()
	yi, yj := y.Shape()
	if xi != yi || xj != yj {
		return nil, fmt.Errorf("shapes (%d, %d) and (%d, %d): %w", xi, xj, yi, yj, ErrShapeMismatch)
	}
	for _, v := range y.buf.data {
		if v == 0 {
			return nil, fmt.Errorf("elementwise division: %w", ErrDivisionByZero)
		}
	}
	return x.zipWith(y, func(a, b float32) float32 { return a / b })
}

// AddScalar returns x with v added to every element.
func (x *Matrix) AddScalar(v float32) *Matrix {
	return x.apply(func(a float32) float32 { return a + v })
}

// SubScalar returns x with v subtracted from every element.
func (x *Matrix) SubScalar(v float32) *Matrix {
	return x.apply(func(a float32) float32 { return a - v })
}

// ScalarSub returns v - x elementwise.
func (x *Matrix) ScalarSub(v float32) *Matrix {
	return x.apply(func(a float32) float32 { return v - a })
}

// MulScalar returns x scaled by v.
func (x *Matrix) MulScalar(v float32) *Matrix {
	return x.apply(func(a float32) float32 { return a * v })
}

// DivScalar returns x divided elementwise by v. A zero divisor fails with
// ErrDivisionByZero.
func (x *Matrix) DivScalar(v float32) (*Matrix, error) {
	if v == 0 {
		return nil, fmt.Errorf("scalar divisor: %w", ErrDivisionByZero)
	}
	return x.apply(func(a float32) float32 { return a / v }), nil
}

// ScalarDiv returns v / x elementwise. Any zero element in x aborts with
// ErrDivisionByZero before anything is computed.
func (x *Matrix) ScalarDiv(v float32) (*Matrix, error) {
	for _, e := range x.buf.data {
		if e == 0 {
			return nil, fmt.Errorf("elementwise division: %w", ErrDivisionByZero)
		}
	}
	return x.apply(func(a float32) float32 { return v / a }), nil
}

// allPairs reports whether pred holds for every lockstep element pair of
// two equal-shaped views.
func (x *Matrix) allPairs(y *Matrix, pred func(a, b float32) bool) (bool, error) {
	xi, xj := x.Shape()
	yi, yj := y.Shape()
	if xi != yi || xj != yj {
		return false, fmt.Errorf("shapes (%d, %d) and (%d, %d): %w", xi, xj, yi, yj, ErrShapeMismatch)
	}
	xs := SelectAll(x.n, x.m, x.transposed)
	ys := SelectAll(y.n, y.m, y.transposed)
	for k := range xs {
		if !pred(x.buf.data[xs[k]], y.buf.data[ys[k]]) {
			return false, nil
		}
	}
	return true, nil
}

// allElems reports whether pred holds for every element of x.
func (x *Matrix) allElems(pred func(a float32) bool) bool {
	for _, v := range x.buf.data {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Equal reports whether x and y have the same logical shape and identical
// elements. Unlike the ordering comparisons, a shape mismatch is not an
// error: differently shaped matrices are simply not equal.
func (x *Matrix) Equal(y *Matrix) bool {
	ok, err := x.allPairs(y, func(a, b float32) bool { return a == b })
	if err != nil {
		return false
	}
	return ok
}

// NotEqual is the negation of Equal.
func (x *Matrix) NotEqual(y *Matrix) bool { return !x.Equal(y) }

// Less reports whether every element of x is strictly less than the
// corresponding element of y. Shape mismatch is an error.
func (x *Matrix) Less(y *Matrix) (bool, error) {
	return x.allPairs(y, func(a, b float32) bool { return a < b })
}

// LessEqual reports whether every element of x is at most the
// corresponding element of y.
func (x *Matrix) LessEqual(y *Matrix) (bool, error) {
	return x.allPairs(y, func(a, b float32) bool { return a <= b })
}

// Greater reports whether every element of x is strictly greater than the
// corresponding element of y.
func (x *Matrix) Greater(y *Matrix) (bool, error) {
	return x.allPairs(y, func(a, b float32) bool { return a > b })
}

// GreaterEqual reports whether every element of x is at least the
// corresponding element of y.
func (x *Matrix) GreaterEqual(y *Matrix) (bool, error) {
	return x.allPairs(y, func(a, b float32) bool { return a >= b })
}

// EqualScalar reports whether every element equals v.
func (x *Matrix) EqualScalar(v float32) bool {
	return x.allElems(func(a float32) bool { return a == v })
}

// LessScalar reports whether every element is strictly less than v.
func (x *Matrix) LessScalar(v float32) bool {
	return x.allElems(func(a float32) bool { return a < v })
}

// LessEqualScalar reports whether every element is at most v.
func (x *Matrix) LessEqualScalar(v float32) bool {
	return x.allElems(func(a float32) bool { return a <= v })
}

// GreaterScalar reports whether every element is strictly greater than v.
func (x *Matrix) GreaterScalar(v float32) bool {
	return x.allElems(func(a float32) bool { return a > v })
}

// GreaterEqualScalar reports whether every element is at least v.
func (x *Matrix) GreaterEqualScalar(v float32) bool {
	return x.allElems(func(a float32) bool { return a >= v })
}

// isClose reports approximate equality of two values. Exact equality wins
// first, so equal infinities of the same sign are close; after that any
// infinite operand is never close, regardless of tolerance. Otherwise the
// symmetric relative-or-absolute tolerance test applies.
func isClose(a, b float32, relTol, absTol float64) bool {
	if a == b {
		return true
	}
	fa, fb := float64(a), float64(b)
	if math.IsInf(fa, 0) || math.IsInf(fb, 0) {
		return false
	}
	diff := math.Abs(fa - fb)
	return diff <= relTol*math.Max(math.Abs(fa), math.Abs(fb)) || diff <= absTol
}

// AllClose reports whether x and y have the same logical shape and every
// element pair is approximately equal. Zero tolerances demand exact
// equality; negative tolerances are rejected. A shape mismatch is an
// error, unlike Equal. DefaultRelTol and DefaultAbsTol are the
// conventional tolerances to pass.
func (x *Matrix) AllClose(y *Matrix, relTol, absTol float64) (bool, error) {
	if relTol < 0 || absTol < 0 {
		return false, fmt.Errorf("tolerances %v, %v: %w", relTol, absTol, ErrInvalidArgument)
	}
	return x.allPairs(y, func(a, b float32) bool { return isClose(a, b, relTol, absTol) })
}

// AllCloseScalar reports whether every element is approximately equal to v.
func (x *Matrix) AllCloseScalar(v float32, relTol, absTol float64) (bool, error) {
	if relTol < 0 || absTol < 0 {
		return false, fmt.Errorf("tolerances %v, %v: %w", relTol, absTol, ErrInvalidArgument)
	}
	return x.allElems(func(a float32) bool { return isClose(a, v, relTol, absTol) }), nil
}

// Norm returns the entrywise p-norm of the matrix, treating it as a flat
// vector. Any non-zero order is accepted, negative included; math.Inf(1)
// yields the max-absolute norm.
func (x *Matrix) Norm(p float64) (float64, error) {
	if p == 0 {
		return 0, fmt.Errorf("norm order %v: %w", p, ErrInvalidArgument)
	}
	if math.IsInf(p, 1) {
		var best float64
		for _, v := range x.buf.data {
			if a := math.Abs(float64(v)); a > best {
				best = a
			}
		}
		return best, nil
	}
	var sum float64
	for _, v := range x.buf.data {
		sum += math.Pow(math.Abs(float64(v)), p)
	}
	return math.Pow(sum, 1/p), nil
}

// Norm2 returns the Frobenius norm.
func (x *Matrix) Norm2() float64 {
	var sum float64
	for _, v := range x.buf.data {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

// MatMul returns the matrix product x · y. The inner extents must agree:
// (n, k) · (k, m) yields (n, m). Every element access goes through the
// views' logical coordinates, so transposed operands multiply correctly
// without materialization.
func (x *Matrix) MatMul(y *Matrix) (*Matrix, error) {
	xi, xk := x.Shape()
	yk, yj := y.Shape()
	if xk != yk {
		return nil, fmt.Errorf("shapes (%d, %d) and (%d, %d): %w", xi, xk, yk, yj, ErrMatMulShapeMismatch)
	}
	out := &Matrix{buf: newBuffer(xi * yj), n: xi, m: yj}
	parallel.ForGrid(xi, yj, func(i, j int) {
		var sum float32
		for k := 0; k < xk; k++ {
			a := x.buf.data[linearize(x.m, x.transposed, i, k)]
			b := y.buf.data[linearize(y.m, y.transposed, k, j)]
			sum += a * b
		}
		out.buf.data[i*yj+j] = sum
	}, kernelCfg)
	return out, nil
}

// Dot returns the sum of lockstep element products of two views with the
// same number of elements. For a (1, k) row against a (k, 1) column this
// is the inner product MatMul would wrap in a 1×1 matrix.
func (x *Matrix) Dot(y *Matrix) (float32, error) {
	if x.Size() != y.Size() {
		return 0, fmt.Errorf("sizes %d and %d: %w", x.Size(), y.Size(), ErrShapeMismatch)
	}
	xs := SelectAll(x.n, x.m, x.transposed)
	ys := SelectAll(y.n, y.m, y.transposed)
	var sum float32
	for k := range xs {
		sum += x.buf.data[xs[k]] * y.buf.data[ys[k]]
	}
	return sum, nil
}
