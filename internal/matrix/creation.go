package matrix

import (
	"fmt"
	"math"
)

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	mat, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		mat.buf.data[i*n+i] = 1
	}
	return mat, nil
}

// eye4 builds the 4×4 identity, for the transform constructors below.
func eye4() *Matrix {
	mat, err := Identity(4)
	if err != nil {
		panic(err) // a fixed positive size cannot fail
	}
	return mat
}

// Translation returns the 4×4 homogeneous translation by (x, y, z).
func Translation(x, y, z float32) *Matrix {
	mat := eye4()
	mat.buf.data[3] = x
	mat.buf.data[7] = y
	mat.buf.data[11] = z
	return mat
}

// Scaling returns the 4×4 homogeneous scaling by (x, y, z).
func Scaling(x, y, z float32) *Matrix {
	mat := eye4()
	mat.buf.data[0] = x
	mat.buf.data[5] = y
	mat.buf.data[10] = z
	return mat
}

// RotationX returns the 4×4 rotation by r radians about the x axis.
func RotationX(r float32) *Matrix {
	sin, cos := sincos(r)
	mat := eye4()
	mat.buf.data[5] = cos
	mat.buf.data[6] = -sin
	mat.buf.data[9] = sin
	mat.buf.data[10] = cos
	return mat
}

// RotationY returns the 4×4 rotation by r radians about the y axis.
func RotationY(r float32) *Matrix {
	sin, cos := sincos(r)
	mat := eye4()
	mat.buf.data[0] = cos
	mat.buf.data[2] = sin
	mat.buf.data[8] = -sin
	mat.buf.data[10] = cos
	return mat
}

// RotationZ returns the 4×4 rotation by r radians about the z axis.
func RotationZ(r float32) *Matrix {
	sin, cos := sincos(r)
	mat := eye4()
	mat.buf.data[0] = cos
	mat.buf.data[1] = -sin
	mat.buf.data[4] = sin
	mat.buf.data[5] = cos
	return mat
}

func sincos(r float32) (float32, float32) {
	s, c := math.Sincos(float64(r))
	return float32(s), float32(c)
}

// Shearing returns the 4×4 identity with the single off-diagonal element
// (a, b) set to s, coupling axis a to axis b. The coordinates must name
// an off-diagonal cell of the 4×4.
func Shearing(s float32, a, b int) (*Matrix, error) {
	if a == b {
		return nil, fmt.Errorf("shear cell (%d, %d) lies on the diagonal: %w", a, b, ErrInvalidArgument)
	}
	mat := eye4()
	if err := mat.Set(a, b, s); err != nil {
		return nil, err
	}
	return mat, nil
}

// Orthographic returns the 4×4 orthographic projection for the clipping
// box [left, right] × [bottom, top] × [near, far]. Degenerate boxes with
// a collapsed axis are rejected.
func Orthographic(left, right, bottom, top, near, far float32) (*Matrix, error) {
	if left == right || bottom == top || near == far {
		return nil, fmt.Errorf("collapsed clipping box: %w", ErrInvalidArgument)
	}
	mat := eye4()
	mat.buf.data[0] = 2 / (right - left)
	mat.buf.data[3] = -(right + left) / (right - left)
	mat.buf.data[5] = 2 / (top - bottom)
	mat.buf.data[7] = -(top + bottom) / (top - bottom)
	mat.buf.data[10] = -2 / (far - near)
	mat.buf.data[11] = -(far + near) / (far - near)
	return mat, nil
}

// Perspective returns the 4×4 perspective projection for a vertical field
// of view of fovy radians. aspect is width over height; near and far bound
// the frustum and must be distinct and positive.
func Perspective(fovy, aspect, near, far float32) (*Matrix, error) {
	if aspect == 0 || near == far || near <= 0 || far <= 0 {
		return nil, fmt.Errorf("degenerate frustum: %w", ErrInvalidArgument)
	}
	tanHalf := float32(math.Tan(float64(fovy) / 2))
	if tanHalf == 0 {
		return nil, fmt.Errorf("zero field of view: %w", ErrInvalidArgument)
	}
	mat, err := New(4, 4)
	if err != nil {
		panic(err) // a fixed positive size cannot fail
	}
	mat.buf.data[0] = 1 / (aspect * tanHalf)
	mat.buf.data[5] = 1 / tanHalf
	mat.buf.data[10] = (far + near) / (near - far)
	mat.buf.data[11] = 2 * far * near / (near - far)
	mat.buf.data[14] = -1
	return mat, nil
}
