// Copyright 2026 Planar Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix is the public API for Planar's dense 2-D float32
// matrices.
//
// Matrices are views over shared, reference-counted buffers. Transposing
// is O(1): it flips a flag on a new view and never moves an element, so a
// matrix and its transpose alias the same storage. Sub-matrices are
// addressed with selectors:
//   - Index: a single coordinate, collapsing the axis
//   - Set: an explicit list of coordinates, in any order
//   - Span: a clamped, strided range (All, Range, To, From, Stride)
//
// Example:
//
//	m, _ := matrix.FromSlice(2, 3, []float32{1, 2, 3, 4, 5, 6})
//	col, _ := m.Get(matrix.All(), matrix.Index(1)) // [[2] [5]]
//	t := m.T()                                     // 3×2 view, same storage
package matrix

import (
	"github.com/planar-engine/planar/internal/matrix"
)

// Matrix is a dense 2-D float32 matrix view.
type Matrix = matrix.Matrix

// Iterator walks a matrix row by row; see Matrix.Iter.
type Iterator = matrix.Iterator

// Quaternion is a rotation quaternion convertible to a 4×4 matrix.
type Quaternion = matrix.Quaternion

// Default tolerances used by AllClose when both are left zero.
const (
	DefaultRelTol = matrix.DefaultRelTol
	DefaultAbsTol = matrix.DefaultAbsTol
)

// New returns an (n, m) matrix of zeros.
func New(n, m int) (*Matrix, error) {
	return matrix.New(n, m)
}

// Full returns an (n, m) matrix with every element set to v.
func Full(n, m int, v float32) (*Matrix, error) {
	return matrix.Full(n, m, v)
}

// FromSlice returns an (n, m) matrix initialized from data in row-major
// order. The slice is copied.
func FromSlice(n, m int, data []float32) (*Matrix, error) {
	return matrix.FromSlice(n, m, data)
}

// NewFrom returns an (n, m) matrix from a dynamically typed numeric
// sequence: []float32, []float64, []int, or []any of numeric values.
func NewFrom(n, m int, data any) (*Matrix, error) {
	return matrix.NewFrom(n, m, data)
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	return matrix.Identity(n)
}

// Translation returns the 4×4 homogeneous translation by (x, y, z).
func Translation(x, y, z float32) *Matrix {
	return matrix.Translation(x, y, z)
}

// Scaling returns the 4×4 homogeneous scaling by (x, y, z).
func Scaling(x, y, z float32) *Matrix {
	return matrix.Scaling(x, y, z)
}

// RotationX returns the 4×4 rotation by r radians about the x axis.
func RotationX(r float32) *Matrix {
	return matrix.RotationX(r)
}

// RotationY returns the 4×4 rotation by r radians about the y axis.
func RotationY(r float32) *Matrix {
	return matrix.RotationY(r)
}

// RotationZ returns the 4×4 rotation by r radians about the z axis.
func RotationZ(r float32) *Matrix {
	return matrix.RotationZ(r)
}

// Shearing returns the 4×4 identity with off-diagonal cell (a, b) set to
// s, coupling axis a to axis b.
func Shearing(s float32, a, b int) (*Matrix, error) {
	return matrix.Shearing(s, a, b)
}

// Orthographic returns the 4×4 orthographic projection for the clipping
// box [left, right] × [bottom, top] × [near, far].
func Orthographic(left, right, bottom, top, near, far float32) (*Matrix, error) {
	return matrix.Orthographic(left, right, bottom, top, near, far)
}

// Perspective returns the 4×4 perspective projection for a vertical field
// of view of fovy radians and the given aspect ratio and depth range.
func Perspective(fovy, aspect, near, far float32) (*Matrix, error) {
	return matrix.Perspective(fovy, aspect, near, far)
}
