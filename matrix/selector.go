// Copyright 2026 Planar Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/planar-engine/planar/internal/matrix"
)

// Selector is one axis's index expression: an Index, a Set or a Span.
type Selector = matrix.Selector

// Index selects a single coordinate, collapsing its axis to extent 1.
type Index = matrix.Index

// Set selects an explicit ordered list of coordinates. Elements must be
// integers.
type Set = matrix.Set

// Span selects a clamped, strided coordinate range.
type Span = matrix.Span

// Pick builds a Set from integer coordinates.
func Pick(ixs ...int) Set {
	return matrix.Pick(ixs...)
}

// All spans the entire axis.
func All() Span {
	return matrix.All()
}

// Range spans [start, stop) with step 1. Negative bounds count from the
// end of the axis; out-of-range bounds clamp.
func Range(start, stop int) Span {
	return matrix.Range(start, stop)
}

// Stride spans [start, stop) with an explicit non-zero step. A negative
// step walks the axis backwards.
func Stride(start, stop, step int) Span {
	return matrix.Stride(start, stop, step)
}

// To spans [0, stop).
func To(stop int) Span {
	return matrix.To(stop)
}

// From spans [start, end of axis).
func From(start int) Span {
	return matrix.From(start)
}

// Canonicalize completes a raw selector list to a full two-axis pair,
// filling an implicit All() on axis j when only one selector is given.
func Canonicalize(sel ...Selector) ([2]Selector, error) {
	return matrix.Canonicalize(sel...)
}

// LinearizeScalar maps the logical coordinate (i, j) of an (n, m) view
// with the given transpose flag to its flat row-major buffer position.
func LinearizeScalar(n, m int, transposed bool, i, j int) (int, error) {
	return matrix.LinearizeScalar(n, m, transposed, i, j)
}

// SubShape computes the logical shape of the sub-matrix addressed by a
// two-element selector pair against an (n, m, transposed) view.
func SubShape(n, m int, transposed bool, sel ...Selector) (int, int, error) {
	return matrix.SubShape(n, m, transposed, sel...)
}

// LinearizeIndices resolves a two-element selector pair to the ordered
// flat buffer positions it addresses, in row-major order of the
// sub-shape.
func LinearizeIndices(n, m int, transposed bool, sel ...Selector) ([]int, error) {
	return matrix.LinearizeIndices(n, m, transposed, sel...)
}

// SelectAll returns the flat positions of every element of an (n, m,
// transposed) view in logical row-major order.
func SelectAll(n, m int, transposed bool) []int {
	return matrix.SelectAll(n, m, transposed)
}
