// Copyright 2026 Planar Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planar-engine/planar/matrix"
)

func TestSlicingRoundTrip(t *testing.T) {
	m, err := matrix.FromSlice(3, 3, []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	require.NoError(t, err)

	center, err := m.Get(matrix.Range(1, 2), matrix.Range(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []float32{5}, center.Data())

	ring, err := m.Get(matrix.Pick(0, 2), matrix.Pick(0, 2))
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 3, 7, 9}, ring.Data())

	require.NoError(t, m.Assign(0, matrix.Index(1)))
	row, err := m.Get(matrix.Index(1))
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0}, row.Data())
}

func TestTransposeAliasing(t *testing.T) {
	m, err := matrix.FromSlice(2, 3, []float32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	tr := m.T()
	si, sj := tr.Shape()
	assert.Equal(t, 3, si)
	assert.Equal(t, 2, sj)

	require.NoError(t, tr.Set(0, 1, 40))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(40), v)
}

func TestArithmeticPipeline(t *testing.T) {
	a, err := matrix.FromSlice(2, 2, []float32{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := matrix.Identity(2)
	require.NoError(t, err)

	prod, err := a.MatMul(b)
	require.NoError(t, err)
	assert.True(t, prod.Equal(a))

	scaled := a.MulScalar(2)
	sum, err := scaled.Sub(a)
	require.NoError(t, err)
	assert.True(t, sum.Equal(a))

	_, err = a.DivScalar(0)
	assert.ErrorIs(t, err, matrix.ErrDivisionByZero)
}

func TestTransformChain(t *testing.T) {
	p, err := matrix.FromSlice(4, 1, []float32{1, 0, 1, 1})
	require.NoError(t, err)

	rot := matrix.RotationY(float32(math.Pi / 2))
	trans := matrix.Translation(10, 0, 0)

	chain, err := trans.MatMul(rot)
	require.NoError(t, err)
	got, err := chain.MatMul(p)
	require.NoError(t, err)

	want, err := matrix.FromSlice(4, 1, []float32{11, 0, -1, 1})
	require.NoError(t, err)
	ok, err := got.AllClose(want, 0, 1e-6)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIteration(t *testing.T) {
	m, err := matrix.FromSlice(2, 2, []float32{1, 2, 3, 4})
	require.NoError(t, err)

	it := m.Iter()
	var sums []float32
	for row, ok := it.Next(); ok; row, ok = it.Next() {
		var s float32
		for _, v := range row.Data() {
			s += v
		}
		sums = append(sums, s)
	}
	assert.Equal(t, []float32{3, 7}, sums)
}

func TestQuaternionRotation(t *testing.T) {
	s, c := math.Sincos(math.Pi / 4)
	q := matrix.Quaternion{R: float32(c), K: float32(s)}

	rot, err := q.Matrix4()
	require.NoError(t, err)
	ok, err := rot.AllClose(matrix.RotationZ(float32(math.Pi/2)), 0, 1e-6)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResolverFunctions(t *testing.T) {
	// The resolver is callable without a Matrix in hand: three numbers
	// describe the view.
	pos, err := matrix.LinearizeScalar(2, 3, true, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	pair, err := matrix.Canonicalize(matrix.Index(1))
	require.NoError(t, err)
	si, sj, err := matrix.SubShape(2, 3, false, pair[0], pair[1])
	require.NoError(t, err)
	assert.Equal(t, 1, si)
	assert.Equal(t, 3, sj)

	linear, err := matrix.LinearizeIndices(2, 3, false, matrix.Range(0, 2), matrix.Index(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, linear)

	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, matrix.SelectAll(2, 3, true))
}
