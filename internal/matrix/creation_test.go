package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(t *testing.T, x, y, z float32) *Matrix {
	t.Helper()
	return mustFromSlice(t, 4, 1, []float32{x, y, z, 1})
}

func applyTransform(t *testing.T, m, p *Matrix) []float32 {
	t.Helper()
	out, err := m.MatMul(p)
	require.NoError(t, err)
	return out.Data()
}

func TestIdentity(t *testing.T) {
	eye, err := Identity(3)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, eye.Data())

	_, err = Identity(0)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestTranslation(t *testing.T) {
	tr := Translation(5, -3, 2)
	assert.Equal(t, []float32{2, 1, 7, 1}, applyTransform(t, tr, point(t, -3, 4, 5)))

	// The inverse translation moves the point back.
	inv := Translation(-5, 3, -2)
	assert.Equal(t, []float32{-3, 4, 5, 1}, applyTransform(t, inv, point(t, 2, 1, 7)))
}

func TestScaling(t *testing.T) {
	sc := Scaling(2, 3, 4)
	assert.Equal(t, []float32{-8, 18, 32, 1}, applyTransform(t, sc, point(t, -4, 6, 8)))

	// Reflection is scaling by a negative factor.
	refl := Scaling(-1, 1, 1)
	assert.Equal(t, []float32{-2, 3, 4, 1}, applyTransform(t, refl, point(t, 2, 3, 4)))
}

func TestRotations(t *testing.T) {
	quarter := float32(math.Pi / 2)

	x := RotationX(quarter)
	gotX, err := x.MatMul(point(t, 0, 1, 0))
	require.NoError(t, err)
	assertAllClose(t, gotX, point(t, 0, 0, 1), 0, 1e-6)

	y := RotationY(quarter)
	gotY, err := y.MatMul(point(t, 0, 0, 1))
	require.NoError(t, err)
	assertAllClose(t, gotY, point(t, 1, 0, 0), 0, 1e-6)

	z := RotationZ(quarter)
	gotZ, err := z.MatMul(point(t, 1, 0, 0))
	require.NoError(t, err)
	assertAllClose(t, gotZ, point(t, 0, 1, 0), 0, 1e-6)
}

func TestRotationRoundTrip(t *testing.T) {
	r := RotationX(float32(math.Pi / 3))
	// A rotation composed with its inverse is the identity.
	inv := RotationX(float32(-math.Pi / 3))
	prod, err := r.MatMul(inv)
	require.NoError(t, err)
	assertAllClose(t, prod, eye4(), 0, 1e-6)
}

func TestShearing(t *testing.T) {
	// Coupling x to y: x' = x + s·y.
	sh, err := Shearing(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 3, 4, 1}, applyTransform(t, sh, point(t, 2, 3, 4)))

	sh, err = Shearing(2, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 3, 8, 1}, applyTransform(t, sh, point(t, 2, 3, 4)))
}

func TestShearingErrors(t *testing.T) {
	_, err := Shearing(1, 2, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Shearing(1, 0, 4)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestOrthographic(t *testing.T) {
	proj, err := Orthographic(-2, 2, -1, 1, 1, 10)
	require.NoError(t, err)

	// Corners of the near plane map onto the unit square at z = -1.
	got := applyTransform(t, proj, point(t, 2, 1, -1))
	want := mustFromSlice(t, 4, 1, []float32{1, 1, -1, 1})
	assertAllClose(t, mustFromSlice(t, 4, 1, got), want, 0, 1e-6)

	for _, args := range [][6]float32{
		{1, 1, -1, 1, 1, 10},
		{-1, 1, 1, 1, 1, 10},
		{-1, 1, -1, 1, 5, 5},
	} {
		_, err := Orthographic(args[0], args[1], args[2], args[3], args[4], args[5])
		assert.ErrorIs(t, err, ErrInvalidArgument, "args %v", args)
	}
}

func TestPerspective(t *testing.T) {
	proj, err := Perspective(float32(math.Pi/2), 1, 1, 10)
	require.NoError(t, err)

	// A point on the near plane keeps its x/y after the divide: with a
	// 90° field of view and aspect 1 the focal factor is 1.
	got := applyTransform(t, proj, point(t, 1, 1, -1))
	assert.InDelta(t, 1, got[0], 1e-6)
	assert.InDelta(t, 1, got[1], 1e-6)
	assert.InDelta(t, -1, got[2], 1e-5)
	assert.InDelta(t, 1, got[3], 1e-6)
}

func TestPerspectiveErrors(t *testing.T) {
	_, err := Perspective(1, 0, 1, 10)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Perspective(1, 1, 5, 5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Perspective(1, 1, -1, 10)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Perspective(0, 1, 1, 10)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
