package matrix

import (
	"fmt"
	"math"
)

// Quaternion is a rotation quaternion r + i·𝑖 + j·𝑗 + k·𝑘. Only unit
// quaternions describe pure rotations; Normalize produces one.
type Quaternion struct {
	R, I, J, K float32
}

// Norm returns the Euclidean length of the quaternion.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(float64(q.R)*float64(q.R) +
		float64(q.I)*float64(q.I) +
		float64(q.J)*float64(q.J) +
		float64(q.K)*float64(q.K))
}

// Normalize returns the unit quaternion with q's direction. The zero
// quaternion has no direction and is rejected.
func (q Quaternion) Normalize() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}, fmt.Errorf("normalizing zero quaternion: %w", ErrDivisionByZero)
	}
	inv := float32(1 / n)
	return Quaternion{R: q.R * inv, I: q.I * inv, J: q.J * inv, K: q.K * inv}, nil
}

// Conjugate returns the quaternion with the vector part negated. For unit
// quaternions this is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{R: q.R, I: -q.I, J: -q.J, K: -q.K}
}

// Mul returns the Hamilton product q · p, the rotation p followed by q.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{
		R: q.R*p.R - q.I*p.I - q.J*p.J - q.K*p.K,
		I: q.R*p.I + q.I*p.R + q.J*p.K - q.K*p.J,
		J: q.R*p.J - q.I*p.K + q.J*p.R + q.K*p.I,
		K: q.R*p.K + q.I*p.J - q.J*p.I + q.K*p.R,
	}
}

// Matrix4 returns the 4×4 homogeneous rotation matrix of the quaternion.
// q is normalized first, so any non-zero quaternion yields a proper
// rotation; the zero quaternion is rejected.
func (q Quaternion) Matrix4() (*Matrix, error) {
	u, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	r, i, j, k := u.R, u.I, u.J, u.K
	mat := eye4()
	mat.buf.data[0] = 1 - 2*(j*j+k*k)
	mat.buf.data[1] = 2 * (i*j - k*r)
	mat.buf.data[2] = 2 * (i*k + j*r)
	mat.buf.data[4] = 2 * (i*j + k*r)
	mat.buf.data[5] = 1 - 2*(i*i+k*k)
	mat.buf.data[6] = 2 * (j*k - i*r)
	mat.buf.data[8] = 2 * (i*k - j*r)
	mat.buf.data[9] = 2 * (j*k + i*r)
	mat.buf.data[10] = 1 - 2*(i*i+j*j)
	return mat, nil
}
