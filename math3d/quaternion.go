package math3d

import (
	"fmt"
	"math"

	"github.com/adammck/spider/utils"
)

// Quaternion is a unit rotation. The zero value is not a valid rotation; use
// IdentityOrientation.
type Quaternion struct {
	W float64
	X float64
	Y float64
	Z float64
}

// The minimum |forward x up| for the two to be considered non-parallel.
const parallelEpsilon = 1e-6

var (
	IdentityOrientation = Quaternion{W: 1}

	// Substituted (in order) when the requested up vector can't be used.
	fallbackUps = []Vector3{Up, Forward, Right}
)

func (q Quaternion) String() string {
	return fmt.Sprintf("&Quat{w=%+.3f x=%+.3f y=%+.3f z=%+.3f}", q.W, q.X, q.Y, q.Z)
}

// Yaw returns a rotation of the given number of degrees around the Y axis. A
// positive heading turns the forward (+Z) axis towards +X.
func Yaw(degrees float64) Quaternion {
	h := utils.Rad(degrees) / 2
	return Quaternion{W: math.Cos(h), Y: math.Sin(h)}
}

// LookRotation returns the rotation which points the forward axis along fwd,
// with the up axis as close to up as possible. If fwd has no direction, ok is
// false and the returned rotation must not be used. If up is zero or parallel
// to fwd, a world axis which isn't is used instead.
func LookRotation(fwd, up Vector3) (q Quaternion, ok bool) {
	f, ok := fwd.Normalize()
	if !ok {
		return IdentityOrientation, false
	}

	r, ok := rightOf(up, f)
	for i := 0; !ok && i < len(fallbackUps); i++ {
		r, ok = rightOf(fallbackUps[i], f)
	}

	u := f.Cross(r)
	return fromBasis(r, u, f), true
}

// rightOf returns the unit right axis for the given up and (unit) forward, or
// false if they are too close to parallel to define one.
func rightOf(up, f Vector3) (Vector3, bool) {
	c := up.Cross(f)
	if c.Magnitude() <= parallelEpsilon*up.Magnitude() {
		return ZeroVector3, false
	}
	return c.Normalize()
}

// fromBasis converts an orthonormal right-handed basis (the images of the X, Y
// and Z axes) into a quaternion.
func fromBasis(r, u, f Vector3) Quaternion {
	m00, m01, m02 := r.X, u.X, f.X
	m10, m11, m12 := r.Y, u.Y, f.Y
	m20, m21, m22 := r.Z, u.Z, f.Z

	var q Quaternion
	if tr := m00 + m11 + m22; tr > 0 {
		s := 0.5 / math.Sqrt(tr+1)
		q = Quaternion{W: 0.25 / s, X: (m21 - m12) * s, Y: (m02 - m20) * s, Z: (m10 - m01) * s}

	} else if m00 > m11 && m00 > m22 {
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = Quaternion{W: (m21 - m12) / s, X: 0.25 * s, Y: (m01 + m10) / s, Z: (m02 + m20) / s}

	} else if m11 > m22 {
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = Quaternion{W: (m02 - m20) / s, X: (m01 + m10) / s, Y: 0.25 * s, Z: (m12 + m21) / s}

	} else {
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = Quaternion{W: (m10 - m01) / s, X: (m02 + m20) / s, Y: (m12 + m21) / s, Z: 0.25 * s}
	}

	return q.normalized()
}

func (q Quaternion) normalized() Quaternion {
	m := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if m < epsilon {
		return IdentityOrientation
	}
	return Quaternion{q.W / m, q.X / m, q.Y / m, q.Z / m}
}

// Multiply returns the rotation which applies qq first, then q.
func (q Quaternion) Multiply(qq Quaternion) Quaternion {
	return Quaternion{
		W: q.W*qq.W - q.X*qq.X - q.Y*qq.Y - q.Z*qq.Z,
		X: q.W*qq.X + q.X*qq.W + q.Y*qq.Z - q.Z*qq.Y,
		Y: q.W*qq.Y - q.X*qq.Z + q.Y*qq.W + q.Z*qq.X,
		Z: q.W*qq.Z + q.X*qq.Y - q.Y*qq.X + q.Z*qq.W,
	}
}

// Rotate applies the rotation to v.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	qv := Vector3{q.X, q.Y, q.Z}
	t := qv.Cross(v).MultiplyByScalar(2)
	return v.Add(t.MultiplyByScalar(q.W)).Add(qv.Cross(t))
}

func (q Quaternion) Forward() Vector3 {
	return q.Rotate(Forward)
}

func (q Quaternion) Up() Vector3 {
	return q.Rotate(Up)
}

func (q Quaternion) Right() Vector3 {
	return q.Rotate(Right)
}
