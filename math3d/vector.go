package math3d

import (
	"fmt"
	"math"
)

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Vectors shorter than this are treated as having no direction.
const epsilon = 1e-9

var (
	ZeroVector3 = Vector3{}

	Up      = Vector3{X: 0, Y: 1, Z: 0}
	Down    = Vector3{X: 0, Y: -1, Z: 0}
	Forward = Vector3{X: 0, Y: 0, Z: 1}
	Right   = Vector3{X: 1, Y: 0, Z: 0}
)

// MakeVector3 returns a pointer to a new Vector3.
func MakeVector3(x float64, y float64, z float64) *Vector3 {
	return &Vector3{x, y, z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("&Vec3{x=%0.2f y=%0.2f z=%0.2f}", v.X, v.Y, v.Z)
}

// Zero returns true if the vector is at 0,0,0.
func (v Vector3) Zero() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

// Add adds two vectors, and returns the result.
func (v Vector3) Add(vv Vector3) Vector3 {
	return Vector3{
		(v.X + vv.X),
		(v.Y + vv.Y),
		(v.Z + vv.Z),
	}
}

// Subtract returns the vector from vv to v.
func (v Vector3) Subtract(vv Vector3) Vector3 {
	return Vector3{
		(v.X - vv.X),
		(v.Y - vv.Y),
		(v.Z - vv.Z),
	}
}

func (v Vector3) MultiplyByScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

func (v Vector3) Dot(vv Vector3) float64 {
	return (v.X * vv.X) + (v.Y * vv.Y) + (v.Z * vv.Z)
}

func (v Vector3) Cross(vv Vector3) Vector3 {
	return Vector3{
		(v.Y * vv.Z) - (v.Z * vv.Y),
		(v.Z * vv.X) - (v.X * vv.Z),
		(v.X * vv.Y) - (v.Y * vv.X),
	}
}

func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns the vector scaled to a length of one. The zero vector (and
// anything short enough to be indistinguishable from it) is returned as zero.
func (v Vector3) Unit() Vector3 {
	u, ok := v.Normalize()
	if !ok {
		return ZeroVector3
	}
	return u
}

// Normalize is like Unit, but also reports whether the vector had a usable
// direction. Callers which can't tolerate a zero direction should fall back to
// something else when ok is false.
func (v Vector3) Normalize() (Vector3, bool) {
	m := v.Magnitude()
	if m < epsilon || math.IsNaN(m) || math.IsInf(m, 0) {
		return ZeroVector3, false
	}
	return v.MultiplyByScalar(1 / m), true
}

// Distance calculates and returns the distance between this vector and another,
// as a float64.
func (v Vector3) Distance(vv Vector3) float64 {
	dx := v.X - vv.X
	dy := v.Y - vv.Y
	dz := v.Z - vv.Z
	return math.Sqrt((dx * dx) + (dy * dy) + (dz * dz))
}

// Lerp returns the point t of the way from v to vv. t is clamped to [0, 1].
func (v Vector3) Lerp(vv Vector3, t float64) Vector3 {
	t = math.Max(0, math.Min(t, 1))
	return v.Add(vv.Subtract(v).MultiplyByScalar(t))
}

// Horizontal returns a copy of the vector with the Y component zeroed.
func (v Vector3) Horizontal() Vector3 {
	return Vector3{v.X, 0, v.Z}
}

// IsNaN returns true if any component is NaN.
func (v Vector3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}
