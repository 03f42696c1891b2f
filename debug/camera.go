package debug

import (
	"math"

	"github.com/adammck/spider/math3d"
	"github.com/adammck/spider/utils"
)

// How far behind the screen rays from the camera start.
const rayBack = 500.0

// Camera is an orthographic projection of the WORLD onto a screen, looking
// towards +Z and tilted down from it by Tilt degrees. A tilt of 90 is straight
// down, which is a map.
type Camera struct {
	Center math3d.Vector3
	Tilt   float64

	// Pixels (or cells) per unit.
	Scale float64

	Width, Height float64

	// Multiplies vertical distances on the screen, for screens whose pixels
	// aren't square. Zero is treated as one.
	Aspect float64
}

// basis returns the WORLD directions of screen right, screen up, and into the
// screen.
func (c *Camera) basis() (r, u, f math3d.Vector3) {
	t := utils.Rad(c.Tilt)
	r = math3d.Right
	u = math3d.Vector3{Y: math.Cos(t), Z: math.Sin(t)}
	f = math3d.Vector3{Y: -math.Sin(t), Z: math.Cos(t)}
	return
}

func (c *Camera) aspect() float64 {
	if c.Aspect == 0 {
		return 1
	}
	return c.Aspect
}

// Project returns the screen position of a point. Screen Y grows downwards.
func (c *Camera) Project(v math3d.Vector3) (x, y float64) {
	r, u, _ := c.basis()
	d := v.Subtract(c.Center)
	x = c.Width/2 + d.Dot(r)*c.Scale
	y = c.Height/2 - d.Dot(u)*c.Scale*c.aspect()
	return
}

// Ray returns the line through the WORLD which is drawn at the given screen
// position, pointing into the screen.
func (c *Camera) Ray(x, y float64) (origin, dir math3d.Vector3) {
	r, u, f := c.basis()
	sx := (x - c.Width/2) / c.Scale
	sy := (c.Height/2 - y) / (c.Scale * c.aspect())

	p := c.Center.Add(r.MultiplyByScalar(sx)).Add(u.MultiplyByScalar(sy))
	return p.Subtract(f.MultiplyByScalar(rayBack)), f
}
