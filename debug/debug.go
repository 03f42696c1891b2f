package debug

import (
	"image/color"

	"github.com/adammck/spider"
	ik "github.com/adammck/spider/legs"
	"github.com/adammck/spider/math3d"
)

var (
	TargetColor  = color.RGBA{0x00, 0xc0, 0xff, 0xff}
	ProbeColor   = color.RGBA{0x60, 0x60, 0x60, 0xff}
	SettledColor = color.RGBA{0x00, 0xc0, 0x00, 0xff}
	DriftColor   = color.RGBA{0xff, 0x20, 0x20, 0xff}
	ReachColor   = color.RGBA{0xff, 0xc0, 0x00, 0xff}
	LegColor     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	BodyColor    = color.RGBA{0xc0, 0x80, 0xff, 0xff}
)

// Drawer is anything which can draw lines and points in the WORLD space.
type Drawer interface {
	Line(a, b math3d.Vector3, c color.Color)
	Point(p math3d.Vector3, c color.Color)
}

// Gizmos draws everything useful for seeing what the spider is thinking.
func Gizmos(s *spider.State, d Drawer) {
	d.Point(s.Target, TargetColor)

	// The body, and which way it's facing.
	b := s.Body.Position
	d.Point(b, BodyColor)
	d.Line(b, s.Body.Apply(math3d.Forward), BodyColor)

	for _, f := range s.Feet {
		if f.Leg == nil {
			continue
		}

		origin, dir, length := s.Probe(f)
		d.Line(origin, origin.Add(dir.Unit().MultiplyByScalar(length)), ProbeColor)

		// Feet which have drifted far enough to be worth a step are red.
		c := SettledColor
		if f.Drift() > s.MinStepDistance {
			c = DriftColor
		}
		d.Line(f.Position, f.Target, c)
		d.Point(f.Target, c)

		hip := s.Hip(f)
		d.Line(hip, ik.Clamp(hip, f.Position, f.Leg.Length()), ReachColor)

		j := f.Leg.Joints()
		for i := 1; i < len(j); i++ {
			d.Line(j[i-1], j[i], LegColor)
		}
	}
}
