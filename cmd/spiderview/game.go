package main

import (
	"fmt"
	"image/color"

	"github.com/adammck/spider/components/controller"
	"github.com/adammck/spider/config"
	"github.com/adammck/spider/debug"
	"github.com/adammck/spider/math3d"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	gridColor       = color.RGBA{0x30, 0x30, 0x40, 0xff}
)

// The distance between grid points drawn on the ground, and how many of them
// to draw in each direction from the body.
const (
	gridStep  = 0.5
	gridCount = 16
)

// pointer is the mouse, projected through the camera.
type pointer struct {
	cam *debug.Camera
}

func (p *pointer) Held() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (p *pointer) Ray() (math3d.Vector3, math3d.Vector3) {
	x, y := ebiten.CursorPosition()
	return p.cam.Ray(float64(x), float64(y))
}

func (p *pointer) Quit() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape)
}

// toggle is a key which flips something once per press.
type toggle struct {
	key   ebiten.Key
	latch controller.Latch
}

func (t *toggle) pressed() bool {
	return t.latch.Run(ebiten.IsKeyPressed(t.key))
}

type game struct {
	rig   *config.Rig
	store *config.Store
	cam   *debug.Camera
	rec   *debug.Recorder

	paused bool

	stepA, stepB, stepC  toggle
	more, fewer          toggle
	pause, save, restore toggle
}

func newGame(cfg *config.Config, store *config.Store) (*game, error) {
	cam := &debug.Camera{
		Tilt:   *tilt,
		Scale:  *scale,
		Width:  screenWidth,
		Height: screenHeight,
	}

	r, err := config.Build(cfg, &pointer{cam: cam})
	if err != nil {
		return nil, err
	}

	if err := r.Apply(store.Tuning()); err != nil {
		log.Warnf("ignoring saved tuning: %s", err)
		store.Reset()
	}

	if err := r.Spider.Boot(); err != nil {
		return nil, fmt.Errorf("error while booting: %w", err)
	}

	return &game{
		rig:     r,
		store:   store,
		cam:     cam,
		rec:     &debug.Recorder{},
		stepA:   toggle{key: ebiten.Key1},
		stepB:   toggle{key: ebiten.Key2},
		stepC:   toggle{key: ebiten.Key3},
		more:    toggle{key: ebiten.KeyEqual},
		fewer:   toggle{key: ebiten.KeyMinus},
		pause:   toggle{key: ebiten.KeySpace},
		save:    toggle{key: ebiten.KeyS},
		restore: toggle{key: ebiten.KeyR},
	}, nil
}

func (g *game) Update() error {
	g.keys()

	st := g.rig.Spider.State
	if !g.paused {
		g.rig.Spider.Tick(1 / float64(ebiten.TPS()))
	}

	if st.Shutdown {
		return ebiten.Termination
	}

	g.cam.Center = st.Body.Position
	return nil
}

// keys handles the keyboard, which tunes the spider while it's running.
func (g *game) keys() {
	t := g.store.Tuning()
	changed := false

	if g.stepA.pressed() {
		t.Solver.StepA = !t.Solver.StepA
		changed = true
	}
	if g.stepB.pressed() {
		t.Solver.StepB = !t.Solver.StepB
		changed = true
	}
	if g.stepC.pressed() {
		t.Solver.StepC = !t.Solver.StepC
		changed = true
	}
	if g.more.pressed() {
		t.Solver.Cycles++
		changed = true
	}
	if g.fewer.pressed() && t.Solver.Cycles > 0 {
		t.Solver.Cycles--
		changed = true
	}
	if g.restore.pressed() {
		g.store.Reset()
		t = g.store.Tuning()
		changed = true
	}

	if changed {
		if err := g.rig.Apply(t); err != nil {
			log.Warnf("bad tuning: %s", err)
		} else {
			g.store.Set(t)
		}
	}

	if g.pause.pressed() {
		g.paused = !g.paused
	}

	if g.save.pressed() {
		if err := g.store.Save(); err != nil {
			log.Warnf("%s", err)
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	d := &screenDrawer{screen: screen, cam: g.cam}

	g.drawGround(d)

	g.rec.Reset()
	debug.Gizmos(g.rig.Spider.State, g.rec)
	g.rec.Replay(d)

	t := g.store.Tuning()
	st := g.rig.Spider.State
	s := fmt.Sprintf("body %s\ncycles=%d (+/-) a=%v b=%v c=%v (1/2/3)\nclick to walk, space to pause, s to save, r to reset, esc to quit",
		st.Body.Pose, t.Solver.Cycles, t.Solver.StepA, t.Solver.StepB, t.Solver.StepC)
	if i, ok := g.rig.Gait.Stepping(); ok {
		s += fmt.Sprintf("\nstepping %s (%.0f%%)", st.Gates[i].Name, g.rig.Gait.Progress(i)*100)
	}
	if g.paused {
		s += "\npaused"
	}
	ebitenutil.DebugPrintAt(screen, s, 8, 8)
}

// drawGround drops a grid of points onto the walkable ground around the body.
func (g *game) drawGround(d *screenDrawer) {
	c := g.rig.Spider.State.Body.Position
	x0 := float64(int(c.X/gridStep)) * gridStep
	z0 := float64(int(c.Z/gridStep)) * gridStep

	for i := -gridCount; i <= gridCount; i++ {
		for j := -gridCount; j <= gridCount; j++ {
			p := math3d.Vector3{X: x0 + float64(i)*gridStep, Y: c.Y + 100, Z: z0 + float64(j)*gridStep}
			if h, ok := g.rig.Surface.Raycast(p, math3d.Down, 1000, g.rig.Mask); ok {
				d.Point(h.Point, gridColor)
			}
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// screenDrawer draws lines and points onto an image, through a camera.
type screenDrawer struct {
	screen *ebiten.Image
	cam    *debug.Camera
}

func (d *screenDrawer) Line(a, b math3d.Vector3, c color.Color) {
	x0, y0 := d.cam.Project(a)
	x1, y1 := d.cam.Project(b)
	vector.StrokeLine(d.screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, c, true)
}

func (d *screenDrawer) Point(p math3d.Vector3, c color.Color) {
	x, y := d.cam.Project(p)
	vector.DrawFilledRect(d.screen, float32(x)-2, float32(y)-2, 4, 4, c, true)
}
