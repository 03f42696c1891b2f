package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/adammck/spider/config"
	"github.com/adammck/spider/debug"
	"github.com/adammck/spider/math3d"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file (default: built in)")
	scale      = flag.Float64("scale", 6, "cells per unit, horizontally")
	fps        = flag.Int("fps", 30, "ticks per second")
	logPath    = flag.String("log", "", "write logs to this file (default: discard)")
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

// mouse is the terminal mouse, projected through the camera. It's only
// updated from the loop goroutine.
type mouse struct {
	cam  *debug.Camera
	held bool
	quit bool
	x, y int
}

func (m *mouse) Held() bool {
	return m.held
}

func (m *mouse) Ray() (math3d.Vector3, math3d.Vector3) {
	return m.cam.Ray(float64(m.x)+0.5, float64(m.y)+0.5)
}

func (m *mouse) Quit() bool {
	return m.quit
}

func main() {
	flag.Parse()

	interval, err := tickInterval(*fps)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}

	// The screen belongs to the viewer, so logs must go somewhere else.
	logrus.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Printf("error opening log: %s\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logrus.SetOutput(f)
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Printf("error loading config: %s\n", err)
			os.Exit(1)
		}
	}

	if err := run(cfg, interval); err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, interval time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}

	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Terminal cells are about twice as tall as they are wide.
	cam := &debug.Camera{Tilt: 90, Scale: *scale, Aspect: 0.5}
	w, h := screen.Size()
	cv := newCanvas(w, h, cam)

	m := &mouse{cam: cam}
	r, err := config.Build(cfg, m)
	if err != nil {
		return err
	}

	if err := r.Spider.Boot(); err != nil {
		return fmt.Errorf("error while booting: %w", err)
	}
	log.Infof("running at %d fps on a %dx%d screen", *fps, w, h)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	st := r.Spider.State
	dt := 1.0 / float64(*fps)
	paused := false

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					m.quit = true
					break
				}

				if ev.Key() != tcell.KeyRune {
					break
				}

				t := r.Legs.Options
				switch ev.Rune() {
				case 'q':
					m.quit = true
				case ' ':
					paused = !paused
				case '1':
					t.Reset = !t.Reset
				case '2':
					t.ReachTarget = !t.ReachTarget
				case '3':
					t.ReachBody = !t.ReachBody
				case '+', '=':
					t.Cycles++
				case '-':
					if t.Cycles > 0 {
						t.Cycles--
					}
				}
				r.Legs.Options = t

			case *tcell.EventMouse:
				m.x, m.y = ev.Position()
				m.held = ev.Buttons()&tcell.Button1 != 0

			case *tcell.EventResize:
				w, h := screen.Size()
				cv.resize(w, h)
				screen.Sync()
			}

		case <-ticker.C:
			if !paused {
				r.Spider.Tick(dt)
			} else {
				// Still let the controller see quit.
				st.Shutdown = st.Shutdown || m.quit
			}

			if st.Shutdown {
				return nil
			}

			cam.Center = st.Body.Position
			draw(screen, cv, r, paused)
		}
	}
}

func draw(screen tcell.Screen, cv *canvas, r *config.Rig, paused bool) {
	cv.clear()
	debug.Gizmos(r.Spider.State, cv)

	screen.Clear()
	for y := 0; y < cv.h; y++ {
		for x := 0; x < cv.w; x++ {
			c, _ := cv.at(x, y)
			if c.r == 0 {
				continue
			}
			screen.SetContent(x, y, c.r, nil, tcell.StyleDefault.Foreground(tcellColor(c.c)))
		}
	}

	o := r.Legs.Options
	status := fmt.Sprintf("%s  cycles=%d a=%v b=%v c=%v", r.Spider.State.Body.Pose, o.Cycles, o.Reset, o.ReachTarget, o.ReachBody)
	if paused {
		status += "  paused"
	}
	for i, ch := range status {
		screen.SetContent(i, 0, ch, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}

	screen.Show()
}

func tcellColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorWhite
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// tickInterval returns the time between ticks at the given rate.
func tickInterval(fps int) (time.Duration, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("-fps must be positive, got %d", fps)
	}
	return time.Second / time.Duration(fps), nil
}
