package main

import (
	"image/color"
	"math"

	"github.com/adammck/spider/debug"
	"github.com/adammck/spider/math3d"
)

type cell struct {
	r rune
	c color.Color
}

// canvas is a grid of character cells which gizmos can be drawn onto, through
// a camera.
type canvas struct {
	w, h  int
	cells []cell
	cam   *debug.Camera
}

func newCanvas(w, h int, cam *debug.Camera) *canvas {
	c := &canvas{cam: cam}
	c.resize(w, h)
	return c
}

func (c *canvas) resize(w, h int) {
	c.w, c.h = w, h
	c.cells = make([]cell, w*h)
	c.cam.Width = float64(w)
	c.cam.Height = float64(h)
}

func (c *canvas) clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

func (c *canvas) at(x, y int) (cell, bool) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return cell{}, false
	}
	return c.cells[y*c.w+x], true
}

func (c *canvas) set(x, y int, r rune, col color.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r, col}
}

// project returns the cell which a point falls in.
func (c *canvas) project(v math3d.Vector3) (int, int) {
	x, y := c.cam.Project(v)
	return int(math.Floor(x)), int(math.Floor(y))
}

func (c *canvas) Line(a, b math3d.Vector3, col color.Color) {
	x0, y0 := c.project(a)
	x1, y1 := c.project(b)

	dx, dy := x1-x0, y1-y0
	n := max(abs(dx), abs(dy))
	if n == 0 {
		c.set(x0, y0, '.', col)
		return
	}

	r := lineRune(dx, dy)
	for i := 0; i <= n; i++ {
		x := x0 + int(math.Round(float64(dx*i)/float64(n)))
		y := y0 + int(math.Round(float64(dy*i)/float64(n)))
		c.set(x, y, r, col)
	}
}

func (c *canvas) Point(p math3d.Vector3, col color.Color) {
	x, y := c.project(p)
	c.set(x, y, 'o', col)
}

// lineRune returns the character which looks most like a line heading in the
// given direction. Screen Y grows downwards.
func lineRune(dx, dy int) rune {
	switch {
	case abs(dy)*2 < abs(dx):
		return '-'
	case abs(dx)*2 < abs(dy):
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
