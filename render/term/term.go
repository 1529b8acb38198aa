// Package term draws the scene as coloured characters on a terminal.
package term

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/orrery/camera"
	"github.com/plus3/orrery/render"
	"github.com/plus3/orrery/scene"
)

// Terminal cells are roughly twice as tall as they are wide, so the camera
// works in half-row pixels: one cell is 1 pixel wide and 2 pixels high.
const cellAspect = 2

// Renderer draws onto a tcell screen, leaving the bottom row for a status
// line.
type Renderer struct {
	Screen   tcell.Screen
	Lighting render.Lighting

	frames uint64
	drawn  int
}

// New returns a renderer for screen.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		Screen:   screen,
		Lighting: render.DefaultLighting(),
	}
}

// Viewport returns the camera viewport, in pixels, matching a terminal of
// cols x rows cells.
func Viewport(cols, rows int) (width, height int) {
	return cols, max(rows-1, 1) * cellAspect
}

// Frames returns the number of completed Render calls.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Drawn returns how many bodies the last Render painted.
func (r *Renderer) Drawn() int {
	return r.drawn
}

// Render paints g as seen by cam and shows the result.
func (r *Renderer) Render(g *scene.Graph, cam *camera.Camera) {
	s := r.Screen
	cols, rows := s.Size()
	s.Clear()

	sprites := render.Collect(g, cam, r.Lighting)
	for i := range sprites {
		r.drawBody(&sprites[i], cols, rows-1)
	}
	r.drawn = len(sprites)
	r.frames++

	r.drawStatus(cols, rows-1)
	s.Show()
}

func (r *Renderer) drawBody(sp *render.Sprite, cols, rows int) {
	c := render.RGBA(sp.Node.Material.Color, sp.Light)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	glyph := Glyph(sp.Node)

	cx := sp.X
	cy := sp.Y / cellAspect
	rx := sp.Radius
	ry := sp.Radius / cellAspect

	x0 := int(math.Floor(cx - rx))
	x1 := int(math.Ceil(cx + rx))
	y0 := int(math.Floor(cy - ry))
	y1 := int(math.Ceil(cy + ry))

	plotted := false
	for y := max(y0, 0); y <= min(y1, rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, cols-1); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy > 1 {
				continue
			}
			r.Screen.SetContent(x, y, glyph, nil, style)
			plotted = true
		}
	}

	// Bodies smaller than a cell still get one.
	if !plotted {
		x, y := int(cx), int(cy)
		if x >= 0 && x < cols && y >= 0 && y < rows {
			r.Screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawStatus(cols, row int) {
	line := fmt.Sprintf("orrery  frame %d  bodies %d  q to quit", r.frames, r.drawn)
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, ch := range line {
		if x >= cols {
			break
		}
		r.Screen.SetContent(x, row, ch, nil, style)
		x++
	}
}

// Glyph returns the character used for a body: '@' for the star, the
// upper-case initial for a planet and 'o' for a moon.
func Glyph(n *scene.Node) rune {
	switch n.Kind {
	case scene.KindStar:
		return '@'
	case scene.KindMoon:
		return 'o'
	case scene.KindPlanet:
		if ch, _ := utf8.DecodeRuneInString(n.Name); ch != utf8.RuneError {
			return unicode.ToUpper(ch)
		}
		return '*'
	}
	return ' '
}
