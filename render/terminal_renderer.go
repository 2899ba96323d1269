package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
	"github.com/lixenwraith/planet-offline/vmath"
)

const (
	// cellAspect is the height of a terminal cell over its width
	cellAspect = 2

	// boldTextSize is the smallest text size drawn in bold
	boldTextSize = 25

	tetherDot = '·'
)

// Arrow glyphs clockwise from straight up, one per 45 degrees of heading
var arrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// TerminalRenderer draws the 800x800 world onto a tcell screen
// The playfield keeps its square shape in cells and is centered in the terminal
type TerminalRenderer struct {
	screen tcell.Screen
	buf    *RenderBuffer

	width, height    int // Terminal size in cells
	originX, originY int // Top-left cell of the playfield
	cols, rows       int // Playfield size in cells
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		buf:    NewRenderBuffer(0, 0),
	}
	r.Resize()
	return r
}

// Resize refits the playfield to the current screen size
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.width, r.height = w, h
	r.rows = min(h, w/cellAspect)
	r.cols = r.rows * cellAspect
	r.originX = (w - r.cols) / 2
	r.originY = (h - r.rows) / 2
	r.buf.Resize(r.cols, r.rows)
}

// Playfield returns the playfield size in cells
func (r *TerminalRenderer) Playfield() (cols, rows int) {
	return r.cols, r.rows
}

// cell converts a world position to a playfield cell
func (r *TerminalRenderer) cell(x, y float64) (int, int) {
	cx := int(math.Floor(x * float64(r.cols) / constants.ScreenWidth))
	cy := int(math.Floor(y * float64(r.rows) / constants.ScreenHeight))
	return cx, cy
}

// span converts a world rectangle to a half-open cell range, at least one cell wide and tall
func (r *TerminalRenderer) span(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0, y0 = r.cell(x, y)
	x1, y1 = r.cell(x+w, y+h)
	return x0, y0, max(x1, x0+1), max(y1, y0+1)
}

// ===== engine.Renderer =====

func (r *TerminalRenderer) Clear() {
	r.buf.Clear()
}

// DrawSprite centers the sprite's glyph block on the position
func (r *TerminalRenderer) DrawSprite(s *asset.Sprite, x, y, heading float64) {
	if s == nil {
		return
	}
	cx, cy := r.cell(x, y)
	if s.Rotates {
		r.buf.SetFgOnly(cx, cy, Arrow(heading), s.Color, true)
		return
	}

	top := cy - len(s.Glyphs)/2
	for row, line := range s.Glyphs {
		glyphs := []rune(line)
		left := cx - len(glyphs)/2
		for col, g := range glyphs {
			if g != ' ' {
				r.buf.SetFgOnly(left+col, top+row, g, s.Color, false)
			}
		}
	}
}

func (r *TerminalRenderer) DrawText(text string, x, y float64, style engine.TextStyle) {
	cx, cy := r.cell(x, y)
	bold := style.Size >= boldTextSize
	for i, g := range []rune(text) {
		r.buf.SetFgOnly(cx+i, cy, g, style.Color, bold)
	}
}

func (r *TerminalRenderer) FillRect(x, y, w, h float64, c asset.RGB, alpha float64) {
	x0, y0, x1, y1 := r.span(x, y, w, h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			r.buf.BlendOver(cx, cy, c, alpha)
		}
	}
}

func (r *TerminalRenderer) StrokeCircle(x, y, radius float64, c asset.RGB) {
	// One sample per cell of circumference along the wider axis
	steps := max(8, int(2*math.Pi*radius*float64(r.cols)/constants.ScreenWidth))
	for i := 0; i < steps; i++ {
		dx, dy := vmath.HedToVec(float64(i)*360/float64(steps), radius)
		cx, cy := r.cell(x+dx, y+dy)
		r.buf.SetFgOnly(cx, cy, tetherDot, c, false)
	}
}

// DrawLine plots a dotted line between two world points
func (r *TerminalRenderer) DrawLine(x1, y1, x2, y2 float64, c asset.RGB) {
	ax, ay := r.cell(x1, y1)
	bx, by := r.cell(x2, y2)
	dx, dy := abs(bx-ax), -abs(by-ay)
	sx, sy := sign(bx-ax), sign(by-ay)
	e := dx + dy
	for {
		r.buf.SetFgOnly(ax, ay, tetherDot, c, false)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

func (r *TerminalRenderer) DrawTile(x, y, w, h float64, glyph rune, fg, bg asset.RGB) {
	x0, y0, x1, y1 := r.span(x, y, w, h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			r.buf.SetWithBg(cx, cy, glyph, fg, bg)
		}
	}
}

// Show copies the buffer to the screen and presents it
func (r *TerminalRenderer) Show() {
	r.screen.Clear()
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			c := r.buf.Get(x, y)
			style := tcell.StyleDefault.Foreground(Color(c.Fg)).Background(Color(c.Bg)).Bold(c.Bold)
			r.screen.SetContent(r.originX+x, r.originY+y, c.Rune, nil, style)
		}
	}
	r.screen.Show()
}

// Arrow returns the arrow glyph nearest to a heading in degrees, 0 pointing up
func Arrow(heading float64) rune {
	i := int(math.Round(vmath.WrapHeading(heading)/45)) % len(arrows)
	return arrows[i]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
