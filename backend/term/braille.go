package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OliverKKY/pltrs"
	"github.com/OliverKKY/pltrs/internal/stroke"
)

// brailleBase is the first rune of the braille patterns block.
const brailleBase = 0x2800

// Canvas is a braille micro-pixel buffer with a color per cell.
type Canvas struct {
	w, h  int // in cells
	mask  [][]uint8
	color [][]pltrs.Color
}

// NewCanvas creates a canvas of w x h cells.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the canvas. Contents are not preserved.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	c.w, c.h = w, h
	c.mask = make([][]uint8, h)
	c.color = make([][]pltrs.Color, h)
	for i := range c.mask {
		c.mask[i] = make([]uint8, w)
		c.color[i] = make([]pltrs.Color, w)
	}
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (w, h int) {
	return c.w, c.h
}

// MicroSize returns the canvas size in micro-pixels.
func (c *Canvas) MicroSize() (w, h int) {
	return c.w * 2, c.h * 4
}

// Clear empties every cell.
func (c *Canvas) Clear() {
	for y := range c.mask {
		clear(c.mask[y])
		clear(c.color[y])
	}
}

// dotBits maps a micro-pixel position inside a cell to its braille bit,
// indexed by [column][row].
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Set sets a micro-pixel. Out-of-range coordinates are ignored.
func (c *Canvas) Set(mx, my int, col pltrs.Color) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	c.mask[cy][cx] |= dotBits[rx][ry]
	c.color[cy][cx] = col
}

// Line draws a one micro-pixel line using Bresenham. The segment is
// clipped to the canvas first, so only visible micro-pixels are stepped.
func (c *Canvas) Line(x0, y0, x1, y1 int, col pltrs.Color) {
	mw, mh := c.MicroSize()
	if mw == 0 || mh == 0 {
		return
	}
	a, b, ok := stroke.ClipSegment(
		stroke.Point{X: float32(x0), Y: float32(y0)},
		stroke.Point{X: float32(x1), Y: float32(y1)},
		stroke.Box{MaxX: float32(mw - 1), MaxY: float32(mh - 1)},
	)
	if !ok {
		return
	}
	x0, y0 = int(math.Round(float64(a.X))), int(math.Round(float64(a.Y)))
	x1, y1 = int(math.Round(float64(b.X))), int(math.Round(float64(b.Y)))

	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillRect sets every micro-pixel in [x0,x1] x [y0,y1].
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col pltrs.Color) {
	mw, mh := c.MicroSize()
	x0, x1 = max(min(x0, x1), 0), min(max(x0, x1), mw-1)
	y0, y1 = max(min(y0, y1), 0), min(max(y0, y1), mh-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Set(x, y, col)
		}
	}
}

// FillCircle sets every micro-pixel within r of (cx, cy). Only the part
// of the disc on the canvas is visited.
func (c *Canvas) FillCircle(cx, cy, r int, col pltrs.Color) {
	if r <= 0 {
		c.Set(cx, cy, col)
		return
	}
	mw, mh := c.MicroSize()
	for y := max(cy-r, 0); y <= min(cy+r, mh-1); y++ {
		for x := max(cx-r, 0); x <= min(cx+r, mw-1); x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				c.Set(x, y, col)
			}
		}
	}
}

// Lines returns the canvas as plain text, one string per cell row.
// Empty cells are spaces.
func (c *Canvas) Lines() []string {
	out := make([]string, c.h)
	row := make([]rune, c.w)
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			row[x] = cellRune(c.mask[y][x])
		}
		out[y] = string(row)
	}
	return out
}

// Render returns the canvas as text with each run of same-colored cells
// wrapped in a lipgloss foreground style.
func (c *Canvas) Render() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var run []rune
		var runColor pltrs.Color
		flush := func() {
			if len(run) == 0 {
				return
			}
			sb.WriteString(styleFor(runColor).Render(string(run)))
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			m := c.mask[y][x]
			col := c.color[y][x]
			if m == 0 {
				col = pltrs.Color{}
			}
			if col != runColor {
				flush()
				runColor = col
			}
			run = append(run, cellRune(m))
		}
		flush()
	}
	return sb.String()
}

func cellRune(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(brailleBase + int(mask))
}

// styleFor returns a foreground style for col. The zero color is unstyled.
func styleFor(col pltrs.Color) lipgloss.Style {
	if col == (pltrs.Color{}) {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(col)))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
