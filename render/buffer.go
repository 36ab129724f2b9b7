// Package render draws the scene and the form into a cell buffer and flushes
// it to a tcell screen.
package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal character cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
	Rev  bool
}

// Buffer is a row-major cell grid, cells[y*width+x]
type Buffer struct {
	cells  []Cell
	width  int
	height int
	bg     RGB
}

// NewBuffer creates a buffer cleared to bg
func NewBuffer(width, height int, bg RGB) *Buffer {
	b := &Buffer{bg: bg}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocates only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns buffer dimensions
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Clear resets all cells to blank on the default background using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RGBWhite, Bg: b.bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of bounds yields a zero cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set composites a cell; a zero rune keeps the existing rune
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	if r != 0 {
		dst.Rune = r
	}
	switch mode {
	case BlendReplace:
		dst.Fg = fg
		dst.Bg = bg
		dst.Bold, dst.Rev = false, false
	case BlendAlpha:
		dst.Fg = fg
		dst.Bg = Blend(dst.Bg, bg, alpha)
	case BlendFgOnly:
		dst.Fg = fg
	}
}

// SetAttrs toggles bold and reverse on a cell
func (b *Buffer) SetAttrs(x, y int, bold, rev bool) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bold, c.Rev = bold, rev
}

// Text writes s left to right over the existing background; returns columns used
func (b *Buffer) Text(x, y int, s string, fg RGB) int {
	n := 0
	for _, r := range s {
		b.Set(x+n, y, r, fg, RGB{}, BlendFgOnly, 1)
		n++
	}
	return n
}

// Fill paints a rectangle's background
func (b *Buffer) Fill(x, y, w, h int, bg RGB) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.Set(xx, yy, ' ', RGBWhite, bg, BlendReplace, 1)
		}
	}
}

// Flush copies the buffer onto the screen; the caller calls Show
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			st := tcell.StyleDefault.Foreground(c.Fg.TCell()).Background(c.Bg.TCell()).Bold(c.Bold).Reverse(c.Rev)
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, st)
		}
	}
}
