package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots per character cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille drawing surface with an optional per-cell color tag.
// Color 0 means unstyled; values above 0 index into the palette passed to
// Render, offset by one.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]uint8
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]uint8, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]uint8, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // empty braille char
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y). The canvas is (Width*2) x (Height*4)
// sub-pixels. The owning cell takes the color of the last writer.
func (c *Canvas) Set(x, y int, color uint8) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
	c.Colors[row][col] = color
}

// MarkCell overwrites a whole character cell, e.g. for a point marker that
// should read stronger than a braille dot.
func (c *Canvas) MarkCell(col, row int, r rune, color uint8) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] = r
	c.Colors[row][col] = color
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Colors[i][j] = 0
		}
	}
}

// DrawLine draws a line in sub-pixel coordinates using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color uint8) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the canvas with each cell styled by its color tag.
func (c *Canvas) Render(palette []lipgloss.Style) string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			r := c.Grid[row][col]
			tag := c.Colors[row][col]
			if tag > 0 && int(tag) <= len(palette) && r != 0x2800 {
				b.WriteString(palette[tag-1].Render(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
