package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Series is one curve in data coordinates.
type Series struct {
	Label string
	Xs    []float64
	Ys    []float64
	Color uint8
}

// Marker is a single highlighted point, e.g. the terminal condition (T, xT).
type Marker struct {
	Label string
	X     float64
	Y     float64
	Color uint8
}

// Plot maps series and markers from data space onto a braille canvas and
// renders them with a simple frame and axis extents.
type Plot struct {
	Width  int // character cells
	Height int

	series  []Series
	markers []Marker
}

func NewPlot(width, height int) *Plot {
	if width < 10 {
		width = 10
	}
	if height < 4 {
		height = 4
	}
	return &Plot{Width: width, Height: height}
}

func (pl *Plot) AddSeries(s Series) { pl.series = append(pl.series, s) }
func (pl *Plot) AddMarker(m Marker) { pl.markers = append(pl.markers, m) }

// bounds returns the padded data extents over all series and markers.
func (pl *Plot) bounds() (xMin, xMax, yMin, yMax float64) {
	first := true
	visit := func(x, y float64) {
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return
		}
		if first {
			xMin, xMax, yMin, yMax = x, x, y, y
			first = false
			return
		}
		xMin = math.Min(xMin, x)
		xMax = math.Max(xMax, x)
		yMin = math.Min(yMin, y)
		yMax = math.Max(yMax, y)
	}

	for _, s := range pl.series {
		for i := range s.Xs {
			visit(s.Xs[i], s.Ys[i])
		}
	}
	for _, m := range pl.markers {
		visit(m.X, m.Y)
	}

	if first {
		return 0, 1, 0, 1
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}
	xMin -= xRange * 0.05
	xMax += xRange * 0.05
	yMin -= yRange * 0.1
	yMax += yRange * 0.1
	return
}

// Render draws everything and returns the framed plot.
func (pl *Plot) Render(palette []lipgloss.Style) string {
	canvas := NewCanvas(pl.Width, pl.Height)
	xMin, xMax, yMin, yMax := pl.bounds()

	subW := float64(pl.Width*2 - 1)
	subH := float64(pl.Height*4 - 1)

	toPixel := func(x, y float64) (int, int, bool) {
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return 0, 0, false
		}
		px := int((x - xMin) / (xMax - xMin) * subW)
		py := int(subH - (y-yMin)/(yMax-yMin)*subH)
		return px, py, true
	}

	for _, s := range pl.series {
		var prevX, prevY int
		havePrev := false
		for i := range s.Xs {
			px, py, ok := toPixel(s.Xs[i], s.Ys[i])
			if !ok {
				havePrev = false
				continue
			}
			if havePrev {
				canvas.DrawLine(prevX, prevY, px, py, s.Color)
			} else {
				canvas.Set(px, py, s.Color)
			}
			prevX, prevY = px, py
			havePrev = true
		}
	}

	for _, m := range pl.markers {
		px, py, ok := toPixel(m.X, m.Y)
		if !ok {
			continue
		}
		canvas.MarkCell(px/2, py/4, '●', m.Color)
	}

	body := canvas.Render(palette)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%9.3f ┐\n", yMax))
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		b.WriteString("          " + line + "\n")
	}
	b.WriteString(fmt.Sprintf("%9.3f ┘\n", yMin))

	lo := fmt.Sprintf("%.3f", xMin)
	hi := fmt.Sprintf("%.3f", xMax)
	pad := pl.Width - len(lo) - len(hi)
	if pad < 1 {
		pad = 1
	}
	b.WriteString("          " + lo + strings.Repeat(" ", pad) + hi + "\n")
	return b.String()
}

// Legend lists series and marker labels in their palette colors.
func (pl *Plot) Legend(palette []lipgloss.Style) string {
	var parts []string
	style := func(tag uint8, text string) string {
		if tag > 0 && int(tag) <= len(palette) {
			return palette[tag-1].Render(text)
		}
		return text
	}
	for _, s := range pl.series {
		parts = append(parts, style(s.Color, "── "+s.Label))
	}
	for _, m := range pl.markers {
		parts = append(parts, style(m.Color, "● "+m.Label))
	}
	return strings.Join(parts, "   ")
}
