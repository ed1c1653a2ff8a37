package export

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// Curve is one polyline in data coordinates.
type Curve struct {
	Label string
	Xs    []float64
	Ys    []float64
	Color string
	Dash  string // stroke-dasharray, empty for solid
	Width float64
}

// Point is a highlighted marker, e.g. the terminal condition (T, xT).
type Point struct {
	Label string
	X     float64
	Y     float64
	Color string
}

// PlotSVG renders curves and markers as an SVG plot on a dark background
// with a text legend.
func PlotSVG(curves []Curve, points []Point, width, height int) string {
	xMin, xMax, yMin, yMax, ok := bounds(curves, points)
	if !ok {
		return ""
	}

	toPixel := func(x, y float64) (float64, float64) {
		px := (x - xMin) / (xMax - xMin) * float64(width)
		py := float64(height) - (y-yMin)/(yMax-yMin)*float64(height)
		return px, py
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, c := range curves {
		sb.WriteString(curvePath(c, toPixel))
	}

	for _, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		px, py := toPixel(p.X, p.Y)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>
`, px, py, p.Color))
	}

	// legend, top-left
	y := 16.0
	for _, c := range curves {
		sb.WriteString(fmt.Sprintf(`<text x="10" y="%.0f" font-family="monospace" font-size="11" fill="%s">%s</text>
`, y, c.Color, c.Label))
		y += 14
	}
	for _, p := range points {
		sb.WriteString(fmt.Sprintf(`<text x="10" y="%.0f" font-family="monospace" font-size="11" fill="%s">%s</text>
`, y, p.Color, p.Label))
		y += 14
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG writes the plot to path.
func WriteSVG(path string, curves []Curve, points []Point, width, height int) error {
	svg := PlotSVG(curves, points, width, height)
	if svg == "" {
		return fmt.Errorf("nothing to plot")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

func curvePath(c Curve, toPixel func(float64, float64) (float64, float64)) string {
	if len(c.Xs) < 2 {
		return ""
	}

	strokeWidth := c.Width
	if strokeWidth == 0 {
		strokeWidth = 1.5
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f"`, c.Color, strokeWidth))
	if c.Dash != "" {
		sb.WriteString(fmt.Sprintf(` stroke-dasharray="%s"`, c.Dash))
	}
	sb.WriteString(` d="`)

	pen := false
	for i := range c.Xs {
		if !finite(c.Xs[i]) || !finite(c.Ys[i]) {
			pen = false
			continue
		}
		px, py := toPixel(c.Xs[i], c.Ys[i])
		if pen {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", px, py))
			pen = true
		}
	}

	sb.WriteString("\"/>\n")
	return sb.String()
}

func bounds(curves []Curve, points []Point) (xMin, xMax, yMin, yMax float64, ok bool) {
	first := true
	visit := func(x, y float64) {
		if !finite(x) || !finite(y) {
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

	for _, c := range curves {
		for i := range c.Xs {
			visit(c.Xs[i], c.Ys[i])
		}
	}
	for _, p := range points {
		visit(p.X, p.Y)
	}
	if first {
		return 0, 0, 0, 0, false
	}

	rangeX := xMax - xMin
	rangeY := yMax - yMin
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	xMin -= rangeX * 0.1
	xMax += rangeX * 0.1
	yMin -= rangeY * 0.1
	yMax += rangeY * 0.1
	return xMin, xMax, yMin, yMax, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
