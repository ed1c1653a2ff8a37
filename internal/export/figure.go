package export

import "github.com/san-kum/shootlab/internal/shooting"

// ShotFigure converts the four shots and the terminal marker into the
// classic demo figure: solid exact line, dashed trial shots, dotted final
// shot, red terminal-condition marker.
func ShotFigure(p shooting.Problem, shots []shooting.Shot) ([]Curve, []Point) {
	style := []struct {
		color string
		dash  string
		width float64
	}{
		{"#ffffff", "", 2},
		{"#ffcc00", "6,4", 1.5},
		{"#ff66cc", "6,4", 1.5},
		{"#00ff88", "2,4", 3},
	}

	curves := make([]Curve, 0, len(shots))
	for i, shot := range shots {
		s := style[i%len(style)]
		curves = append(curves, Curve{
			Label: shot.Label,
			Xs:    shot.Curve.Times,
			Ys:    shot.Curve.Values,
			Color: s.color,
			Dash:  s.dash,
			Width: s.width,
		})
	}

	points := []Point{{Label: "terminal condition", X: p.T, Y: p.XT, Color: "#ff4444"}}
	return curves, points
}
