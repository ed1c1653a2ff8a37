// Package analysis provides display-oriented sweeps of the shooting residual.
package analysis

import (
	"math"

	"github.com/san-kum/shootlab/internal/shooting"
)

// SweepPoint is one sample of the residual F(theta).
type SweepPoint struct {
	Theta    float64
	Residual float64
}

// ResidualSweep evaluates F(theta) at steps uniform points on
// [thetaMin, thetaMax]. The sweep is purely for visualization: the root is
// already known in closed form and is only marked on the resulting curve.
func ResidualSweep(p shooting.Problem, thetaMin, thetaMax float64, steps int) []SweepPoint {
	if steps <= 1 {
		steps = 2
	}
	if thetaMax < thetaMin {
		thetaMin, thetaMax = thetaMax, thetaMin
	}
	step := (thetaMax - thetaMin) / float64(steps-1)

	points := make([]SweepPoint, steps)
	for i := 0; i < steps; i++ {
		theta := thetaMin + float64(i)*step
		points[i] = SweepPoint{Theta: theta, Residual: p.Residual(theta)}
	}
	return points
}

// Bracket returns the first adjacent pair of sweep points whose residuals
// differ in sign. ok is false when the grid never crosses zero (the root lies
// outside the swept window, or F is flat).
func Bracket(points []SweepPoint) (lo, hi SweepPoint, ok bool) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if a.Residual == 0 {
			return a, a, true
		}
		if a.Residual*b.Residual < 0 {
			return a, b, true
		}
	}
	if n := len(points); n > 0 && points[n-1].Residual == 0 {
		return points[n-1], points[n-1], true
	}
	return SweepPoint{}, SweepPoint{}, false
}

// Window picks a theta range that covers both trial guesses and the exact
// root, padded so the zero crossing never sits on the plot edge.
func Window(p shooting.Problem, theta0, theta1 float64) (min, max float64) {
	star := p.ExactTheta()
	min = math.Min(math.Min(theta0, theta1), star)
	max = math.Max(math.Max(theta0, theta1), star)

	span := max - min
	if span == 0 {
		span = math.Max(math.Abs(star), 1)
	}
	min -= span * 0.1
	max += span * 0.1
	return min, max
}
