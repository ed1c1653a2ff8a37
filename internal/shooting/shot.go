package shooting

// Curve is an analytic trajectory sampled on a uniform time grid.
type Curve struct {
	Times  []float64
	Values []float64
}

// Sample evaluates the solution for theta at n uniform points on [0, T].
// n is clamped to at least 2 so the grid always contains both endpoints.
func (p Problem) Sample(theta float64, n int) Curve {
	if n < 2 {
		n = 2
	}
	c := Curve{
		Times:  make([]float64, n),
		Values: make([]float64, n),
	}
	step := p.T / float64(n-1)
	for i := 0; i < n; i++ {
		t := float64(i) * step
		c.Times[i] = t
		c.Values[i] = p.Solution(t, theta)
	}
	return c
}

// Shot is one trial trajectory: the initial value, its residual, and the
// sampled curve.
type Shot struct {
	Label    string
	Theta    float64
	Residual float64
	Curve    Curve
}

// Shoot samples the trajectory for theta and records its residual.
func (p Problem) Shoot(label string, theta float64, n int) Shot {
	return Shot{
		Label:    label,
		Theta:    theta,
		Residual: p.Residual(theta),
		Curve:    p.Sample(theta, n),
	}
}

// Shots returns the four curves the demo draws, in display order: the exact
// solution, both trial shots, and the final shot at theta*. The exact
// solution and the final shot trace the same trajectory; both appear so the
// plot reads the way the method is taught.
func (p Problem) Shots(theta0, theta1 float64, n int) []Shot {
	star := p.ExactTheta()
	return []Shot{
		p.Shoot("exact solution", star, n),
		p.Shoot("shot theta0", theta0, n),
		p.Shoot("shot theta1", theta1, n),
		p.Shoot("final shot", star, n),
	}
}
