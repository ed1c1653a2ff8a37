package shooting

import "math"

// Problem is the linear boundary value problem x'(t) = lambda*x(t) with the
// terminal condition x(T) = XT.
type Problem struct {
	Lambda float64
	T      float64
	XT     float64
}

// Solution evaluates the analytic solution x(t) = theta*exp(lambda*t) for the
// trial initial value theta.
func (p Problem) Solution(t, theta float64) float64 {
	return theta * math.Exp(p.Lambda*t)
}

// Residual is the shooting function F(theta) = theta*exp(lambda*T) - XT.
// Its root is the initial value whose trajectory hits the terminal condition.
func (p Problem) Residual(theta float64) float64 {
	return theta*math.Exp(p.Lambda*p.T) - p.XT
}

// ExactTheta returns the closed-form root theta* = XT*exp(-lambda*T).
func (p Problem) ExactTheta() float64 {
	return p.XT * math.Exp(-p.Lambda*p.T)
}

// Evaluation holds the residuals the demo displays for two trial guesses and
// the exact initial value.
type Evaluation struct {
	Theta0    float64
	Theta1    float64
	ThetaStar float64
	F0        float64
	F1        float64
	FStar     float64
}

func (p Problem) Evaluate(theta0, theta1 float64) Evaluation {
	star := p.ExactTheta()
	return Evaluation{
		Theta0:    theta0,
		Theta1:    theta1,
		ThetaStar: star,
		F0:        p.Residual(theta0),
		F1:        p.Residual(theta1),
		FStar:     p.Residual(star),
	}
}
