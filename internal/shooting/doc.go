// Package shooting implements the closed-form shooting analysis for the
// linear boundary value problem
//
//	x'(t) = lambda * x(t),    x(T) = xT
//
// The unknown initial value theta = x(0) satisfies the shooting condition
// F(theta) = theta*exp(lambda*T) - xT = 0, which in this linear case has the
// exact root theta* = xT*exp(-lambda*T). The package therefore evaluates
// rather than iterates:
//
//	p := shooting.Problem{Lambda: -1, T: 5, XT: 1}
//	eval := p.Evaluate(0.2, 2.0)   // residuals at both guesses and theta*
//	shots := p.Shots(0.2, 2.0, 400) // exact curve, both trial shots, final shot
//
// There is no integrator anywhere: every curve is the analytic solution
// theta*exp(lambda*t) sampled on a uniform grid.
package shooting
