package shooting_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/shootlab/internal/shooting"
)

var _ = Describe("Problem", func() {
	var p shooting.Problem

	BeforeEach(func() {
		p = shooting.Problem{Lambda: -1, T: 5, XT: 1}
	})

	Describe("ExactTheta", func() {
		It("satisfies the shooting condition exactly", func() {
			star := p.ExactTheta()
			Expect(p.Residual(star)).To(BeNumerically("~", 0, 1e-9))
		})

		It("hits the terminal condition", func() {
			star := p.ExactTheta()
			Expect(p.Solution(p.T, star)).To(BeNumerically("~", p.XT, 1e-9))
		})

		It("matches the worked example lambda=-1, T=5, xT=1", func() {
			Expect(p.ExactTheta()).To(BeNumerically("~", math.Exp(5), 1e-9))
			Expect(p.ExactTheta()).To(BeNumerically("~", 148.413, 1e-3))
		})

		It("reduces to xT when lambda is zero", func() {
			p.Lambda = 0
			Expect(p.ExactTheta()).To(Equal(p.XT))
			Expect(p.Residual(p.XT)).To(BeZero())
		})
	})

	Describe("Solution", func() {
		It("returns theta at t=0 for any theta", func() {
			for _, theta := range []float64{-3.5, 0, 0.2, 2, 148.413} {
				Expect(p.Solution(0, theta)).To(Equal(theta))
			}
		})

		It("decays for negative lambda", func() {
			Expect(p.Solution(5, 2.0)).To(BeNumerically("<", 2.0))
		})
	})

	Describe("Residual", func() {
		It("matches the worked example at theta0=0.2", func() {
			Expect(p.Residual(0.2)).To(BeNumerically("~", 0.2*math.Exp(-5)-1, 1e-12))
			Expect(p.Residual(0.2)).To(BeNumerically("~", -0.9987, 1e-4))
		})

		It("is linear in theta", func() {
			a, b := 0.3, 1.7
			mid := p.Residual((a + b) / 2)
			avg := (p.Residual(a) + p.Residual(b)) / 2
			Expect(mid).To(BeNumerically("~", avg, 1e-12))
		})

		It("changes sign across the root for bracketing guesses", func() {
			p = shooting.Problem{Lambda: 0.5, T: 2, XT: 1}
			star := p.ExactTheta()
			Expect(p.Residual(star - 0.1)).To(BeNumerically("<", 0))
			Expect(p.Residual(star + 0.1)).To(BeNumerically(">", 0))
		})
	})

	Describe("Evaluate", func() {
		It("bundles residuals at both guesses and theta*", func() {
			eval := p.Evaluate(0.2, 2.0)
			Expect(eval.Theta0).To(Equal(0.2))
			Expect(eval.Theta1).To(Equal(2.0))
			Expect(eval.ThetaStar).To(Equal(p.ExactTheta()))
			Expect(eval.F0).To(Equal(p.Residual(0.2)))
			Expect(eval.F1).To(Equal(p.Residual(2.0)))
			Expect(eval.FStar).To(BeNumerically("~", 0, 1e-9))
		})
	})

	Describe("edge inputs", func() {
		It("does not panic for huge lambda*T and propagates Inf", func() {
			p = shooting.Problem{Lambda: 1000, T: 1000, XT: 1}
			Expect(math.IsInf(p.Residual(1), 1)).To(BeTrue())
			Expect(p.ExactTheta()).To(BeZero())
		})

		It("handles T=0 where every theta is its own terminal value", func() {
			p = shooting.Problem{Lambda: -1, T: 0, XT: 2}
			Expect(p.Residual(2)).To(BeZero())
			Expect(p.ExactTheta()).To(Equal(2.0))
		})
	})
})

var _ = Describe("Sampling", func() {
	p := shooting.Problem{Lambda: -1, T: 5, XT: 1}

	It("spans [0, T] with the requested number of points", func() {
		c := p.Sample(0.2, 400)
		Expect(c.Times).To(HaveLen(400))
		Expect(c.Values).To(HaveLen(400))
		Expect(c.Times[0]).To(BeZero())
		Expect(c.Times[len(c.Times)-1]).To(BeNumerically("~", p.T, 1e-9))
	})

	It("starts every curve at theta", func() {
		c := p.Sample(2.0, 50)
		Expect(c.Values[0]).To(Equal(2.0))
	})

	It("clamps degenerate sample counts to two points", func() {
		c := p.Sample(1.0, 0)
		Expect(c.Times).To(HaveLen(2))
	})

	Describe("Shots", func() {
		It("returns exact, both trials, and the final shot in display order", func() {
			shots := p.Shots(0.2, 2.0, 100)
			Expect(shots).To(HaveLen(4))
			Expect(shots[0].Label).To(Equal("exact solution"))
			Expect(shots[1].Theta).To(Equal(0.2))
			Expect(shots[2].Theta).To(Equal(2.0))
			Expect(shots[3].Theta).To(Equal(p.ExactTheta()))
		})

		It("ends the final shot on the terminal condition", func() {
			shots := p.Shots(0.2, 2.0, 100)
			final := shots[3]
			last := final.Curve.Values[len(final.Curve.Values)-1]
			Expect(last).To(BeNumerically("~", p.XT, 1e-9))
			Expect(final.Residual).To(BeNumerically("~", 0, 1e-9))
		})
	})
})
