// SPDX-License-Identifier: MIT

// Package quadrature - one-shot fixed rules.
//
// These are the non-adaptive primitives: evaluate the integrand at a fixed
// set of abscissae and combine with closed-form weights. They serve both
// as standalone estimators and as the building blocks the iterative types
// refine.

package quadrature

import (
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/integrator"
)

// gaussNewtonTol stops the Newton iteration locating Legendre roots.
const gaussNewtonTol = 3e-14

// checkRule validates the shared fixed-rule inputs.
func checkRule(f integrator.Func, a, b float64, n int) error {
	if f == nil {
		return integrator.ErrNilFunction
	}
	if !(b > a) {
		return integrator.ErrBoundsOrder
	}
	if n < 1 {
		return ErrPanelCount
	}

	return nil
}

// Midpoint estimates ∫f over [a,b] with the composite midpoint rule on n
// equal panels. Exact for linear integrands.
//
// Errors: ErrNilFunction, ErrBoundsOrder, ErrPanelCount.
// Complexity: O(n) evaluations.
func Midpoint(f integrator.Func, a, b float64, n int) (float64, error) {
	if err := checkRule(f, a, b, n); err != nil {
		return math.NaN(), err
	}

	h := (b - a) / float64(n)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += f(a + (float64(i)+0.5)*h)
	}

	return h * sum, nil
}

// Trapezoid estimates ∫f over [a,b] with the composite trapezoid rule on
// n equal panels. Exact for linear integrands.
//
// Errors: ErrNilFunction, ErrBoundsOrder, ErrPanelCount.
// Complexity: O(n) evaluations.
func Trapezoid(f integrator.Func, a, b float64, n int) (float64, error) {
	if err := checkRule(f, a, b, n); err != nil {
		return math.NaN(), err
	}

	h := (b - a) / float64(n)
	sum := 0.5 * (f(a) + f(b))
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}

	return h * sum, nil
}

// Simpson estimates ∫f over [a,b] with composite Simpson's rule on n
// equal panels (n even). Exact for cubic integrands.
//
// Errors: ErrNilFunction, ErrBoundsOrder, ErrPanelCount, ErrPanelParity.
// Complexity: O(n) evaluations.
func Simpson(f integrator.Func, a, b float64, n int) (float64, error) {
	if err := checkRule(f, a, b, n); err != nil {
		return math.NaN(), err
	}
	if n%2 != 0 {
		return math.NaN(), ErrPanelParity
	}

	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}

	return h / 3 * sum, nil
}

// GaussLegendre estimates ∫f over [a,b] with the n-point Gauss–Legendre
// rule. Nodes are the Legendre-polynomial roots located by Newton
// iteration; weights follow from the derivative at each root. Exact for
// polynomials through degree 2n−1.
//
// Errors: ErrNilFunction, ErrBoundsOrder, ErrPanelCount.
// Complexity: O(n²) setup (Newton over n nodes), O(n) evaluations.
func GaussLegendre(f integrator.Func, a, b float64, n int) (float64, error) {
	if err := checkRule(f, a, b, n); err != nil {
		return math.NaN(), err
	}

	x, w := gaussNodes(n)
	mid := 0.5 * (a + b)
	half := 0.5 * (b - a)

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += w[i] * f(mid+half*x[i])
	}

	return half * sum, nil
}

// gaussNodes computes the n-point Gauss–Legendre abscissae and weights on
// [-1,1]. Symmetry halves the work: each Newton-converged root z fills a
// mirrored pair.
func gaussNodes(n int) (x, w []float64) {
	x = make([]float64, n)
	w = make([]float64, n)

	m := (n + 1) / 2
	for i := 0; i < m; i++ {
		// Chebyshev-based initial guess for the i-th root.
		z := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))

		var pp float64
		for {
			p1, p2 := 1.0, 0.0
			for j := 0; j < n; j++ {
				p3 := p2
				p2 = p1
				p1 = ((2*float64(j)+1)*z*p2 - float64(j)*p3) / (float64(j) + 1)
			}
			// p1 is P_n(z); pp its derivative via the standard relation.
			pp = float64(n) * (z*p1 - p2) / (z*z - 1)
			z1 := z
			z = z1 - p1/pp
			if math.Abs(z-z1) <= gaussNewtonTol {
				break
			}
		}

		x[i] = -z
		x[n-1-i] = z
		w[i] = 2 / ((1 - z*z) * pp * pp)
		w[n-1-i] = w[i]
	}

	return x, w
}
