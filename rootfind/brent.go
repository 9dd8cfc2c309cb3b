// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rootfind provides one-dimensional root finding: interval
// bracketing, Brent's method, bisection, and Newton-Raphson with a
// robust bisection fallback.
package rootfind

import (
	"errors"
	"fmt"
	"math"
)

// ErrNumerical is returned when a root finder fails to bracket or
// converge. Callers can test for it with errors.Is.
var ErrNumerical = errors.New("numerical failure")

// BracketMaxExpansions bounds how many times Bracket will grow its
// interval looking for a sign change.
var BracketMaxExpansions = 50

// MaxIterations bounds the iteration count of Brent, Bisection, and
// the Newton-Raphson solvers.
var MaxIterations = 100

const bracketGrowth = 1.6

// Bracket expands the interval [a, b] geometrically until f changes
// sign across it, returning the bracketing interval and true. If no
// sign change is found within BracketMaxExpansions expansions it
// returns the last interval tried and false.
func Bracket(f func(float64) float64, a, b float64) (lo, hi float64, ok bool) {
	if a == b {
		b = a + 1
	}
	if a > b {
		a, b = b, a
	}
	fa, fb := f(a), f(b)
	for i := 0; i < BracketMaxExpansions; i++ {
		if isBracket(fa, fb) {
			return a, b, true
		}
		// Grow the end with the smaller magnitude, since the
		// root is more likely beyond it.
		if math.Abs(fa) < math.Abs(fb) {
			a += bracketGrowth * (a - b)
			fa = f(a)
		} else {
			b += bracketGrowth * (b - a)
			fb = f(b)
		}
	}
	return a, b, false
}

func isBracket(fa, fb float64) bool {
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return false
	}
	return fa == 0 || fb == 0 || (fa < 0) != (fb < 0)
}

// Brent finds a root of f in the bracketing interval [lo, hi] using
// Brent's method, a hybrid of inverse quadratic interpolation,
// secant steps, and bisection. The iterate never leaves [lo, hi], so
// convergence is guaranteed once a valid bracket exists. It returns
// ErrNumerical if f(lo) and f(hi) do not straddle zero or the
// iteration budget is exhausted.
func Brent(f func(float64) float64, lo, hi, tol float64) (float64, error) {
	a, b := lo, hi
	fa, fb := f(a), f(b)
	if !isBracket(fa, fb) {
		return math.NaN(), fmt.Errorf("Brent: no sign change in [%g, %g]: %w", lo, hi, ErrNumerical)
	}

	c, fc := a, fa
	var d, e float64
	d = b - a
	e = d
	for i := 0; i < MaxIterations; i++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*machEps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt inverse quadratic interpolation.
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				// Accept interpolation.
				e = d
				d = p / q
			} else {
				// Interpolation failed; bisect.
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}
	return b, fmt.Errorf("Brent: no convergence in %d iterations: %w", MaxIterations, ErrNumerical)
}

// Bisection finds a root of f in the bracketing interval [lo, hi] by
// repeated halving. It is slower than Brent but makes no smoothness
// assumptions at all.
func Bisection(f func(float64) float64, lo, hi, tol float64) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if !isBracket(flo, fhi) {
		return math.NaN(), fmt.Errorf("Bisection: no sign change in [%g, %g]: %w", lo, hi, ErrNumerical)
	}
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	for i := 0; i < MaxIterations; i++ {
		mid := 0.5 * (lo + hi)
		fmid := f(mid)
		if fmid == 0 || hi-lo < 2*tol {
			return mid, nil
		}
		if (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}

const machEps = 2.220446049250313e-16
