// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootfind

import (
	"fmt"
	"math"
)

// minSlope is the smallest derivative magnitude a Newton step will
// divide by.
const minSlope = 1e-300

// NewtonRaphson finds a root of f starting from x0 using Newton's
// method with derivative df. It returns ErrNumerical if the
// derivative vanishes or the iteration budget is exhausted. Plain
// Newton can cycle or diverge on unfriendly functions; use
// RobustNewtonRaphson when a bounding interval is available.
func NewtonRaphson(f, df func(float64) float64, x0, tol float64) (float64, error) {
	x := x0
	for i := 0; i < MaxIterations; i++ {
		fx := f(x)
		dfx := df(x)
		if math.Abs(dfx) < minSlope || !finite(dfx) {
			return x, fmt.Errorf("NewtonRaphson: derivative vanished at %g: %w", x, ErrNumerical)
		}
		dx := fx / dfx
		x -= dx
		if math.Abs(dx) < tol {
			return x, nil
		}
	}
	return x, fmt.Errorf("NewtonRaphson: no convergence in %d iterations: %w", MaxIterations, ErrNumerical)
}

// RobustNewtonRaphson finds a root of f in the bracketing interval
// [lo, hi], taking Newton steps from x0 but falling back to
// bisection whenever a step would leave the interval or the
// derivative is too shallow. The bracket shrinks every iteration, so
// termination is guaranteed.
func RobustNewtonRaphson(f, df func(float64) float64, x0, lo, hi, tol float64) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if !isBracket(flo, fhi) {
		return math.NaN(), fmt.Errorf("RobustNewtonRaphson: no sign change in [%g, %g]: %w", lo, hi, ErrNumerical)
	}
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	// Orient so that f(lo) < 0 < f(hi).
	if flo > 0 {
		lo, hi = hi, lo
	}

	x := x0
	if x < math.Min(lo, hi) || x > math.Max(lo, hi) {
		x = 0.5 * (lo + hi)
	}
	for i := 0; i < MaxIterations; i++ {
		fx := f(x)
		if fx == 0 {
			return x, nil
		}
		if fx < 0 {
			lo = x
		} else {
			hi = x
		}

		dfx := df(x)
		next := x - fx/dfx
		inside := next > math.Min(lo, hi) && next < math.Max(lo, hi)
		if math.Abs(dfx) < minSlope || !finite(dfx) || !finite(next) || !inside {
			next = 0.5 * (lo + hi)
		}
		if math.Abs(next-x) < tol {
			return next, nil
		}
		x = next
	}
	return x, fmt.Errorf("RobustNewtonRaphson: no convergence in %d iterations: %w", MaxIterations, ErrNumerical)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
