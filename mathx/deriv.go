// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// derivStep is the base step for central differences. cbrt(machine
// epsilon) balances truncation against roundoff for a second-order
// stencil.
var derivStep = math.Cbrt(2.220446049250313e-16)

// Derivative returns the central-difference approximation of f'(x).
func Derivative(f func(float64) float64, x float64) float64 {
	h := derivStep * math.Max(math.Abs(x), 1)
	return (f(x+h) - f(x-h)) / (2 * h)
}

// Gradient returns the central-difference gradient of f at x. The
// result has the same length as x; x is left unmodified.
func Gradient(f func([]float64) float64, x []float64) []float64 {
	grad := make([]float64, len(x))
	xs := make([]float64, len(x))
	copy(xs, x)
	for i := range xs {
		h := derivStep * math.Max(math.Abs(xs[i]), 1)
		xi := xs[i]
		xs[i] = xi + h
		fp := f(xs)
		xs[i] = xi - h
		fm := f(xs)
		xs[i] = xi
		grad[i] = (fp - fm) / (2 * h)
	}
	return grad
}
