// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Debye1 returns the first Debye function
//
//	D₁(x) = (1/x) ∫₀ˣ t/(eᵗ-1) dt
//
// which appears in the Kendall tau relation of the Frank copula. For
// negative x it uses the reflection D₁(-x) = D₁(x) + x/2.
func Debye1(x float64) float64 {
	if x == 0 {
		return 1
	}
	if x < 0 {
		return Debye1(-x) + x/2
	}
	integral := quad.Fixed(func(t float64) float64 {
		// t/(e^t - 1) → 1 as t → 0.
		if t < 1e-12 {
			return 1
		}
		return t / math.Expm1(t)
	}, 0, x, 96, nil, 0)
	return integral / x
}
