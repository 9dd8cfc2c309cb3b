// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx provides numerical helpers shared by the distribution,
// copula, root finding, and optimization packages.
package mathx

import "math"

// LogMin is the worst representable log-probability. Log-domain
// routines clamp to LogMin instead of returning -Inf or NaN so that
// likelihood sums stay finite and comparable.
const LogMin = -math.MaxFloat64

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, 1 if x > 0.
// If x is NaN, it returns NaN.
func Sign(x float64) float64 {
	if x == 0 {
		return 0
	} else if x < 0 {
		return -1
	} else if x > 0 {
		return 1
	}
	return math.NaN()
}

// SignPow returns sign(a)·|a|^p. Unlike math.Pow, it is well-defined
// for negative bases raised to non-integer powers, which keeps
// copula generator functions real-valued as their argument crosses
// zero.
func SignPow(a, p float64) float64 {
	if a == 0 {
		return 0
	}
	return Sign(a) * math.Pow(math.Abs(a), p)
}

// LogClamp returns log(x) with non-positive or non-finite arguments
// clamped to LogMin. Optimizer objectives use it so that a single
// zero density does not turn an entire likelihood sum into NaN or
// -Inf.
func LogClamp(x float64) float64 {
	if math.IsNaN(x) || x <= 0 {
		return LogMin
	}
	l := math.Log(x)
	if math.IsInf(l, -1) {
		return LogMin
	}
	return l
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
