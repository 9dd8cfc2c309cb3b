// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func TestSignPow(t *testing.T) {
	if got := SignPow(-8, 1.0/3); !aeq(-2, got) {
		t.Errorf("SignPow(-8, 1/3) = %v, want -2", got)
	}
	if got := SignPow(4, 0.5); !aeq(2, got) {
		t.Errorf("SignPow(4, 0.5) = %v, want 2", got)
	}
	if got := SignPow(0, 2.5); got != 0 {
		t.Errorf("SignPow(0, 2.5) = %v, want 0", got)
	}
}

func TestLogClamp(t *testing.T) {
	if got := LogClamp(math.E); !aeq(1, got) {
		t.Errorf("LogClamp(e) = %v, want 1", got)
	}
	for _, x := range []float64{0, -1, math.NaN(), math.Inf(-1)} {
		if got := LogClamp(x); got != LogMin {
			t.Errorf("LogClamp(%v) = %v, want LogMin", x, got)
		}
	}
	if got := LogClamp(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("LogClamp(+Inf) = %v, want +Inf", got)
	}
}

func TestDerivative(t *testing.T) {
	// d/dx x³ at 2 is 12.
	got := Derivative(func(x float64) float64 { return x * x * x }, 2)
	if math.Abs(got-12) > 1e-6 {
		t.Errorf("Derivative(x³, 2) = %v, want 12", got)
	}
}

func TestGradient(t *testing.T) {
	f := func(x []float64) float64 { return x[0]*x[0] + 3*x[1] }
	grad := Gradient(f, []float64{2, 5})
	if math.Abs(grad[0]-4) > 1e-6 || math.Abs(grad[1]-3) > 1e-6 {
		t.Errorf("Gradient = %v, want [4 3]", grad)
	}
}

func TestDebye1(t *testing.T) {
	// Abramowitz & Stegun table 27.1.
	if got := Debye1(1); math.Abs(got-0.7775046) > 1e-6 {
		t.Errorf("Debye1(1) = %v, want 0.7775046", got)
	}
	if got := Debye1(0); got != 1 {
		t.Errorf("Debye1(0) = %v, want 1", got)
	}
	// Reflection for negative arguments.
	if got, want := Debye1(-2), Debye1(2)-1; math.Abs(got-want) > 1e-10 {
		t.Errorf("Debye1(-2) = %v, want %v", got, want)
	}
}
