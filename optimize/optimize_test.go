// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimize

import (
	"errors"
	"math"
	"testing"
)

// sphere3 is Σ(4x-0.5)² + (3y-0.6)² + (2z-0.7)² with minimum 0 at
// [0.125, 0.2, 0.35].
func sphere3(x []float64) float64 {
	a := 4*x[0] - 0.5
	b := 3*x[1] - 0.6
	c := 2*x[2] - 0.7
	return a*a + b*b + c*c
}

var sphere3Min = []float64{0.125, 0.2, 0.35}

func checkMin(t *testing.T, name string, got ParameterSet, want []float64, xtol, ftol float64) {
	t.Helper()
	if len(got.Values) != len(want) {
		t.Fatalf("%s: got %d values, want %d", name, len(got.Values), len(want))
	}
	for i := range want {
		if math.Abs(got.Values[i]-want[i]) > xtol {
			t.Errorf("%s: x[%d] = %v, want %v", name, i, got.Values[i], want[i])
		}
	}
	if math.Abs(got.Fitness) > ftol {
		t.Errorf("%s: fitness = %v, want ≈0", name, got.Fitness)
	}
}

func TestBrentSearch(t *testing.T) {
	b := &BrentSearch{
		Func:  func(x float64) float64 { return (x - 2) * (x - 2) },
		Lower: -10,
		Upper: 10,
	}
	if err := b.Minimize(); err != nil {
		t.Fatal(err)
	}
	if b.Status() != Converged {
		t.Errorf("status = %v, want converged", b.Status())
	}
	checkMin(t, "BrentSearch", b.BestParameterSet(), []float64{2}, 1e-6, 1e-10)
}

func TestBrentSearchMaximize(t *testing.T) {
	b := &BrentSearch{
		Func:  func(x float64) float64 { return -(x - 1) * (x - 1) },
		Lower: -5,
		Upper: 5,
	}
	if err := b.Maximize(); err != nil {
		t.Fatal(err)
	}
	best := b.BestParameterSet()
	if math.Abs(best.Values[0]-1) > 1e-6 {
		t.Errorf("argmax = %v, want 1", best.Values[0])
	}
	if math.Abs(best.Fitness) > 1e-10 {
		t.Errorf("max = %v, want ≈0", best.Fitness)
	}
}

func TestBrentSearchInvertedBounds(t *testing.T) {
	b := &BrentSearch{
		Func:     func(x float64) float64 { return x * x },
		Lower:    1,
		Upper:    -1,
		Settings: DefaultSettings(),
	}
	err := b.Minimize()
	if !errors.Is(err, ErrFailed) {
		t.Errorf("err = %v, want ErrFailed", err)
	}
	if b.Status() != Failed {
		t.Errorf("status = %v, want failed", b.Status())
	}

	// With reporting off, the caller gets a nil error and a
	// Failed status.
	b.ReportFailure = false
	if err := b.Minimize(); err != nil {
		t.Errorf("quiet failure returned error %v", err)
	}
	if b.Status() != Failed {
		t.Errorf("status = %v, want failed", b.Status())
	}
}

func TestBFGS(t *testing.T) {
	o := &BFGS{
		Func:    sphere3,
		Initial: []float64{0.2, 0.5, 0.5},
	}
	if err := o.Minimize(); err != nil {
		t.Fatal(err)
	}
	if o.Status() != Converged {
		t.Errorf("status = %v, want converged", o.Status())
	}
	checkMin(t, "BFGS", o.BestParameterSet(), sphere3Min, 1e-4, 1e-6)
}

func TestBFGSRosenbrock(t *testing.T) {
	rosen := func(x []float64) float64 {
		a := 1 - x[0]
		b := x[1] - x[0]*x[0]
		return a*a + 100*b*b
	}
	o := &BFGS{
		Func:     rosen,
		Initial:  []float64{-1.2, 1},
		Settings: Settings{MaxIterations: 5000, MaxFunctionEvaluations: 100000},
	}
	if err := o.Minimize(); err != nil {
		t.Fatal(err)
	}
	checkMin(t, "BFGS/Rosenbrock", o.BestParameterSet(), []float64{1, 1}, 1e-3, 1e-5)
}

func TestNelderMead(t *testing.T) {
	o := &NelderMead{
		Func:    sphere3,
		Initial: []float64{0.2, 0.5, 0.5},
	}
	if err := o.Minimize(); err != nil {
		t.Fatal(err)
	}
	if o.Status() != Converged {
		t.Errorf("status = %v, want converged", o.Status())
	}
	checkMin(t, "NelderMead", o.BestParameterSet(), sphere3Min, 1e-3, 1e-6)
}

func TestNelderMeadBounded(t *testing.T) {
	// The unconstrained minimum at [2, 2] is outside the box, so
	// the solution must land on the boundary.
	o := &NelderMead{
		Func: func(x []float64) float64 {
			a := x[0] - 2
			b := x[1] - 2
			return a*a + b*b
		},
		Initial: []float64{0.5, 0.5},
		Lower:   []float64{0, 0},
		Upper:   []float64{1, 1},
	}
	if err := o.Minimize(); err != nil {
		t.Fatal(err)
	}
	best := o.BestParameterSet()
	if math.Abs(best.Values[0]-1) > 1e-3 || math.Abs(best.Values[1]-1) > 1e-3 {
		t.Errorf("bounded minimum = %v, want [1 1]", best.Values)
	}
}

func TestNelderMeadConstraint(t *testing.T) {
	// Minimize x²+y² subject to x+y >= 1. The solution is
	// [0.5, 0.5].
	o := &NelderMead{
		Func:    func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] },
		Initial: []float64{2, 2},
		Constraints: []Constraint{{
			F:      func(x []float64) float64 { return x[0] + x[1] },
			Target: 1,
			Type:   GreaterThanOrEqual,
		}},
		Settings: Settings{MaxIterations: 5000},
	}
	if err := o.Minimize(); err != nil {
		t.Fatal(err)
	}
	best := o.BestParameterSet()
	if math.Abs(best.Values[0]-0.5) > 5e-3 || math.Abs(best.Values[1]-0.5) > 5e-3 {
		t.Errorf("constrained minimum = %v, want [0.5 0.5]", best.Values)
	}
}

func TestDifferentialEvolution(t *testing.T) {
	o := &DifferentialEvolution{
		Func:  sphere3,
		Lower: []float64{-2, -2, -2},
		Upper: []float64{2, 2, 2},
		Settings: Settings{
			MaxIterations:          2000,
			MaxFunctionEvaluations: 200000,
		},
	}
	if err := o.Minimize(); err != nil {
		t.Fatal(err)
	}
	checkMin(t, "DE", o.BestParameterSet(), sphere3Min, 1e-3, 1e-5)
}

func TestDifferentialEvolutionReproducible(t *testing.T) {
	run := func() ParameterSet {
		o := &DifferentialEvolution{
			Func:  func(x []float64) float64 { return x[0] * x[0] },
			Lower: []float64{-1},
			Upper: []float64{1},
			Seed:  42,
		}
		if err := o.Minimize(); err != nil {
			t.Fatal(err)
		}
		return o.BestParameterSet()
	}
	a, b := run(), run()
	if a.Fitness != b.Fitness || a.Values[0] != b.Values[0] {
		t.Errorf("seeded runs differ: %+v vs %+v", a, b)
	}
}

func TestMaximize(t *testing.T) {
	o := &NelderMead{
		Func: func(x []float64) float64 {
			a := x[0] - 3
			return 7 - a*a
		},
		Initial: []float64{0},
	}
	if err := o.Maximize(); err != nil {
		t.Fatal(err)
	}
	best := o.BestParameterSet()
	if math.Abs(best.Values[0]-3) > 1e-3 {
		t.Errorf("argmax = %v, want 3", best.Values[0])
	}
	if math.Abs(best.Fitness-7) > 1e-6 {
		t.Errorf("max = %v, want 7", best.Fitness)
	}
}

func TestConstraintViolation(t *testing.T) {
	sum := func(x []float64) float64 { return x[0] + x[1] }
	le := Constraint{F: sum, Target: 1, Type: LessThanOrEqual}
	if v := le.Violation([]float64{0.4, 0.4}); v != 0 {
		t.Errorf("satisfied LE violation = %v, want 0", v)
	}
	if v := le.Violation([]float64{1, 1}); math.Abs(v-1) > 1e-12 {
		t.Errorf("LE violation = %v, want 1", v)
	}
	eq := Constraint{F: sum, Target: 1, Tolerance: 0.1, Type: EqualTo}
	if v := eq.Violation([]float64{0.55, 0.5}); v != 0 {
		t.Errorf("within-tolerance EQ violation = %v, want 0", v)
	}
}

func TestConvergenceRejectsNonFinite(t *testing.T) {
	s := DefaultSettings()
	if s.converged(math.NaN(), 0) || s.converged(0, math.Inf(1)) {
		t.Error("non-finite fitness must not converge")
	}
	if !s.converged(1, 1) {
		t.Error("identical finite fitness should converge")
	}
}
