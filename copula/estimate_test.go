// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/dist"
)

// copulaSample draws n dependent pairs from c by conditional
// inversion over a deterministic low-discrepancy stream: u runs over
// the grid (i+0.5)/n and the conditional probability over the
// golden-ratio sequence frac(i·φ), which fills (0,1) evenly without
// randomness.
func copulaSample(c Bivariate, n int) (us, vs []float64) {
	const phi = 0.6180339887498949
	us = make([]float64, n)
	vs = make([]float64, n)
	for i := 0; i < n; i++ {
		u := (float64(i) + 0.5) / float64(n)
		p := math.Mod(float64(i+1)*phi, 1)
		us[i] = u
		vs[i] = c.CondInvCDF(u, p)
	}
	return us, vs
}

func TestPseudoObservations(t *testing.T) {
	us := PseudoObservations([]float64{10, 30, 20, 20, 50})
	want := []float64{1.0 / 6, 4.0 / 6, 2.5 / 6, 2.5 / 6, 5.0 / 6}
	for i := range want {
		if !aeq(want[i], us[i]) {
			t.Errorf("u[%d] = %v, want %v", i, us[i], want[i])
		}
	}
}

func TestSampleTauMatchesCopula(t *testing.T) {
	for _, c := range testFamilies() {
		us, vs := copulaSample(c, 2000)
		got := stat.Kendall(us, vs, nil)
		if math.Abs(got-c.Tau()) > 0.03 {
			t.Errorf("%v(θ=%v): sample τ = %v, want ≈%v", c.Family(), c.Theta(), got, c.Tau())
		}
	}
}

func TestPseudoLikelihoodGumbel(t *testing.T) {
	truth := NewGumbel(2)
	us, vs := copulaSample(truth, 4000)

	// Push the uniform sample through margins so Estimate sees
	// data on its natural scale; ranks undo the transform.
	mx := dist.NewNormal(10, 2)
	my := dist.NewExponential(0.5)
	xs := make([]float64, len(us))
	ys := make([]float64, len(vs))
	for i := range us {
		xs[i] = mx.InvCDF(us[i])
		ys[i] = my.InvCDF(vs[i])
	}

	c := NewGumbel(1)
	if err := Estimate(c, xs, ys, PseudoLikelihood); err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.Theta()-2) > 1e-2 {
		t.Errorf("θ = %v, want 2 ± 0.01", c.Theta())
	}
}

func TestPseudoLikelihoodAllFamilies(t *testing.T) {
	for _, truth := range testFamilies() {
		us, vs := copulaSample(truth, 2000)
		c, err := New(truth.Family(), truth.Theta())
		if err != nil {
			t.Fatal(err)
		}
		if err := Estimate(c, us, vs, PseudoLikelihood); err != nil {
			t.Fatalf("%v: %v", truth.Family(), err)
		}
		wantTau := truth.Tau()
		if math.Abs(c.Tau()-wantTau) > 0.05 {
			t.Errorf("%v(θ=%v): fitted θ = %v implies τ = %v, want ≈%v",
				truth.Family(), truth.Theta(), c.Theta(), c.Tau(), wantTau)
		}
	}
}

func TestInferenceFromMargins(t *testing.T) {
	truth := NewClayton(2)
	us, vs := copulaSample(truth, 3000)
	mx := dist.NewNormal(5, 1.5)
	my := dist.NewNormal(-1, 0.5)
	xs := make([]float64, len(us))
	ys := make([]float64, len(vs))
	for i := range us {
		xs[i] = mx.InvCDF(us[i])
		ys[i] = my.InvCDF(vs[i])
	}

	c := NewClayton(1)
	c.SetMargins(dist.NewNormal(0, 1), dist.NewNormal(0, 1))
	if err := Estimate(c, xs, ys, InferenceFromMargins); err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.Theta()-2) > 0.1 {
		t.Errorf("θ = %v, want ≈2", c.Theta())
	}
	gx, _ := c.Margins()
	if p := gx.Params(); math.Abs(p[0]-5) > 0.05 || math.Abs(p[1]-1.5) > 0.05 {
		t.Errorf("x margin fitted to %v, want ≈[5, 1.5]", p)
	}
}

func TestFullLikelihood(t *testing.T) {
	truth := NewFrank(5)
	us, vs := copulaSample(truth, 1500)
	mx := dist.NewNormal(3, 1)
	my := dist.NewExponential(2)
	xs := make([]float64, len(us))
	ys := make([]float64, len(vs))
	for i := range us {
		xs[i] = mx.InvCDF(us[i])
		ys[i] = my.InvCDF(vs[i])
	}

	c := NewFrank(1)
	c.SetMargins(dist.NewNormal(0, 1), dist.NewExponential(1))
	if err := Estimate(c, xs, ys, FullLikelihood); err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.Theta()-5) > 0.3 {
		t.Errorf("θ = %v, want ≈5", c.Theta())
	}
	gx, gy := c.Margins()
	if p := gx.Params(); math.Abs(p[0]-3) > 0.1 || math.Abs(p[1]-1) > 0.1 {
		t.Errorf("x margin fitted to %v, want ≈[3, 1]", p)
	}
	if p := gy.Params(); math.Abs(p[0]-2) > 0.2 {
		t.Errorf("y margin fitted to %v, want ≈[2]", p)
	}
}

func TestEstimateErrors(t *testing.T) {
	c := NewGumbel(2)
	short := []float64{1, 2, 3}
	if err := Estimate(c, short, short, PseudoLikelihood); !errors.Is(err, dist.ErrSampleSize) {
		t.Errorf("short sample: %v, want ErrSampleSize", err)
	}
	if err := Estimate(c, []float64{1, 2, 3, 4, 5}, short, PseudoLikelihood); !errors.Is(err, dist.ErrSampleSize) {
		t.Errorf("mismatched lengths: %v, want ErrSampleSize", err)
	}

	xs := []float64{1, 2, 3, 4, 5, 6}
	if err := Estimate(c, xs, xs, InferenceFromMargins); !errors.Is(err, ErrEstimation) {
		t.Errorf("missing margins: %v, want ErrEstimation", err)
	}
	if err := Estimate(c, xs, xs, Method(99)); !errors.Is(err, ErrEstimation) {
		t.Errorf("unknown method: %v, want ErrEstimation", err)
	}
}

func TestLogLikelihoodClamp(t *testing.T) {
	c := NewGumbel(2)
	// A boundary pair has zero density; the log-likelihood must
	// stay finite through the clamp.
	ll := LogLikelihood(c, []float64{0.5, 0}, []float64{0.5, 0.5})
	if math.IsInf(ll, 0) || math.IsNaN(ll) {
		t.Errorf("log-likelihood with zero density = %v, want finite", ll)
	}
	if ll > -1e300 {
		t.Errorf("log-likelihood = %v, want the clamp to dominate", ll)
	}
}
