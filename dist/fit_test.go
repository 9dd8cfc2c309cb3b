// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
	"testing"
)

// gridSample draws n values from d at the quantiles (i+0.5)/n. Such
// an "ideal" sample has essentially the population's shape, which
// makes fit recovery deterministic.
func gridSample(d Continuous, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.InvCDF((float64(i) + 0.5) / float64(n))
	}
	return xs
}

func TestNormalFits(t *testing.T) {
	xs := gridSample(NewNormal(3, 1.5), 400)

	var mle Normal
	if err := mle.FitMLE(xs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(mle.Mu-3) > 0.01 || math.Abs(mle.Sigma-1.5) > 0.05 {
		t.Errorf("MLE = (%v, %v), want (3, 1.5)", mle.Mu, mle.Sigma)
	}

	var mom Normal
	if err := mom.FitMoments(xs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(mom.Mu-3) > 0.01 || math.Abs(mom.Sigma-1.5) > 0.05 {
		t.Errorf("moments = (%v, %v), want (3, 1.5)", mom.Mu, mom.Sigma)
	}

	var lm Normal
	if err := lm.FitLinearMoments(xs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(lm.Mu-3) > 0.01 || math.Abs(lm.Sigma-1.5) > 0.05 {
		t.Errorf("L-moments = (%v, %v), want (3, 1.5)", lm.Mu, lm.Sigma)
	}
}

func TestExponentialFits(t *testing.T) {
	xs := gridSample(NewExponential(0.5), 500)

	var d Exponential
	if err := d.FitMLE(xs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(d.Lambda-0.5) > 0.02 {
		t.Errorf("MLE rate = %v, want 0.5", d.Lambda)
	}

	var lm Exponential
	if err := lm.FitLinearMoments(xs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(lm.Lambda-0.5) > 0.03 {
		t.Errorf("L-moment rate = %v, want 0.5", lm.Lambda)
	}
}

func TestUniformFits(t *testing.T) {
	xs := gridSample(NewUniform(-2, 4), 300)

	var d Uniform
	if err := d.FitMLE(xs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(d.Min-(-2)) > 0.05 || math.Abs(d.Max-4) > 0.05 {
		t.Errorf("MLE = [%v, %v], want [-2, 4]", d.Min, d.Max)
	}

	var mom Uniform
	if err := mom.FitMoments(xs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(mom.Min-(-2)) > 0.1 || math.Abs(mom.Max-4) > 0.1 {
		t.Errorf("moments = [%v, %v], want [-2, 4]", mom.Min, mom.Max)
	}
}

func TestWeibullFits(t *testing.T) {
	xs := gridSample(NewWeibull(2, 3), 400)

	var d Weibull
	if err := d.FitMLE(xs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(d.Shape-2) > 0.1 || math.Abs(d.Scale-3) > 0.1 {
		t.Errorf("MLE = (%v, %v), want (2, 3)", d.Shape, d.Scale)
	}

	var mom Weibull
	if err := mom.FitMoments(xs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(mom.Shape-2) > 0.15 || math.Abs(mom.Scale-3) > 0.1 {
		t.Errorf("moments = (%v, %v), want (2, 3)", mom.Shape, mom.Scale)
	}

	// Non-positive sample values cannot come from a Weibull.
	err := d.FitMLE([]float64{-1, 2, 3})
	if !errors.Is(err, ErrSampleSize) {
		t.Errorf("negative data: err = %v, want ErrSampleSize", err)
	}
}

func TestTriangularFitMLE(t *testing.T) {
	xs := gridSample(NewTriangular(0, 2, 5), 300)

	var d Triangular
	if err := d.FitMLE(xs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(d.Min-0) > 0.4 || math.Abs(d.Mode-2) > 0.6 || math.Abs(d.Max-5) > 0.4 {
		t.Errorf("MLE = (%v, %v, %v), want ≈(0, 2, 5)", d.Min, d.Mode, d.Max)
	}
}

func TestGEVFits(t *testing.T) {
	truth := NewGEV(10, 2, 0.15)
	xs := gridSample(truth, 500)

	var lm GEV
	if err := lm.FitLinearMoments(xs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(lm.Location-10) > 0.15 || math.Abs(lm.Scale-2) > 0.15 || math.Abs(lm.Shape-0.15) > 0.05 {
		t.Errorf("L-moments = (%v, %v, %v), want (10, 2, 0.15)",
			lm.Location, lm.Scale, lm.Shape)
	}

	var mle GEV
	if err := mle.FitMLE(xs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(mle.Location-10) > 0.2 || math.Abs(mle.Scale-2) > 0.2 || math.Abs(mle.Shape-0.15) > 0.08 {
		t.Errorf("MLE = (%v, %v, %v), want (10, 2, 0.15)",
			mle.Location, mle.Scale, mle.Shape)
	}
}

func TestFitSampleSizeErrors(t *testing.T) {
	tiny := []float64{1}
	fits := []func() error{
		func() error { return new(Normal).FitMLE(tiny) },
		func() error { return new(Uniform).FitMLE(tiny) },
		func() error { return new(Triangular).FitMLE(tiny) },
		func() error { return new(Exponential).FitMLE(tiny) },
		func() error { return new(Weibull).FitMLE(tiny) },
		func() error { return new(GEV).FitMLE(tiny) },
	}
	for i, fit := range fits {
		if err := fit(); !errors.Is(err, ErrSampleSize) {
			t.Errorf("fit %d: err = %v, want ErrSampleSize", i, err)
		}
	}
}
