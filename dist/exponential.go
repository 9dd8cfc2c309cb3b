// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
)

// Exponential is the exponential distribution with rate Lambda > 0.
type Exponential struct {
	Lambda float64
}

func NewExponential(lambda float64) *Exponential {
	return &Exponential{Lambda: lambda}
}

func (d *Exponential) Family() Family { return FamilyExponential }

func (d *Exponential) Params() []float64 { return []float64{d.Lambda} }

func (d *Exponential) ValidateParams(p []float64) error {
	if len(p) != 1 {
		return paramCountErr(FamilyExponential, 1, len(p))
	}
	if !allFinite(p) || p[0] <= 0 {
		return fmt.Errorf("exponential: rate must be finite and positive, got %g: %w", p[0], ErrParameter)
	}
	return nil
}

func (d *Exponential) SetParams(p []float64) error {
	if err := d.ValidateParams(p); err != nil {
		return err
	}
	d.Lambda = p[0]
	return nil
}

func (d *Exponential) valid() bool { return d.ValidateParams(d.Params()) == nil }

func (d *Exponential) PDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	if x < 0 {
		return 0
	}
	return d.Lambda * math.Exp(-d.Lambda*x)
}

func (d *Exponential) CDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	if x < 0 {
		return 0
	}
	return -math.Expm1(-d.Lambda * x)
}

func (d *Exponential) InvCDF(p float64) float64 {
	if !d.valid() || p < 0 || p > 1 {
		return nan
	}
	if p == 1 {
		return inf
	}
	return -math.Log1p(-p) / d.Lambda
}

func (d *Exponential) LogPDF(x float64) float64 {
	if !d.valid() || x < 0 {
		return mathx.LogMin
	}
	return math.Log(d.Lambda) - d.Lambda*x
}

func (d *Exponential) LogCDF(x float64) float64 { return mathx.LogClamp(d.CDF(x)) }

func (d *Exponential) Support() (lo, hi float64) { return 0, inf }

func (d *Exponential) Clone() Continuous {
	c := *d
	return &c
}

// FitMLE sets Lambda to 1/mean, the maximum likelihood estimate.
func (d *Exponential) FitMLE(xs []float64) error {
	if len(xs) < 2 {
		return fmt.Errorf("exponential MLE: %w", ErrSampleSize)
	}
	mean := Sample{Xs: xs}.Mean()
	if !(mean > 0) {
		return fmt.Errorf("exponential MLE: sample mean %g not positive: %w", mean, ErrSampleSize)
	}
	return d.SetParams([]float64{1 / mean})
}

// FitMoments is identical to FitMLE for this family.
func (d *Exponential) FitMoments(xs []float64) error { return d.FitMLE(xs) }

// FitLinearMoments sets Lambda from the second L-moment,
// λ₂ = 1/(2·Lambda).
func (d *Exponential) FitLinearMoments(xs []float64) error {
	if len(xs) < 3 {
		return fmt.Errorf("exponential L-moments: %w", ErrSampleSize)
	}
	_, l2, _ := Sample{Xs: xs}.LMoments()
	if !(l2 > 0) {
		return fmt.Errorf("exponential L-moments: λ₂ = %g not positive: %w", l2, ErrSampleSize)
	}
	return d.SetParams([]float64{1 / (2 * l2)})
}
