// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/rootfind"
)

// Weibull is the two-parameter Weibull distribution with shape
// Shape > 0 and scale Scale > 0.
type Weibull struct {
	Shape, Scale float64
}

func NewWeibull(shape, scale float64) *Weibull {
	return &Weibull{Shape: shape, Scale: scale}
}

func (d *Weibull) Family() Family { return FamilyWeibull }

func (d *Weibull) Params() []float64 { return []float64{d.Shape, d.Scale} }

func (d *Weibull) ValidateParams(p []float64) error {
	if len(p) != 2 {
		return paramCountErr(FamilyWeibull, 2, len(p))
	}
	if !allFinite(p) || p[0] <= 0 || p[1] <= 0 {
		return fmt.Errorf("weibull: shape and scale must be finite and positive, got %v: %w", p, ErrParameter)
	}
	return nil
}

func (d *Weibull) SetParams(p []float64) error {
	if err := d.ValidateParams(p); err != nil {
		return err
	}
	d.Shape, d.Scale = p[0], p[1]
	return nil
}

func (d *Weibull) valid() bool { return d.ValidateParams(d.Params()) == nil }

func (d *Weibull) PDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	if x < 0 {
		return 0
	}
	k, l := d.Shape, d.Scale
	z := x / l
	return k / l * math.Pow(z, k-1) * math.Exp(-math.Pow(z, k))
}

func (d *Weibull) CDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	if x < 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/d.Scale, d.Shape))
}

func (d *Weibull) InvCDF(p float64) float64 {
	if !d.valid() || p < 0 || p > 1 {
		return nan
	}
	if p == 1 {
		return inf
	}
	return d.Scale * math.Pow(-math.Log1p(-p), 1/d.Shape)
}

func (d *Weibull) LogPDF(x float64) float64 {
	if !d.valid() || x < 0 {
		return mathx.LogMin
	}
	if x == 0 {
		return mathx.LogClamp(d.PDF(0))
	}
	k, l := d.Shape, d.Scale
	z := x / l
	return math.Log(k/l) + (k-1)*math.Log(z) - math.Pow(z, k)
}

func (d *Weibull) LogCDF(x float64) float64 { return mathx.LogClamp(d.CDF(x)) }

func (d *Weibull) Support() (lo, hi float64) { return 0, inf }

func (d *Weibull) Clone() Continuous {
	c := *d
	return &c
}

// FitMLE fits Shape and Scale by maximum likelihood. The shape is
// the root of the profile likelihood equation
//
//	Σxᵢᵏ·ln xᵢ / Σxᵢᵏ - 1/k - mean(ln x) = 0
//
// solved with Brent's method after bracketing, and the scale follows
// in closed form. All sample values must be positive.
func (d *Weibull) FitMLE(xs []float64) error {
	if len(xs) < 2 {
		return fmt.Errorf("weibull MLE: %w", ErrSampleSize)
	}
	meanLog := 0.0
	for _, x := range xs {
		if !(x > 0) {
			return fmt.Errorf("weibull MLE: sample value %g not positive: %w", x, ErrSampleSize)
		}
		meanLog += math.Log(x)
	}
	meanLog /= float64(len(xs))

	profile := func(k float64) float64 {
		var num, den float64
		for _, x := range xs {
			xk := math.Pow(x, k)
			num += xk * math.Log(x)
			den += xk
		}
		return num/den - 1/k - meanLog
	}
	// Solve for ln k so interval expansion cannot cross into
	// non-positive shapes.
	logProfile := func(t float64) float64 { return profile(math.Exp(t)) }
	lo, hi, ok := rootfind.Bracket(logProfile, math.Log(0.5), math.Log(2))
	if !ok {
		return fmt.Errorf("weibull MLE: could not bracket the shape: %w", ErrSampleSize)
	}
	t, err := rootfind.Brent(logProfile, lo, hi, 1e-12)
	if err != nil {
		return fmt.Errorf("weibull MLE: %w", err)
	}
	k := math.Exp(t)

	sum := 0.0
	for _, x := range xs {
		sum += math.Pow(x, k)
	}
	scale := math.Pow(sum/float64(len(xs)), 1/k)
	return d.SetParams([]float64{k, scale})
}

// FitMoments fits Shape and Scale by matching the sample mean and
// variance. The shape solves CV² = Γ(1+2/k)/Γ(1+1/k)² - 1 by root
// finding; the scale then matches the mean.
func (d *Weibull) FitMoments(xs []float64) error {
	if len(xs) < 2 {
		return fmt.Errorf("weibull moments: %w", ErrSampleSize)
	}
	s := Sample{Xs: xs}
	mean, sd := s.Mean(), s.StdDev()
	if !(mean > 0) || !(sd > 0) {
		return fmt.Errorf("weibull moments: need positive mean and spread: %w", ErrSampleSize)
	}
	cv2 := (sd / mean) * (sd / mean)

	f := func(k float64) float64 {
		g1 := math.Gamma(1 + 1/k)
		g2 := math.Gamma(1 + 2/k)
		return g2/(g1*g1) - 1 - cv2
	}
	logF := func(t float64) float64 { return f(math.Exp(t)) }
	lo, hi, ok := rootfind.Bracket(logF, math.Log(0.5), math.Log(2))
	if !ok {
		return fmt.Errorf("weibull moments: could not bracket the shape: %w", ErrSampleSize)
	}
	t, err := rootfind.Brent(logF, lo, hi, 1e-12)
	if err != nil {
		return fmt.Errorf("weibull moments: %w", err)
	}
	k := math.Exp(t)
	scale := mean / math.Gamma(1+1/k)
	return d.SetParams([]float64{k, scale})
}
