// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
)

// Normal is the normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma > 0.
type Normal struct {
	Mu, Sigma float64
}

// NewNormal returns a normal distribution with the given mean and
// standard deviation. The parameters are provisional; they are
// validated on SetParams or first use.
func NewNormal(mu, sigma float64) *Normal {
	return &Normal{Mu: mu, Sigma: sigma}
}

func (d *Normal) Family() Family { return FamilyNormal }

func (d *Normal) Params() []float64 { return []float64{d.Mu, d.Sigma} }

func (d *Normal) ValidateParams(p []float64) error {
	if len(p) != 2 {
		return paramCountErr(FamilyNormal, 2, len(p))
	}
	if !allFinite(p) || p[1] <= 0 {
		return fmt.Errorf("normal: standard deviation must be finite and positive, got %g: %w", p[1], ErrParameter)
	}
	return nil
}

func (d *Normal) SetParams(p []float64) error {
	if err := d.ValidateParams(p); err != nil {
		return err
	}
	d.Mu, d.Sigma = p[0], p[1]
	return nil
}

func (d *Normal) valid() bool { return d.ValidateParams(d.Params()) == nil }

func (d *Normal) dist() distuv.Normal { return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma} }

func (d *Normal) PDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	return d.dist().Prob(x)
}

func (d *Normal) CDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	return d.dist().CDF(x)
}

func (d *Normal) InvCDF(p float64) float64 {
	if !d.valid() || p < 0 || p > 1 {
		return nan
	}
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return d.dist().Quantile(p)
}

func (d *Normal) LogPDF(x float64) float64 {
	if !d.valid() {
		return mathx.LogMin
	}
	return d.dist().LogProb(x)
}

func (d *Normal) LogCDF(x float64) float64 { return mathx.LogClamp(d.CDF(x)) }

func (d *Normal) Support() (lo, hi float64) { return -inf, inf }

func (d *Normal) Clone() Continuous {
	c := *d
	return &c
}

// FitMLE sets Mu and Sigma to their maximum likelihood estimates:
// the sample mean and the biased (1/n) standard deviation.
func (d *Normal) FitMLE(xs []float64) error {
	if len(xs) < 2 {
		return fmt.Errorf("normal MLE: %w", ErrSampleSize)
	}
	mean := Sample{Xs: xs}.Mean()
	ss := 0.0
	for _, x := range xs {
		z := x - mean
		ss += z * z
	}
	sigma := math.Sqrt(ss / float64(len(xs)))
	return d.SetParams([]float64{mean, sigma})
}

// FitMoments sets Mu and Sigma from the sample mean and unbiased
// standard deviation.
func (d *Normal) FitMoments(xs []float64) error {
	if len(xs) < 2 {
		return fmt.Errorf("normal moments: %w", ErrSampleSize)
	}
	s := Sample{Xs: xs}
	return d.SetParams([]float64{s.Mean(), s.StdDev()})
}

// FitLinearMoments sets Mu and Sigma from the sample L-moments,
// using σ = λ₂·√π.
func (d *Normal) FitLinearMoments(xs []float64) error {
	if len(xs) < 3 {
		return fmt.Errorf("normal L-moments: %w", ErrSampleSize)
	}
	l1, l2, _ := Sample{Xs: xs}.LMoments()
	return d.SetParams([]float64{l1, l2 * math.Sqrt(math.Pi)})
}
