// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/optimize"
)

// GEV is the generalized extreme value distribution in the Hosking
// parameterization: location Location, scale Scale > 0, and shape
// Shape. Shape = 0 reduces to the Gumbel distribution, Shape > 0
// gives a bounded upper tail, and Shape < 0 a bounded lower tail.
type GEV struct {
	Location, Scale, Shape float64
}

func NewGEV(location, scale, shape float64) *GEV {
	return &GEV{Location: location, Scale: scale, Shape: shape}
}

func (d *GEV) Family() Family { return FamilyGEV }

func (d *GEV) Params() []float64 { return []float64{d.Location, d.Scale, d.Shape} }

func (d *GEV) ValidateParams(p []float64) error {
	if len(p) != 3 {
		return paramCountErr(FamilyGEV, 3, len(p))
	}
	if !allFinite(p) || p[1] <= 0 {
		return fmt.Errorf("gev: scale must be finite and positive, got %g: %w", p[1], ErrParameter)
	}
	return nil
}

func (d *GEV) SetParams(p []float64) error {
	if err := d.ValidateParams(p); err != nil {
		return err
	}
	d.Location, d.Scale, d.Shape = p[0], p[1], p[2]
	return nil
}

func (d *GEV) valid() bool { return d.ValidateParams(d.Params()) == nil }

// reduced returns the reduced variate y with F(x) = exp(-e^{-y}),
// and whether x lies inside the support.
func (d *GEV) reduced(x float64) (float64, bool) {
	z := (x - d.Location) / d.Scale
	if d.Shape == 0 {
		return z, true
	}
	arg := 1 - d.Shape*z
	if arg <= 0 {
		return 0, false
	}
	return -math.Log(arg) / d.Shape, true
}

func (d *GEV) PDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	y, ok := d.reduced(x)
	if !ok {
		return 0
	}
	return math.Exp(-(1-d.Shape)*y-math.Exp(-y)) / d.Scale
}

func (d *GEV) CDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	y, ok := d.reduced(x)
	if !ok {
		// Outside the support: below it for Shape < 0, above
		// it for Shape > 0.
		if d.Shape < 0 {
			return 0
		}
		return 1
	}
	return math.Exp(-math.Exp(-y))
}

func (d *GEV) InvCDF(p float64) float64 {
	if !d.valid() || p < 0 || p > 1 {
		return nan
	}
	lo, hi := d.Support()
	switch p {
	case 0:
		return lo
	case 1:
		return hi
	}
	if d.Shape == 0 {
		return d.Location - d.Scale*math.Log(-math.Log(p))
	}
	return d.Location + d.Scale*(1-math.Pow(-math.Log(p), d.Shape))/d.Shape
}

func (d *GEV) LogPDF(x float64) float64 {
	if !d.valid() {
		return mathx.LogMin
	}
	y, ok := d.reduced(x)
	if !ok {
		return mathx.LogMin
	}
	return -(1-d.Shape)*y - math.Exp(-y) - math.Log(d.Scale)
}

func (d *GEV) LogCDF(x float64) float64 { return mathx.LogClamp(d.CDF(x)) }

func (d *GEV) Support() (lo, hi float64) {
	switch {
	case d.Shape > 0:
		return -inf, d.Location + d.Scale/d.Shape
	case d.Shape < 0:
		return d.Location + d.Scale/d.Shape, inf
	}
	return -inf, inf
}

func (d *GEV) Clone() Continuous {
	c := *d
	return &c
}

// eulerGamma is the Euler-Mascheroni constant.
const eulerGamma = 0.5772156649015329

// FitLinearMoments fits the three parameters from sample L-moments
// using Hosking's rational approximation for the shape.
//
// Hosking, J. R. M., Wallis, J. R., Wood, E. F. (1985). "Estimation
// of the Generalized Extreme-Value Distribution by the Method of
// Probability-Weighted Moments". Technometrics 27 (3): 251-261.
func (d *GEV) FitLinearMoments(xs []float64) error {
	if len(xs) < 3 {
		return fmt.Errorf("gev L-moments: %w", ErrSampleSize)
	}
	l1, l2, t3 := Sample{Xs: xs}.LMoments()
	if !(l2 > 0) {
		return fmt.Errorf("gev L-moments: λ₂ = %g not positive: %w", l2, ErrSampleSize)
	}

	c := 2/(3+t3) - math.Ln2/math.Log(3)
	shape := 7.8590*c + 2.9554*c*c
	if math.Abs(shape) < 1e-8 {
		// Gumbel limit.
		scale := l2 / math.Ln2
		return d.SetParams([]float64{l1 - eulerGamma*scale, scale, 0})
	}
	g := math.Gamma(1 + shape)
	scale := l2 * shape / ((1 - math.Pow(2, -shape)) * g)
	location := l1 - scale*(1-g)/shape
	return d.SetParams([]float64{location, scale, shape})
}

// FitMLE fits the three parameters by numerical likelihood
// maximization, starting from the L-moment estimates. Samples whose
// likelihood surface has no interior optimum (small n with strongly
// bounded tails) report an estimation failure rather than a
// boundary fit.
func (d *GEV) FitMLE(xs []float64) error {
	if len(xs) < 5 {
		return fmt.Errorf("gev MLE: %w", ErrSampleSize)
	}
	start := &GEV{}
	if err := start.FitLinearMoments(xs); err != nil {
		return err
	}

	work := &GEV{}
	nm := &optimize.NelderMead{
		Func: func(p []float64) float64 {
			if work.SetParams(p) != nil {
				return -mathx.LogMin
			}
			ll := 0.0
			for _, x := range xs {
				ll += work.LogPDF(x)
			}
			return -ll
		},
		Initial:  start.Params(),
		Settings: optimize.DefaultSettings(),
	}
	if err := nm.Minimize(); err != nil {
		return fmt.Errorf("gev MLE: %w", err)
	}
	return d.SetParams(nm.BestParameterSet().Values)
}
