// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
)

// Uniform is the continuous uniform distribution on [Min, Max].
type Uniform struct {
	Min, Max float64
}

func NewUniform(min, max float64) *Uniform {
	return &Uniform{Min: min, Max: max}
}

func (d *Uniform) Family() Family { return FamilyUniform }

func (d *Uniform) Params() []float64 { return []float64{d.Min, d.Max} }

func (d *Uniform) ValidateParams(p []float64) error {
	if len(p) != 2 {
		return paramCountErr(FamilyUniform, 2, len(p))
	}
	if !allFinite(p) || p[0] >= p[1] {
		return fmt.Errorf("uniform: want finite Min < Max, got [%g, %g]: %w", p[0], p[1], ErrParameter)
	}
	return nil
}

func (d *Uniform) SetParams(p []float64) error {
	if err := d.ValidateParams(p); err != nil {
		return err
	}
	d.Min, d.Max = p[0], p[1]
	return nil
}

func (d *Uniform) valid() bool { return d.ValidateParams(d.Params()) == nil }

func (d *Uniform) PDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	if x < d.Min || x > d.Max {
		return 0
	}
	return 1 / (d.Max - d.Min)
}

func (d *Uniform) CDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	if x < d.Min {
		return 0
	}
	if x > d.Max {
		return 1
	}
	return (x - d.Min) / (d.Max - d.Min)
}

func (d *Uniform) InvCDF(p float64) float64 {
	if !d.valid() || p < 0 || p > 1 {
		return nan
	}
	return d.Min + p*(d.Max-d.Min)
}

func (d *Uniform) LogPDF(x float64) float64 { return mathx.LogClamp(d.PDF(x)) }

func (d *Uniform) LogCDF(x float64) float64 { return mathx.LogClamp(d.CDF(x)) }

func (d *Uniform) Support() (lo, hi float64) { return d.Min, d.Max }

func (d *Uniform) Clone() Continuous {
	c := *d
	return &c
}

// FitMLE sets Min and Max to the sample extremes, their maximum
// likelihood estimates.
func (d *Uniform) FitMLE(xs []float64) error {
	if len(xs) < 2 {
		return fmt.Errorf("uniform MLE: %w", ErrSampleSize)
	}
	min, max := Sample{Xs: xs}.Bounds()
	if min == max {
		return fmt.Errorf("uniform MLE: all sample values equal: %w", ErrSampleSize)
	}
	return d.SetParams([]float64{min, max})
}

// FitMoments sets Min and Max so the distribution matches the sample
// mean and variance: mean ± √3·σ.
func (d *Uniform) FitMoments(xs []float64) error {
	if len(xs) < 2 {
		return fmt.Errorf("uniform moments: %w", ErrSampleSize)
	}
	s := Sample{Xs: xs}
	mean, sd := s.Mean(), s.StdDev()
	if sd == 0 {
		return fmt.Errorf("uniform moments: all sample values equal: %w", ErrSampleSize)
	}
	half := math.Sqrt(3) * sd
	return d.SetParams([]float64{mean - half, mean + half})
}
