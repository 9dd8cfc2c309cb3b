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

// Triangular is the triangular distribution on [Min, Max] with mode
// Mode, Min <= Mode <= Max.
type Triangular struct {
	Min, Mode, Max float64
}

func NewTriangular(min, mode, max float64) *Triangular {
	return &Triangular{Min: min, Mode: mode, Max: max}
}

func (d *Triangular) Family() Family { return FamilyTriangular }

func (d *Triangular) Params() []float64 { return []float64{d.Min, d.Mode, d.Max} }

func (d *Triangular) ValidateParams(p []float64) error {
	if len(p) != 3 {
		return paramCountErr(FamilyTriangular, 3, len(p))
	}
	if !allFinite(p) || p[0] > p[1] || p[1] > p[2] || p[0] >= p[2] {
		return fmt.Errorf("triangular: want finite Min <= Mode <= Max with Min < Max, got %v: %w", p, ErrParameter)
	}
	return nil
}

func (d *Triangular) SetParams(p []float64) error {
	if err := d.ValidateParams(p); err != nil {
		return err
	}
	d.Min, d.Mode, d.Max = p[0], p[1], p[2]
	return nil
}

func (d *Triangular) valid() bool { return d.ValidateParams(d.Params()) == nil }

func (d *Triangular) PDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	a, c, b := d.Min, d.Mode, d.Max
	switch {
	case x < a || x > b:
		return 0
	case x < c:
		return 2 * (x - a) / ((b - a) * (c - a))
	case x == c:
		return 2 / (b - a)
	default:
		return 2 * (b - x) / ((b - a) * (b - c))
	}
}

func (d *Triangular) CDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	a, c, b := d.Min, d.Mode, d.Max
	switch {
	case x <= a:
		return 0
	case x >= b:
		return 1
	case x <= c:
		z := x - a
		return z * z / ((b - a) * (c - a))
	default:
		z := b - x
		return 1 - z*z/((b-a)*(b-c))
	}
}

func (d *Triangular) InvCDF(p float64) float64 {
	if !d.valid() || p < 0 || p > 1 {
		return nan
	}
	a, c, b := d.Min, d.Mode, d.Max
	pc := (c - a) / (b - a) // CDF at the mode
	if p <= pc {
		return a + math.Sqrt(p*(b-a)*(c-a))
	}
	return b - math.Sqrt((1-p)*(b-a)*(b-c))
}

func (d *Triangular) LogPDF(x float64) float64 { return mathx.LogClamp(d.PDF(x)) }

func (d *Triangular) LogCDF(x float64) float64 { return mathx.LogClamp(d.CDF(x)) }

func (d *Triangular) Support() (lo, hi float64) { return d.Min, d.Max }

func (d *Triangular) Clone() Continuous {
	c := *d
	return &c
}

// FitMLE fits Min, Mode, and Max by numerical likelihood
// maximization. The bounds have no closed-form estimate because the
// likelihood is only positive when Min < min(xs) and Max > max(xs),
// so the search runs over a box spanning one sample range beyond the
// extremes.
func (d *Triangular) FitMLE(xs []float64) error {
	if len(xs) < 3 {
		return fmt.Errorf("triangular MLE: %w", ErrSampleSize)
	}
	lo, hi := Sample{Xs: xs}.Bounds()
	if lo == hi {
		return fmt.Errorf("triangular MLE: all sample values equal: %w", ErrSampleSize)
	}
	span := hi - lo

	work := &Triangular{}
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
		Initial:  []float64{lo - 0.05*span, 0.5 * (lo + hi), hi + 0.05*span},
		Lower:    []float64{lo - span, lo, hi},
		Upper:    []float64{lo, hi, hi + span},
		Settings: optimize.DefaultSettings(),
	}
	if err := nm.Minimize(); err != nil {
		return fmt.Errorf("triangular MLE: %w", err)
	}
	return d.SetParams(nm.BestParameterSet().Values)
}
