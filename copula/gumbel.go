// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"fmt"
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/dist"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
)

// Gumbel is the Gumbel-Hougaard Archimedean copula with generator
// φ(t) = (-ln t)^θ and θ >= 1. It models upper-tail dependence;
// θ = 1 is independence.
type Gumbel struct {
	theta float64
	margins
}

// NewGumbel returns a Gumbel copula with a provisional θ, validated
// lazily on first use.
func NewGumbel(theta float64) *Gumbel { return &Gumbel{theta: theta} }

func (c *Gumbel) Family() Family { return FamilyGumbel }

func (c *Gumbel) Theta() float64 { return c.theta }

func (c *Gumbel) ThetaBounds() (lo, hi float64) { return 1, math.Inf(1) }

func (c *Gumbel) ValidateTheta(theta float64) error {
	if !finite(theta) || theta < 1 {
		return thetaErr(FamilyGumbel, theta, "[1, ∞)")
	}
	return nil
}

func (c *Gumbel) SetTheta(theta float64) error {
	if err := c.ValidateTheta(theta); err != nil {
		return err
	}
	c.theta = theta
	return nil
}

func (c *Gumbel) valid() bool { return c.ValidateTheta(c.theta) == nil }

// Generator returns φ(t) = (-ln t)^θ.
func (c *Gumbel) Generator(t float64) float64 {
	return mathx.SignPow(-math.Log(t), c.theta)
}

// GeneratorInv returns φ⁻¹(s) = exp(-s^(1/θ)).
func (c *Gumbel) GeneratorInv(s float64) float64 {
	return math.Exp(-mathx.SignPow(s, 1/c.theta))
}

// GeneratorPrime returns φ'(t) = -θ(-ln t)^(θ-1)/t.
func (c *Gumbel) GeneratorPrime(t float64) float64 {
	return -c.theta * mathx.SignPow(-math.Log(t), c.theta-1) / t
}

// GeneratorPrime2 returns φ''(t) = θ(-ln t)^(θ-2)·((θ-1) - ln t)/t².
func (c *Gumbel) GeneratorPrime2(t float64) float64 {
	l := -math.Log(t)
	return c.theta * mathx.SignPow(l, c.theta-2) * (c.theta - 1 + l) / (t * t)
}

// GeneratorPrimeInv has no closed form for this family.
func (c *Gumbel) GeneratorPrimeInv(x float64) (float64, error) {
	return nan, fmt.Errorf("gumbel: generator prime inverse: %w", dist.ErrUnsupported)
}

func (c *Gumbel) PDF(u, v float64) float64 {
	if !c.valid() {
		return nan
	}
	return archPDF(c, u, v)
}

func (c *Gumbel) CDF(u, v float64) float64 {
	if !c.valid() {
		return nan
	}
	return archCDF(c, u, v)
}

func (c *Gumbel) CondInvCDF(u, p float64) float64 {
	if !c.valid() {
		return nan
	}
	return archCondInv(c, u, p)
}

// Tau returns Kendall's tau, 1 - 1/θ.
func (c *Gumbel) Tau() float64 {
	if !c.valid() {
		return nan
	}
	return 1 - 1/c.theta
}

// SetThetaFromTau sets θ = 1/(1-τ). The Gumbel copula only attains
// τ in [0, 1).
func (c *Gumbel) SetThetaFromTau(tau float64) error {
	if !(tau >= 0 && tau < 1) {
		return fmt.Errorf("gumbel: τ = %g outside [0, 1): %w", tau, dist.ErrParameter)
	}
	return c.SetTheta(1 / (1 - tau))
}

func (c *Gumbel) Clone() Bivariate {
	return &Gumbel{theta: c.theta, margins: c.cloneMargins()}
}
