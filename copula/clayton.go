// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"fmt"
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/dist"
)

// Clayton is the Clayton Archimedean copula with generator
// φ(t) = (t^-θ - 1)/θ and θ > 0. It models lower-tail dependence;
// θ → 0 approaches independence.
type Clayton struct {
	theta float64
	margins
}

// NewClayton returns a Clayton copula with a provisional θ,
// validated lazily on first use.
func NewClayton(theta float64) *Clayton { return &Clayton{theta: theta} }

func (c *Clayton) Family() Family { return FamilyClayton }

func (c *Clayton) Theta() float64 { return c.theta }

func (c *Clayton) ThetaBounds() (lo, hi float64) { return 0, math.Inf(1) }

func (c *Clayton) ValidateTheta(theta float64) error {
	if !finite(theta) || theta <= 0 {
		return thetaErr(FamilyClayton, theta, "(0, ∞)")
	}
	return nil
}

func (c *Clayton) SetTheta(theta float64) error {
	if err := c.ValidateTheta(theta); err != nil {
		return err
	}
	c.theta = theta
	return nil
}

func (c *Clayton) valid() bool { return c.ValidateTheta(c.theta) == nil }

// Generator returns φ(t) = (t^-θ - 1)/θ.
func (c *Clayton) Generator(t float64) float64 {
	return (math.Pow(t, -c.theta) - 1) / c.theta
}

// GeneratorInv returns φ⁻¹(s) = (1 + θs)^(-1/θ).
func (c *Clayton) GeneratorInv(s float64) float64 {
	return math.Pow(1+c.theta*s, -1/c.theta)
}

// GeneratorPrime returns φ'(t) = -t^(-θ-1).
func (c *Clayton) GeneratorPrime(t float64) float64 {
	return -math.Pow(t, -c.theta-1)
}

// GeneratorPrime2 returns φ''(t) = (θ+1)·t^(-θ-2).
func (c *Clayton) GeneratorPrime2(t float64) float64 {
	return (c.theta + 1) * math.Pow(t, -c.theta-2)
}

// GeneratorPrimeInv returns the t with φ'(t) = x for x < 0:
// t = (-x)^(-1/(θ+1)).
func (c *Clayton) GeneratorPrimeInv(x float64) (float64, error) {
	if x >= 0 {
		return nan, fmt.Errorf("clayton: generator prime inverse of non-negative %g: %w", x, dist.ErrParameter)
	}
	return math.Pow(-x, -1/(c.theta+1)), nil
}

func (c *Clayton) PDF(u, v float64) float64 {
	if !c.valid() {
		return nan
	}
	return archPDF(c, u, v)
}

func (c *Clayton) CDF(u, v float64) float64 {
	if !c.valid() {
		return nan
	}
	return archCDF(c, u, v)
}

func (c *Clayton) CondInvCDF(u, p float64) float64 {
	if !c.valid() {
		return nan
	}
	return archCondInv(c, u, p)
}

// Tau returns Kendall's tau, θ/(θ+2).
func (c *Clayton) Tau() float64 {
	if !c.valid() {
		return nan
	}
	return c.theta / (c.theta + 2)
}

// SetThetaFromTau sets θ = 2τ/(1-τ). The Clayton copula only
// attains τ in (0, 1).
func (c *Clayton) SetThetaFromTau(tau float64) error {
	if !(tau > 0 && tau < 1) {
		return fmt.Errorf("clayton: τ = %g outside (0, 1): %w", tau, dist.ErrParameter)
	}
	return c.SetTheta(2 * tau / (1 - tau))
}

func (c *Clayton) Clone() Bivariate {
	return &Clayton{theta: c.theta, margins: c.cloneMargins()}
}
