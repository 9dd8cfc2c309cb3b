// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"fmt"
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/dist"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/rootfind"
)

// Joe is the Joe Archimedean copula with generator
// φ(t) = -ln(1 - (1-t)^θ) and θ >= 1. Like Gumbel it models
// upper-tail dependence, but with a heavier tail for the same
// Kendall's tau; θ = 1 is independence.
type Joe struct {
	theta float64
	margins
}

// NewJoe returns a Joe copula with a provisional θ, validated
// lazily on first use.
func NewJoe(theta float64) *Joe { return &Joe{theta: theta} }

func (c *Joe) Family() Family { return FamilyJoe }

func (c *Joe) Theta() float64 { return c.theta }

func (c *Joe) ThetaBounds() (lo, hi float64) { return 1, math.Inf(1) }

func (c *Joe) ValidateTheta(theta float64) error {
	if !finite(theta) || theta < 1 {
		return thetaErr(FamilyJoe, theta, "[1, ∞)")
	}
	return nil
}

func (c *Joe) SetTheta(theta float64) error {
	if err := c.ValidateTheta(theta); err != nil {
		return err
	}
	c.theta = theta
	return nil
}

func (c *Joe) valid() bool { return c.ValidateTheta(c.theta) == nil }

// Generator returns φ(t) = -ln(1 - (1-t)^θ).
func (c *Joe) Generator(t float64) float64 {
	return -math.Log(-math.Expm1(c.theta * math.Log1p(-t)))
}

// GeneratorInv returns φ⁻¹(s) = 1 - (1 - e^(-s))^(1/θ).
func (c *Joe) GeneratorInv(s float64) float64 {
	return 1 - math.Pow(-math.Expm1(-s), 1/c.theta)
}

// GeneratorPrime returns φ'(t) = -θ(1-t)^(θ-1)/(1 - (1-t)^θ).
func (c *Joe) GeneratorPrime(t float64) float64 {
	w := 1 - t
	d := 1 - math.Pow(w, c.theta)
	return -c.theta * math.Pow(w, c.theta-1) / d
}

// GeneratorPrime2 returns
// φ''(t) = θ(θ-1)(1-t)^(θ-2)/D + θ²(1-t)^(2θ-2)/D²
// with D = 1 - (1-t)^θ.
func (c *Joe) GeneratorPrime2(t float64) float64 {
	w := 1 - t
	d := 1 - math.Pow(w, c.theta)
	return c.theta*(c.theta-1)*math.Pow(w, c.theta-2)/d +
		c.theta*c.theta*math.Pow(w, 2*c.theta-2)/(d*d)
}

// GeneratorPrimeInv has no closed form for this family.
func (c *Joe) GeneratorPrimeInv(x float64) (float64, error) {
	return nan, fmt.Errorf("joe: generator prime inverse: %w", dist.ErrUnsupported)
}

func (c *Joe) PDF(u, v float64) float64 {
	if !c.valid() {
		return nan
	}
	return archPDF(c, u, v)
}

func (c *Joe) CDF(u, v float64) float64 {
	if !c.valid() {
		return nan
	}
	return archCDF(c, u, v)
}

func (c *Joe) CondInvCDF(u, p float64) float64 {
	if !c.valid() {
		return nan
	}
	return archCondInv(c, u, p)
}

// Tau returns Kendall's tau from the series
// 1 - 4·Σ_{k>=1} 1/(k(θk+2)(θ(k-1)+2)), which converges for all
// θ >= 1.
func (c *Joe) Tau() float64 {
	if !c.valid() {
		return nan
	}
	return joeTau(c.theta)
}

func joeTau(theta float64) float64 {
	sum := 0.0
	for k := 1.0; k <= 1e7; k++ {
		term := 1 / (k * (theta*k + 2) * (theta*(k-1) + 2))
		sum += term
		if term < 1e-13*sum {
			break
		}
	}
	return 1 - 4*sum
}

// SetThetaFromTau inverts the tau series with a root search. The
// Joe copula only attains τ in [0, 1).
func (c *Joe) SetThetaFromTau(tau float64) error {
	if !(tau >= 0 && tau < 1) {
		return fmt.Errorf("joe: τ = %g outside [0, 1): %w", tau, dist.ErrParameter)
	}
	if tau < 1e-10 {
		return c.SetTheta(1)
	}
	// τ(1) = 0 and τ is increasing in θ, so expand the upper end
	// only.
	f := func(th float64) float64 { return joeTau(th) - tau }
	hi := 2.0
	for f(hi) < 0 && hi < 1e6 {
		hi *= 2
	}
	theta, err := rootfind.Brent(f, 1, hi, 1e-10)
	if err != nil {
		return fmt.Errorf("joe: inverting τ = %g: %w", tau, err)
	}
	return c.SetTheta(theta)
}

func (c *Joe) Clone() Bivariate {
	return &Joe{theta: c.theta, margins: c.cloneMargins()}
}
