// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"fmt"
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/dist"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/rootfind"
)

// Frank is the Frank Archimedean copula with generator
// φ(t) = -ln((e^(-θt) - 1)/(e^(-θ) - 1)) and θ ≠ 0. It is the only
// Archimedean family here that is radially symmetric and attains
// both negative and positive dependence; θ → 0 approaches
// independence.
type Frank struct {
	theta float64
	margins
}

// frankThetaMax is the practical |θ| limit. Beyond it e^|θ|
// overflows intermediate terms long before the dependence strength
// changes meaningfully (τ(35) > 0.88).
const frankThetaMax = 35

// NewFrank returns a Frank copula with a provisional θ, validated
// lazily on first use.
func NewFrank(theta float64) *Frank { return &Frank{theta: theta} }

func (c *Frank) Family() Family { return FamilyFrank }

func (c *Frank) Theta() float64 { return c.theta }

func (c *Frank) ThetaBounds() (lo, hi float64) { return -frankThetaMax, frankThetaMax }

func (c *Frank) ValidateTheta(theta float64) error {
	if !finite(theta) || theta == 0 || math.Abs(theta) > frankThetaMax {
		return thetaErr(FamilyFrank, theta, "[-35, 35] excluding 0")
	}
	return nil
}

func (c *Frank) SetTheta(theta float64) error {
	if err := c.ValidateTheta(theta); err != nil {
		return err
	}
	c.theta = theta
	return nil
}

func (c *Frank) valid() bool { return c.ValidateTheta(c.theta) == nil }

// Generator returns φ(t) = -ln((e^(-θt) - 1)/(e^(-θ) - 1)).
func (c *Frank) Generator(t float64) float64 {
	return -math.Log(math.Expm1(-c.theta*t) / math.Expm1(-c.theta))
}

// GeneratorInv returns φ⁻¹(s) = -ln(1 + e^(-s)(e^(-θ) - 1))/θ.
func (c *Frank) GeneratorInv(s float64) float64 {
	return -math.Log1p(math.Exp(-s)*math.Expm1(-c.theta)) / c.theta
}

// GeneratorPrime returns φ'(t) = θ·e^(-θt)/(e^(-θt) - 1).
func (c *Frank) GeneratorPrime(t float64) float64 {
	e := math.Exp(-c.theta * t)
	return c.theta * e / (e - 1)
}

// GeneratorPrime2 returns φ''(t) = θ²·e^(-θt)/(e^(-θt) - 1)².
func (c *Frank) GeneratorPrime2(t float64) float64 {
	e := math.Exp(-c.theta * t)
	return c.theta * c.theta * e / ((e - 1) * (e - 1))
}

// GeneratorPrimeInv returns the t with φ'(t) = x: solving
// x = θE/(E-1) for E = e^(-θt) gives E = x/(x-θ).
func (c *Frank) GeneratorPrimeInv(x float64) (float64, error) {
	e := x / (x - c.theta)
	if !(e > 0) {
		return nan, fmt.Errorf("frank: generator prime inverse of %g: %w", x, dist.ErrParameter)
	}
	return -math.Log(e) / c.theta, nil
}

func (c *Frank) PDF(u, v float64) float64 {
	if !c.valid() {
		return nan
	}
	return archPDF(c, u, v)
}

func (c *Frank) CDF(u, v float64) float64 {
	if !c.valid() {
		return nan
	}
	return archCDF(c, u, v)
}

func (c *Frank) CondInvCDF(u, p float64) float64 {
	if !c.valid() {
		return nan
	}
	return archCondInv(c, u, p)
}

// Tau returns Kendall's tau, 1 - (4/θ)(1 - D₁(θ)) with the first
// Debye function D₁.
func (c *Frank) Tau() float64 {
	if !c.valid() {
		return nan
	}
	return frankTau(c.theta)
}

func frankTau(theta float64) float64 {
	return 1 - 4/theta*(1-mathx.Debye1(theta))
}

// SetThetaFromTau inverts the Debye tau relation with a root search.
// |τ| must stay below the value attainable at the practical θ limit.
func (c *Frank) SetThetaFromTau(tau float64) error {
	tauMax := frankTau(frankThetaMax)
	if !(math.Abs(tau) < tauMax) {
		return fmt.Errorf("frank: |τ| = %g outside (-%.3f, %.3f): %w", tau, tauMax, tauMax, dist.ErrParameter)
	}
	if math.Abs(tau) < 1e-10 {
		// τ(θ) ≈ θ/9 near zero; keep θ in the valid domain.
		return c.SetTheta(9e-10)
	}
	// τ(θ) is increasing and odd, so bracket on the side of τ's
	// sign.
	lo, hi := 1e-9, float64(frankThetaMax)
	if tau < 0 {
		lo, hi = -frankThetaMax, -1e-9
	}
	theta, err := rootfind.Brent(func(th float64) float64 { return frankTau(th) - tau }, lo, hi, 1e-10)
	if err != nil {
		return fmt.Errorf("frank: inverting τ = %g: %w", tau, err)
	}
	return c.SetTheta(theta)
}

func (c *Frank) Clone() Bivariate {
	return &Frank{theta: c.theta, margins: c.cloneMargins()}
}
