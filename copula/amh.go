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

// AMH is the Ali-Mikhail-Haq Archimedean copula with generator
// φ(t) = ln((1 - θ(1-t))/t) and θ in [-1, 1). Its dependence range
// is narrow: Kendall's tau only covers roughly (-0.182, 1/3), so it
// suits weakly associated data; θ = 0 is independence.
type AMH struct {
	theta float64
	margins
}

// NewAMH returns an Ali-Mikhail-Haq copula with a provisional θ,
// validated lazily on first use.
func NewAMH(theta float64) *AMH { return &AMH{theta: theta} }

func (c *AMH) Family() Family { return FamilyAMH }

func (c *AMH) Theta() float64 { return c.theta }

func (c *AMH) ThetaBounds() (lo, hi float64) { return -1, 1 }

func (c *AMH) ValidateTheta(theta float64) error {
	if !finite(theta) || theta < -1 || theta >= 1 {
		return thetaErr(FamilyAMH, theta, "[-1, 1)")
	}
	return nil
}

func (c *AMH) SetTheta(theta float64) error {
	if err := c.ValidateTheta(theta); err != nil {
		return err
	}
	c.theta = theta
	return nil
}

func (c *AMH) valid() bool { return c.ValidateTheta(c.theta) == nil }

// Generator returns φ(t) = ln((1 - θ(1-t))/t).
func (c *AMH) Generator(t float64) float64 {
	return math.Log((1 - c.theta*(1-t)) / t)
}

// GeneratorInv returns φ⁻¹(s) = (1-θ)/(e^s - θ).
func (c *AMH) GeneratorInv(s float64) float64 {
	return (1 - c.theta) / (math.Exp(s) - c.theta)
}

// GeneratorPrime returns φ'(t) = θ/(1 - θ(1-t)) - 1/t.
func (c *AMH) GeneratorPrime(t float64) float64 {
	return c.theta/(1-c.theta*(1-t)) - 1/t
}

// GeneratorPrime2 returns φ''(t) = 1/t² - θ²/(1 - θ(1-t))².
func (c *AMH) GeneratorPrime2(t float64) float64 {
	d := 1 - c.theta*(1-t)
	return 1/(t*t) - c.theta*c.theta/(d*d)
}

// GeneratorPrimeInv has no closed form for this family.
func (c *AMH) GeneratorPrimeInv(x float64) (float64, error) {
	return nan, fmt.Errorf("amh: generator prime inverse: %w", dist.ErrUnsupported)
}

func (c *AMH) PDF(u, v float64) float64 {
	if !c.valid() {
		return nan
	}
	return archPDF(c, u, v)
}

func (c *AMH) CDF(u, v float64) float64 {
	if !c.valid() {
		return nan
	}
	return archCDF(c, u, v)
}

func (c *AMH) CondInvCDF(u, p float64) float64 {
	if !c.valid() {
		return nan
	}
	return archCondInv(c, u, p)
}

// Tau returns Kendall's tau,
// 1 - 2(θ + (1-θ)²·ln(1-θ))/(3θ²), with the θ → 0 limit 2θ/9.
func (c *AMH) Tau() float64 {
	if !c.valid() {
		return nan
	}
	return amhTau(c.theta)
}

func amhTau(theta float64) float64 {
	if math.Abs(theta) < 1e-6 {
		return 2 * theta / 9
	}
	w := 1 - theta
	return 1 - 2*(theta+w*w*math.Log(w))/(3*theta*theta)
}

// SetThetaFromTau inverts the tau relation with a root search. The
// attainable range is (5 - 8·ln 2)/3 ≈ -0.1817 at θ = -1 up to 1/3
// as θ → 1.
func (c *AMH) SetThetaFromTau(tau float64) error {
	const thetaHi = 1 - 1e-10
	tauLo, tauHi := amhTau(-1), amhTau(thetaHi)
	if !(tau >= tauLo && tau <= tauHi) {
		return fmt.Errorf("amh: τ = %g outside [%.4f, %.4f]: %w", tau, tauLo, tauHi, dist.ErrParameter)
	}
	if math.Abs(tau) < 1e-10 {
		return c.SetTheta(0)
	}
	theta, err := rootfind.Brent(func(th float64) float64 { return amhTau(th) - tau }, -1, thetaHi, 1e-12)
	if err != nil {
		return fmt.Errorf("amh: inverting τ = %g: %w", tau, err)
	}
	return c.SetTheta(theta)
}

func (c *AMH) Clone() Bivariate {
	return &AMH{theta: c.theta, margins: c.cloneMargins()}
}
