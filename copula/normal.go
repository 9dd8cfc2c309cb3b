// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/dist"
)

// Normal is the bivariate Gaussian copula with correlation θ = ρ in
// (-1, 1). Unlike the Archimedean families it is elliptical: its
// density and conditional quantile have closed forms through the
// standard normal quantile, and its CDF reduces to the bivariate
// normal CDF evaluated at Φ⁻¹(u), Φ⁻¹(v).
type Normal struct {
	theta float64
	margins
}

// NewNormal returns a Gaussian copula with a provisional ρ,
// validated lazily on first use.
func NewNormal(rho float64) *Normal { return &Normal{theta: rho} }

func (c *Normal) Family() Family { return FamilyNormal }

func (c *Normal) Theta() float64 { return c.theta }

func (c *Normal) ThetaBounds() (lo, hi float64) { return -1, 1 }

func (c *Normal) ValidateTheta(theta float64) error {
	if !finite(theta) || theta <= -1 || theta >= 1 {
		return thetaErr(FamilyNormal, theta, "(-1, 1)")
	}
	return nil
}

func (c *Normal) SetTheta(theta float64) error {
	if err := c.ValidateTheta(theta); err != nil {
		return err
	}
	c.theta = theta
	return nil
}

func (c *Normal) valid() bool { return c.ValidateTheta(c.theta) == nil }

func (c *Normal) PDF(u, v float64) float64 {
	if !c.valid() {
		return nan
	}
	if u <= 0 || u >= 1 || v <= 0 || v >= 1 {
		return 0
	}
	x := distuv.UnitNormal.Quantile(u)
	y := distuv.UnitNormal.Quantile(v)
	r := c.theta
	d := 1 - r*r
	return math.Exp(-(r*r*x*x-2*r*x*y+r*r*y*y)/(2*d)) / math.Sqrt(d)
}

func (c *Normal) CDF(u, v float64) float64 {
	if !c.valid() {
		return nan
	}
	if u <= 0 || v <= 0 {
		return 0
	}
	if u >= 1 {
		u = 1
	}
	if v >= 1 {
		v = 1
	}
	if u == 1 {
		return v
	}
	if v == 1 {
		return u
	}
	a := distuv.UnitNormal.Quantile(u)
	b := distuv.UnitNormal.Quantile(v)
	return bvnCDF(a, b, c.theta)
}

// bvnCDF evaluates the standard bivariate normal CDF with the
// Drezner-Wesolowsky single-integral form,
//
//	Φ₂(a,b;ρ) = Φ(a)Φ(b) +
//	    (1/2π)∫₀^ρ exp(-(a²+b²-2rab)/(2(1-r²)))/√(1-r²) dr.
//
// The integrand is smooth on [0, ρ] for |ρ| < 1, so fixed
// Gauss-Legendre quadrature converges quickly.
func bvnCDF(a, b, rho float64) float64 {
	p := distuv.UnitNormal.CDF(a) * distuv.UnitNormal.CDF(b)
	if rho == 0 {
		return p
	}
	f := func(r float64) float64 {
		d := 1 - r*r
		return math.Exp(-(a*a+b*b-2*r*a*b)/(2*d)) / math.Sqrt(d)
	}
	return p + quad.Fixed(f, 0, rho, 64, nil, 0)/(2*math.Pi)
}

// CondInvCDF returns the closed-form conditional quantile
// Φ(ρΦ⁻¹(u) + √(1-ρ²)·Φ⁻¹(p)).
func (c *Normal) CondInvCDF(u, p float64) float64 {
	if !c.valid() {
		return nan
	}
	if u <= 0 || u >= 1 || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	x := distuv.UnitNormal.Quantile(u)
	z := distuv.UnitNormal.Quantile(p)
	return distuv.UnitNormal.CDF(c.theta*x + math.Sqrt(1-c.theta*c.theta)*z)
}

// Tau returns Kendall's tau, 2·asin(ρ)/π.
func (c *Normal) Tau() float64 {
	if !c.valid() {
		return nan
	}
	return 2 * math.Asin(c.theta) / math.Pi
}

// SetThetaFromTau sets ρ = sin(πτ/2).
func (c *Normal) SetThetaFromTau(tau float64) error {
	if !(tau > -1 && tau < 1) {
		return fmt.Errorf("normal: τ = %g outside (-1, 1): %w", tau, dist.ErrParameter)
	}
	return c.SetTheta(math.Sin(math.Pi * tau / 2))
}

func (c *Normal) Clone() Bivariate {
	return &Normal{theta: c.theta, margins: c.cloneMargins()}
}
