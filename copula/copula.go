// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// copula provides bivariate copulas - functions coupling two
// marginal distributions into a joint distribution through a scalar
// dependency parameter θ - together with estimation of θ (and
// optionally the marginal parameters) from paired sample data.
//
// As in the dist package, validation is lazy: a copula may be built
// with a provisional θ, and an invalid θ surfaces as NaN from PDF,
// CDF, and CondInvCDF rather than a panic, so optimization
// objectives probing the parameter space stay well-defined. SetTheta
// reports invalid values eagerly.
//
// Copulas do not own their margins. SetMargins installs shared
// references supplied by the caller; only Clone deep-copies them, so
// cloned copulas can be fitted in parallel (bootstrap resampling)
// without synchronization.
package copula

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/dist"
)

var nan = math.NaN()

// Family identifies a copula family for dispatch and serialization.
type Family int

const (
	FamilyGumbel Family = iota
	FamilyClayton
	FamilyFrank
	FamilyJoe
	FamilyAMH
	FamilyNormal
)

func (f Family) String() string {
	switch f {
	case FamilyGumbel:
		return "gumbel"
	case FamilyClayton:
		return "clayton"
	case FamilyFrank:
		return "frank"
	case FamilyJoe:
		return "joe"
	case FamilyAMH:
		return "amh"
	case FamilyNormal:
		return "normal"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily returns the Family named by s.
func ParseFamily(s string) (Family, error) {
	for _, f := range []Family{FamilyGumbel, FamilyClayton, FamilyFrank, FamilyJoe, FamilyAMH, FamilyNormal} {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown copula family %q", s)
}

// A Bivariate is a two-dimensional copula C(u, v) with dependency
// parameter θ.
type Bivariate interface {
	// Family returns the copula family tag.
	Family() Family

	// Theta returns the dependency parameter.
	Theta() float64

	// SetTheta validates and installs θ.
	SetTheta(theta float64) error

	// ValidateTheta reports whether θ lies in the family's
	// domain, returning an error wrapping dist.ErrParameter if
	// not.
	ValidateTheta(theta float64) error

	// ThetaBounds returns the family's θ domain. Either bound may
	// be infinite.
	ThetaBounds() (lo, hi float64)

	// PDF returns the copula density c(u, v) for u, v in (0, 1),
	// 0 on the boundary, and NaN if θ is invalid.
	PDF(u, v float64) float64

	// CDF returns the copula C(u, v), the joint probability that
	// both uniform margins fall below u and v.
	CDF(u, v float64) float64

	// CondInvCDF inverts the conditional distribution: given u
	// and a conditional probability p, it returns the v with
	// ∂C/∂u(u, v) = p. This is the workhorse of conditional
	// sampling: feeding uniform random (u, p) pairs through it
	// yields pairs distributed according to the copula.
	CondInvCDF(u, p float64) float64

	// Tau returns the Kendall rank correlation implied by the
	// current θ.
	Tau() float64

	// SetThetaFromTau sets θ from a Kendall tau, using the
	// family's closed form where one exists and a root search
	// otherwise. Tau values outside the family's attainable range
	// are rejected with dist.ErrParameter.
	SetThetaFromTau(tau float64) error

	// Margins returns the marginal distributions, either of which
	// may be nil when the copula is used on uniform margins.
	Margins() (x, y dist.Continuous)

	// SetMargins installs shared references to the marginal
	// distributions. The copula does not copy them; the caller
	// remains responsible for their lifetime.
	SetMargins(x, y dist.Continuous)

	// Clone returns an independent deep copy, including deep
	// copies of the margins.
	Clone() Bivariate
}

// New constructs a copula of the given family with a provisional θ.
func New(f Family, theta float64) (Bivariate, error) {
	switch f {
	case FamilyGumbel:
		return NewGumbel(theta), nil
	case FamilyClayton:
		return NewClayton(theta), nil
	case FamilyFrank:
		return NewFrank(theta), nil
	case FamilyJoe:
		return NewJoe(theta), nil
	case FamilyAMH:
		return NewAMH(theta), nil
	case FamilyNormal:
		return NewNormal(theta), nil
	}
	return nil, fmt.Errorf("unknown copula family %v", f)
}

// margins holds the shared marginal references common to every
// family.
type margins struct {
	x, y dist.Continuous
}

func (m *margins) Margins() (x, y dist.Continuous) { return m.x, m.y }

func (m *margins) SetMargins(x, y dist.Continuous) { m.x, m.y = x, y }

func (m *margins) cloneMargins() margins {
	var c margins
	if m.x != nil {
		c.x = m.x.Clone()
	}
	if m.y != nil {
		c.y = m.y.Clone()
	}
	return c
}

// JointPDF returns the joint density at (x, y) of the copula applied
// to its margins: c(F_X(x), F_Y(y))·f_X(x)·f_Y(y). Both margins must
// be set.
func JointPDF(c Bivariate, x, y float64) (float64, error) {
	mx, my := c.Margins()
	if mx == nil || my == nil {
		return nan, fmt.Errorf("joint PDF requires both margins: %w", dist.ErrUnsupported)
	}
	return c.PDF(mx.CDF(x), my.CDF(y)) * mx.PDF(x) * my.PDF(y), nil
}

// JointCDF returns the joint probability C(F_X(x), F_Y(y)). Both
// margins must be set.
func JointCDF(c Bivariate, x, y float64) (float64, error) {
	mx, my := c.Margins()
	if mx == nil || my == nil {
		return nan, fmt.Errorf("joint CDF requires both margins: %w", dist.ErrUnsupported)
	}
	return c.CDF(mx.CDF(x), my.CDF(y)), nil
}

// encoded is the stable (family, parameter-array) wire form. Margins
// are caller-owned and serialize separately through the dist
// package.
type encoded struct {
	Family     string    `json:"family"`
	Parameters []float64 `json:"parameters"`
}

// Marshal encodes c as its (family, parameter-array) JSON document.
func Marshal(c Bivariate) ([]byte, error) {
	return json.Marshal(encoded{Family: c.Family().String(), Parameters: []float64{c.Theta()}})
}

// Unmarshal reconstructs a copula from Marshal's encoding.
func Unmarshal(data []byte) (Bivariate, error) {
	var e encoded
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	f, err := ParseFamily(e.Family)
	if err != nil {
		return nil, err
	}
	if len(e.Parameters) != 1 {
		return nil, fmt.Errorf("copula %v: want 1 parameter, got %d: %w", f, len(e.Parameters), dist.ErrParameter)
	}
	c, err := New(f, e.Parameters[0])
	if err != nil {
		return nil, err
	}
	if err := c.ValidateTheta(c.Theta()); err != nil {
		return nil, err
	}
	return c, nil
}

func thetaErr(f Family, theta float64, domain string) error {
	return fmt.Errorf("%v: θ = %g outside %s: %w", f, theta, domain, dist.ErrParameter)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
