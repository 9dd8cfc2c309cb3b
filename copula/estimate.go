// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/dist"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/optimize"
)

// ErrEstimation is returned when copula estimation cannot produce a
// usable θ, for example when the likelihood search fails to
// converge.
var ErrEstimation = errors.New("copula estimation failed")

// MinSampleSize is the smallest paired sample Estimate accepts.
// Below it the rank transform carries too little information to
// identify θ.
const MinSampleSize = 5

// Method selects a copula estimation strategy.
type Method int

const (
	// PseudoLikelihood ranks each margin into pseudo-observations
	// rank/(n+1) and maximizes the copula density over them. It
	// needs no marginal model and is the usual default.
	PseudoLikelihood Method = iota

	// InferenceFromMargins fits each margin to its sample by
	// maximum likelihood, transforms the data through the fitted
	// CDFs, and then maximizes the copula density. Both margins
	// must be installed and able to fit themselves.
	InferenceFromMargins

	// FullLikelihood maximizes the joint likelihood over the
	// marginal parameters and θ simultaneously, starting from the
	// InferenceFromMargins solution. It is the most efficient
	// estimator when the marginal models are correct, and the
	// most expensive.
	FullLikelihood
)

func (m Method) String() string {
	switch m {
	case PseudoLikelihood:
		return "pseudo-likelihood"
	case InferenceFromMargins:
		return "inference-from-margins"
	case FullLikelihood:
		return "full-likelihood"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// PseudoObservations maps a sample to copula scale using
// average-tie ranks: u_i = rank(x_i)/(n+1), which keeps every value
// strictly inside (0, 1).
func PseudoObservations(xs []float64) []float64 {
	n := float64(len(xs))
	us := dist.Ranks(xs)
	for i, r := range us {
		us[i] = r / (n + 1)
	}
	return us
}

// LogLikelihood returns the copula log-likelihood Σ ln c(u_i, v_i)
// of paired observations already on copula scale, with non-positive
// densities clamped to mathx.LogMin.
func LogLikelihood(c Bivariate, us, vs []float64) float64 {
	ll := 0.0
	for i := range us {
		ll += mathx.LogClamp(c.PDF(us[i], vs[i]))
	}
	return ll
}

// Estimate fits c's dependency parameter θ (and, for FullLikelihood,
// the marginal parameters) to the paired sample (xs, ys). On
// success c holds the fitted parameters. Errors wrap ErrEstimation
// or dist.ErrSampleSize; after an error partway through a
// margin-fitting method the margins may already have been refitted.
func Estimate(c Bivariate, xs, ys []float64, method Method) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("copula: paired sample lengths differ (%d vs %d): %w", len(xs), len(ys), dist.ErrSampleSize)
	}
	if len(xs) < MinSampleSize {
		return fmt.Errorf("copula: %d pairs, need at least %d: %w", len(xs), MinSampleSize, dist.ErrSampleSize)
	}
	switch method {
	case PseudoLikelihood:
		return estimatePseudo(c, xs, ys)
	case InferenceFromMargins:
		_, _, err := estimateIFM(c, xs, ys)
		return err
	case FullLikelihood:
		return estimateFull(c, xs, ys)
	}
	return fmt.Errorf("copula: unknown estimation method %v: %w", method, ErrEstimation)
}

func estimatePseudo(c Bivariate, xs, ys []float64) error {
	us := PseudoObservations(xs)
	vs := PseudoObservations(ys)
	theta, err := fitTheta(c, us, vs)
	if err != nil {
		return err
	}
	return c.SetTheta(theta)
}

// estimateIFM fits both margins by maximum likelihood, pushes the
// sample through the fitted CDFs, and fits θ on the result. It
// returns the transformed sample for reuse by the full-likelihood
// start.
func estimateIFM(c Bivariate, xs, ys []float64) (us, vs []float64, err error) {
	mx, my := c.Margins()
	if mx == nil || my == nil {
		return nil, nil, fmt.Errorf("copula: %v estimation requires both margins: %w", InferenceFromMargins, ErrEstimation)
	}
	fx, ok := mx.(dist.MaximumLikelihoodEstimator)
	if !ok {
		return nil, nil, fmt.Errorf("copula: %v margin cannot fit by maximum likelihood: %w", mx.Family(), dist.ErrUnsupported)
	}
	fy, ok := my.(dist.MaximumLikelihoodEstimator)
	if !ok {
		return nil, nil, fmt.Errorf("copula: %v margin cannot fit by maximum likelihood: %w", my.Family(), dist.ErrUnsupported)
	}
	if err := fx.FitMLE(xs); err != nil {
		return nil, nil, fmt.Errorf("copula: fitting x margin: %w", err)
	}
	if err := fy.FitMLE(ys); err != nil {
		return nil, nil, fmt.Errorf("copula: fitting y margin: %w", err)
	}
	us = transform(mx, xs)
	vs = transform(my, ys)
	theta, err := fitTheta(c, us, vs)
	if err != nil {
		return nil, nil, err
	}
	return us, vs, c.SetTheta(theta)
}

func estimateFull(c Bivariate, xs, ys []float64) error {
	if _, _, err := estimateIFM(c, xs, ys); err != nil {
		return err
	}
	mx, my := c.Margins()
	px, py := mx.Params(), my.Params()
	nx, ny := len(px), len(py)

	start := make([]float64, 0, nx+ny+1)
	start = append(start, px...)
	start = append(start, py...)
	start = append(start, c.Theta())

	// Invalid parameter probes return NaN densities, which
	// LogClamp turns into mathx.LogMin, so the joint likelihood
	// is well-defined over all of parameter space.
	obj := func(p []float64) float64 {
		w := c.Clone()
		wx, wy := w.Margins()
		if wx.SetParams(p[:nx]) != nil || wy.SetParams(p[nx:nx+ny]) != nil {
			return mathx.LogMin
		}
		if w.ValidateTheta(p[nx+ny]) != nil {
			return mathx.LogMin
		}
		w.SetTheta(p[nx+ny])
		ll := 0.0
		for i := range xs {
			jp, _ := JointPDF(w, xs[i], ys[i])
			ll += mathx.LogClamp(jp)
		}
		return ll
	}

	nm := optimize.NelderMead{Func: obj, Initial: start, Settings: optimize.DefaultSettings()}
	if err := nm.Maximize(); err != nil {
		return fmt.Errorf("copula: %v: %v: %w", FullLikelihood, err, ErrEstimation)
	}
	best := nm.BestParameterSet().Values
	if err := mx.SetParams(best[:nx]); err != nil {
		return fmt.Errorf("copula: %v margin parameters: %w", mx.Family(), err)
	}
	if err := my.SetParams(best[nx : nx+ny]); err != nil {
		return fmt.Errorf("copula: %v margin parameters: %w", my.Family(), err)
	}
	return c.SetTheta(best[nx+ny])
}

// transform maps xs through d's CDF, clamped strictly inside (0, 1)
// so boundary densities stay finite.
func transform(d dist.Continuous, xs []float64) []float64 {
	const eps = 1e-10
	us := make([]float64, len(xs))
	for i, x := range xs {
		u := d.CDF(x)
		if u < eps {
			u = eps
		}
		if u > 1-eps {
			u = 1 - eps
		}
		us[i] = u
	}
	return us
}

// fitTheta maximizes the copula log-likelihood over a θ interval
// derived from the sample's Kendall tau.
func fitTheta(c Bivariate, us, vs []float64) (float64, error) {
	lo, hi, err := ThetaBoundsForData(c, us, vs)
	if err != nil {
		return nan, err
	}
	f := c.Family()
	b := optimize.BrentSearch{
		Func: func(theta float64) float64 {
			w, _ := New(f, theta)
			return LogLikelihood(w, us, vs)
		},
		Lower:    lo,
		Upper:    hi,
		Settings: optimize.DefaultSettings(),
	}
	if err := b.Maximize(); err != nil {
		return nan, fmt.Errorf("copula: %v likelihood search: %v: %w", f, err, ErrEstimation)
	}
	return b.BestParameterSet().Values[0], nil
}

// tauWindow is the half-width of the Kendall tau interval searched
// around the sample tau. Wide enough to absorb rank-estimate noise
// at small n, narrow enough to keep the likelihood search fast.
const tauWindow = 0.3

// ThetaBoundsForData brackets θ for a likelihood search by mapping
// the sample Kendall tau plus and minus tauWindow, clamped to the
// family's attainable range, through the family's tau inversion.
// us and vs must already be on copula scale.
func ThetaBoundsForData(c Bivariate, us, vs []float64) (lo, hi float64, err error) {
	tau := stat.Kendall(us, vs, nil)
	tauLo, tauHi := attainableTau(c.Family())
	if tau < tauLo || tau > tauHi {
		// The sample dependence points outside what the family
		// can express; search the whole attainable range.
		tau = math.Min(math.Max(tau, tauLo), tauHi)
	}
	wLo := math.Max(tau-tauWindow, tauLo)
	wHi := math.Min(tau+tauWindow, tauHi)

	a := c.Clone()
	if err := a.SetThetaFromTau(wLo); err != nil {
		return nan, nan, fmt.Errorf("copula: %v τ = %g: %v: %w", c.Family(), wLo, err, ErrEstimation)
	}
	lo = a.Theta()
	if err := a.SetThetaFromTau(wHi); err != nil {
		return nan, nan, fmt.Errorf("copula: %v τ = %g: %v: %w", c.Family(), wHi, err, ErrEstimation)
	}
	hi = a.Theta()
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return nan, nan, fmt.Errorf("copula: %v: degenerate θ bracket at τ = %g: %w", c.Family(), tau, ErrEstimation)
	}
	return lo, hi, nil
}

// attainableTau returns the Kendall tau range each family can
// express, pulled slightly inside the theoretical limits so the tau
// inversions stay finite.
func attainableTau(f Family) (lo, hi float64) {
	switch f {
	case FamilyGumbel, FamilyJoe:
		return 0.001, 0.985
	case FamilyClayton:
		return 0.001, 0.985
	case FamilyFrank:
		hi = frankTau(frankThetaMax) - 0.001
		return -hi, hi
	case FamilyAMH:
		return amhTau(-1) + 0.001, 1.0/3 - 0.005
	case FamilyNormal:
		return -0.985, 0.985
	}
	return nan, nan
}
