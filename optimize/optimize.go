// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// optimize provides numerical optimization methods sharing a common
// status machine and convergence test: a one-dimensional Brent
// search, BFGS, Nelder-Mead, and differential evolution.
//
// Each method is a struct configured through exported fields. Calling
// Minimize or Maximize runs the search; afterward Status reports how
// it terminated and BestParameterSet holds the best point seen. A
// terminal Failed status is returned as an error when
// Settings.ReportFailure is set (DefaultSettings sets it), otherwise
// the caller inspects Status.
package optimize

import (
	"errors"
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
)

// ErrFailed is returned when an optimization terminates with the
// Failed status: inverted bounds, a missing objective, or an
// objective that never evaluated to a finite value.
var ErrFailed = errors.New("optimization failed")

// Status describes how an optimization run terminated.
type Status int

const (
	NotStarted Status = iota
	Running
	Converged
	MaxIterationsReached
	MaxFunctionEvaluationsReached
	Failed
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "maximum iterations reached"
	case MaxFunctionEvaluationsReached:
		return "maximum function evaluations reached"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// A ParameterSet pairs a parameter vector with its fitness. Methods
// produce one per evaluation and keep the best seen.
type ParameterSet struct {
	Values  []float64
	Fitness float64
}

func (p ParameterSet) clone() ParameterSet {
	return ParameterSet{Values: append([]float64(nil), p.Values...), Fitness: p.Fitness}
}

// Settings holds the termination controls shared by every method.
// Zero-valued tolerance and budget fields are replaced by the
// defaults below when a run starts; ReportFailure is taken as-is, so
// the zero value of Settings is a quiet configuration. Use
// DefaultSettings for the common error-raising one.
type Settings struct {
	// AbsoluteTolerance and RelativeTolerance control the
	// convergence test. A run converges when the change in best
	// fitness satisfies both at once:
	//
	//	|Δf| <= AbsoluteTolerance and |Δf| <= RelativeTolerance·max(|f|, 1)
	//
	// Defaults: 1e-8 and 1e-7.
	AbsoluteTolerance float64
	RelativeTolerance float64

	// MaxIterations and MaxFunctionEvaluations bound the run.
	// Defaults: 1000 and 10000.
	MaxIterations          int
	MaxFunctionEvaluations int

	// ReportFailure makes Minimize and Maximize return ErrFailed
	// when the run ends in the Failed status. When false, they
	// return nil and the caller must check Status.
	ReportFailure bool
}

// DefaultSettings returns the default termination controls with
// failure reporting enabled.
func DefaultSettings() Settings {
	return Settings{
		AbsoluteTolerance:      1e-8,
		RelativeTolerance:      1e-7,
		MaxIterations:          1000,
		MaxFunctionEvaluations: 10000,
		ReportFailure:          true,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.AbsoluteTolerance > 0 {
		d.AbsoluteTolerance = s.AbsoluteTolerance
	}
	if s.RelativeTolerance > 0 {
		d.RelativeTolerance = s.RelativeTolerance
	}
	if s.MaxIterations > 0 {
		d.MaxIterations = s.MaxIterations
	}
	if s.MaxFunctionEvaluations > 0 {
		d.MaxFunctionEvaluations = s.MaxFunctionEvaluations
	}
	d.ReportFailure = s.ReportFailure
	return d
}

// converged applies the two-sided convergence test. Non-finite
// fitness values never converge, so NaN plateaus cannot read as
// success.
func (s Settings) converged(prev, cur float64) bool {
	if !mathx.IsFinite(prev) || !mathx.IsFinite(cur) {
		return false
	}
	d := math.Abs(cur - prev)
	return d <= s.AbsoluteTolerance && d <= s.RelativeTolerance*math.Max(math.Abs(cur), 1)
}

// counter wraps an objective and enforces the evaluation budget.
type counter struct {
	f     func([]float64) float64
	n     int
	limit int
}

func (c *counter) eval(x []float64) float64 {
	c.n++
	return c.f(x)
}

func (c *counter) exhausted() bool { return c.n >= c.limit }

func clampToBounds(x, lower, upper []float64) {
	for i := range x {
		if lower != nil && x[i] < lower[i] {
			x[i] = lower[i]
		}
		if upper != nil && x[i] > upper[i] {
			x[i] = upper[i]
		}
	}
}

func validBounds(lower, upper []float64, n int) bool {
	if lower == nil && upper == nil {
		return true
	}
	if lower != nil && len(lower) != n {
		return false
	}
	if upper != nil && len(upper) != n {
		return false
	}
	if lower != nil && upper != nil {
		for i := range lower {
			if lower[i] > upper[i] {
				return false
			}
		}
	}
	return true
}
