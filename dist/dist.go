// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist provides univariate continuous probability distributions
// behind a common contract: density, cumulative probability, inverse
// cumulative probability, log-domain variants, parameter validation,
// and parameter estimation.
//
// Validation is lazy. A distribution may be constructed with
// provisional parameters (for example, before fitting); SetParams
// reports invalid parameters eagerly, but PDF, CDF, and InvCDF on an
// invalid distribution simply return NaN (and the log variants
// return mathx.LogMin) rather than panicking, so optimizer
// objectives probing a parameter space stay well-defined.
package dist

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

// ErrParameter is returned when distribution parameters fall outside
// their family's domain.
var ErrParameter = errors.New("parameter out of range")

// ErrUnsupported is returned when an operation is not implemented
// for a family.
var ErrUnsupported = errors.New("unsupported operation")

// ErrSampleSize is returned when a sample is too small or too
// degenerate to estimate parameters from.
var ErrSampleSize = errors.New("sample is too small")

// A Continuous is a univariate continuous probability distribution.
type Continuous interface {
	// Family returns the distribution family tag.
	Family() Family

	// Params returns the ordered parameter vector.
	Params() []float64

	// SetParams validates and installs a parameter vector.
	SetParams(params []float64) error

	// ValidateParams reports whether params lie within the
	// family's domain, returning an error wrapping ErrParameter
	// if not. It does not modify the distribution.
	ValidateParams(params []float64) error

	// PDF returns the probability density at x, 0 outside the
	// support, and NaN if the current parameters are invalid.
	PDF(x float64) float64

	// CDF returns the cumulative probability at x, 0 below and 1
	// above the support, and NaN if the current parameters are
	// invalid.
	CDF(x float64) float64

	// InvCDF returns the value x with CDF(x) = p for p in [0, 1].
	// InvCDF(0) and InvCDF(1) return the support bounds, which
	// may be infinite. Arguments outside [0, 1] yield NaN.
	InvCDF(p float64) float64

	// LogPDF returns log(PDF(x)) with non-positive densities
	// clamped to mathx.LogMin.
	LogPDF(x float64) float64

	// LogCDF returns log(CDF(x)) with the same clamping.
	LogCDF(x float64) float64

	// Support returns the lower and upper bounds of the support,
	// either of which may be infinite.
	Support() (lo, hi float64)

	// Clone returns an independent copy.
	Clone() Continuous
}

// A MaximumLikelihoodEstimator can fit its parameters to a sample by
// maximum likelihood.
type MaximumLikelihoodEstimator interface {
	FitMLE(xs []float64) error
}

// A MomentEstimator can fit its parameters from sample moments.
type MomentEstimator interface {
	FitMoments(xs []float64) error
}

// A LinearMomentEstimator can fit its parameters from sample
// L-moments.
type LinearMomentEstimator interface {
	FitLinearMoments(xs []float64) error
}

// Family identifies a distribution family for dispatch and
// serialization.
type Family int

const (
	FamilyNormal Family = iota
	FamilyUniform
	FamilyTriangular
	FamilyExponential
	FamilyWeibull
	FamilyGEV
)

func (f Family) String() string {
	switch f {
	case FamilyNormal:
		return "normal"
	case FamilyUniform:
		return "uniform"
	case FamilyTriangular:
		return "triangular"
	case FamilyExponential:
		return "exponential"
	case FamilyWeibull:
		return "weibull"
	case FamilyGEV:
		return "gev"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily returns the Family named by s.
func ParseFamily(s string) (Family, error) {
	for _, f := range []Family{FamilyNormal, FamilyUniform, FamilyTriangular, FamilyExponential, FamilyWeibull, FamilyGEV} {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown distribution family %q", s)
}

// New constructs a distribution of the given family from its ordered
// parameter vector.
func New(f Family, params []float64) (Continuous, error) {
	var d Continuous
	switch f {
	case FamilyNormal:
		d = &Normal{}
	case FamilyUniform:
		d = &Uniform{}
	case FamilyTriangular:
		d = &Triangular{}
	case FamilyExponential:
		d = &Exponential{}
	case FamilyWeibull:
		d = &Weibull{}
	case FamilyGEV:
		d = &GEV{}
	default:
		return nil, fmt.Errorf("unknown distribution family %v", f)
	}
	if err := d.SetParams(params); err != nil {
		return nil, err
	}
	return d, nil
}

// encoded is the stable (family, parameter-array) wire form shared
// with persistence layers.
type encoded struct {
	Family     string    `json:"family"`
	Parameters []float64 `json:"parameters"`
}

// Marshal encodes d as its (family, parameter-array) JSON document.
func Marshal(d Continuous) ([]byte, error) {
	return json.Marshal(encoded{Family: d.Family().String(), Parameters: d.Params()})
}

// Unmarshal reconstructs a distribution from Marshal's encoding.
func Unmarshal(data []byte) (Continuous, error) {
	var e encoded
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	f, err := ParseFamily(e.Family)
	if err != nil {
		return nil, err
	}
	return New(f, e.Parameters)
}

// paramCountErr builds the standard wrong-arity validation error.
func paramCountErr(f Family, want, got int) error {
	return fmt.Errorf("%v: want %d parameters, got %d: %w", f, want, got, ErrParameter)
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
