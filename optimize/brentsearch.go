// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimize

import (
	"fmt"
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
)

// BrentSearch minimizes a one-dimensional function over [Lower,
// Upper] using Brent's method: golden-section steps with parabolic
// interpolation where the local shape supports it. No derivative is
// required. Termination uses Brent's interval criterion with the
// width tolerance RelativeTolerance·|x| + AbsoluteTolerance.
type BrentSearch struct {
	// Func is the objective.
	Func func(x float64) float64

	// Lower and Upper bound the search. Lower must be strictly
	// less than Upper.
	Lower, Upper float64

	Settings

	status Status
	best   ParameterSet
}

// Status reports how the last run terminated.
func (b *BrentSearch) Status() Status { return b.status }

// BestParameterSet returns the best point seen by the last run.
func (b *BrentSearch) BestParameterSet() ParameterSet { return b.best }

// Minimize runs the search for the minimum of Func.
func (b *BrentSearch) Minimize() error {
	return b.run(b.Func, 1)
}

// Maximize runs the search for the maximum of Func, implemented as
// minimization of the negated objective. BestParameterSet reports
// the un-negated fitness.
func (b *BrentSearch) Maximize() error {
	f := b.Func
	return b.run(func(x float64) float64 { return -f(x) }, -1)
}

const goldenRatio = 0.3819660112501051 // (3 - √5)/2

func (b *BrentSearch) run(f func(float64) float64, sign float64) error {
	s := b.Settings.withDefaults()
	b.status = Running
	b.best = ParameterSet{Fitness: math.NaN()}
	if b.Func == nil || !(b.Lower < b.Upper) {
		return b.fail(s, "BrentSearch: missing objective or inverted bounds")
	}

	evals := 0
	eval := func(x float64) float64 {
		evals++
		return f(x)
	}

	a, bb := b.Lower, b.Upper
	x := a + goldenRatio*(bb-a)
	w, v := x, x
	fx := eval(x)
	fw, fv := fx, fx
	anyFinite := mathx.IsFinite(fx)

	var d, e float64
	for i := 0; i < s.MaxIterations; i++ {
		xm := 0.5 * (a + bb)
		tol1 := s.RelativeTolerance*math.Abs(x) + s.AbsoluteTolerance
		tol2 := 2 * tol1
		if math.Abs(x-xm) <= tol2-0.5*(bb-a) {
			b.status = Converged
			break
		}

		useGolden := true
		if math.Abs(e) > tol1 {
			// Fit a parabola through x, w, v.
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			etmp := e
			e = d
			if math.Abs(p) < math.Abs(0.5*q*etmp) && p > q*(a-x) && p < q*(bb-x) {
				d = p / q
				u := x + d
				if u-a < tol2 || bb-u < tol2 {
					d = math.Copysign(tol1, xm-x)
				}
				useGolden = false
			}
		}
		if useGolden {
			if x >= xm {
				e = a - x
			} else {
				e = bb - x
			}
			d = goldenRatio * e
		}

		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + math.Copysign(tol1, d)
		}
		fu := eval(u)
		anyFinite = anyFinite || mathx.IsFinite(fu)

		if fu <= fx || math.IsNaN(fx) {
			if u >= x {
				a = x
			} else {
				bb = x
			}
			v, w = w, x
			fv, fw = fw, fx
			x, fx = u, fu
		} else {
			if u < x {
				a = u
			} else {
				bb = u
			}
			if fu <= fw || w == x {
				v, fv = w, fw
				w, fw = u, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}

		if evals >= s.MaxFunctionEvaluations {
			b.status = MaxFunctionEvaluationsReached
			break
		}
	}
	if b.status == Running {
		b.status = MaxIterationsReached
	}

	if !anyFinite || !mathx.IsFinite(fx) {
		return b.fail(s, "BrentSearch: objective never finite")
	}
	b.best = ParameterSet{Values: []float64{x}, Fitness: sign * fx}
	return nil
}

func (b *BrentSearch) fail(s Settings, msg string) error {
	b.status = Failed
	if s.ReportFailure {
		return fmt.Errorf("%s: %w", msg, ErrFailed)
	}
	return nil
}
