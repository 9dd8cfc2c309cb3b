// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
)

// BFGS minimizes a multidimensional function with the
// Broyden-Fletcher-Goldfarb-Shanno quasi-Newton method. Gradients
// are approximated by central differences, so the objective must be
// smooth near the optimum but no derivative code is needed. Optional
// box bounds are enforced by clamping iterates.
type BFGS struct {
	// Func is the objective.
	Func func(x []float64) float64

	// Initial is the starting point. It is not modified.
	Initial []float64

	// Lower and Upper optionally bound the search box. Either may
	// be nil for unbounded.
	Lower, Upper []float64

	Settings

	status Status
	best   ParameterSet
}

func (o *BFGS) Status() Status { return o.status }

func (o *BFGS) BestParameterSet() ParameterSet { return o.best }

func (o *BFGS) Minimize() error {
	return o.run(o.Func, 1)
}

func (o *BFGS) Maximize() error {
	f := o.Func
	return o.run(func(x []float64) float64 { return -f(x) }, -1)
}

const gradTolerance = 1e-8

func (o *BFGS) run(f func([]float64) float64, sign float64) error {
	s := o.Settings.withDefaults()
	o.status = Running
	o.best = ParameterSet{Fitness: math.NaN()}
	n := len(o.Initial)
	if o.Func == nil || n == 0 || !validBounds(o.Lower, o.Upper, n) {
		return o.fail(s, "BFGS: missing objective, empty initial point, or inverted bounds")
	}

	c := &counter{f: f, limit: s.MaxFunctionEvaluations}
	x := append([]float64(nil), o.Initial...)
	clampToBounds(x, o.Lower, o.Upper)
	fx := c.eval(x)
	if !mathx.IsFinite(fx) {
		return o.fail(s, "BFGS: objective not finite at the initial point")
	}
	g := mathx.Gradient(c.eval, x)

	// Inverse Hessian approximation, seeded with the identity.
	h := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		h.Set(i, i, 1)
	}
	p := make([]float64, n)
	xNew := make([]float64, n)

	for i := 0; i < s.MaxIterations; i++ {
		if floats.Norm(g, 2) <= gradTolerance {
			o.status = Converged
			break
		}

		// Search direction p = -H·g.
		pv := mat.NewVecDense(n, p)
		pv.MulVec(h, mat.NewVecDense(n, g))
		floats.Scale(-1, p)

		// Backtracking line search with the Armijo condition.
		slope := floats.Dot(g, p)
		if slope >= 0 {
			// H lost positive definiteness; restart along
			// the steepest descent direction.
			copy(p, g)
			floats.Scale(-1, p)
			slope = floats.Dot(g, p)
			for j := 0; j < n; j++ {
				for k := 0; k < n; k++ {
					if j == k {
						h.Set(j, k, 1)
					} else {
						h.Set(j, k, 0)
					}
				}
			}
		}
		alpha := 1.0
		var fNew float64
		for {
			copy(xNew, x)
			floats.AddScaled(xNew, alpha, p)
			clampToBounds(xNew, o.Lower, o.Upper)
			fNew = c.eval(xNew)
			if mathx.IsFinite(fNew) && fNew <= fx+1e-4*alpha*slope {
				break
			}
			alpha *= 0.5
			if alpha < 1e-12 || c.exhausted() {
				break
			}
		}
		if !mathx.IsFinite(fNew) || fNew >= fx {
			// No downhill progress left.
			o.status = Converged
			break
		}

		gNew := mathx.Gradient(c.eval, xNew)

		// BFGS inverse Hessian update:
		// H ← (I - ρ s yᵀ) H (I - ρ y sᵀ) + ρ s sᵀ, ρ = 1/(yᵀs).
		sVec := make([]float64, n)
		yVec := make([]float64, n)
		for j := range sVec {
			sVec[j] = xNew[j] - x[j]
			yVec[j] = gNew[j] - g[j]
		}
		sy := floats.Dot(sVec, yVec)
		if sy > 1e-12 {
			rho := 1 / sy
			sv := mat.NewVecDense(n, sVec)
			yv := mat.NewVecDense(n, yVec)
			eye := mat.NewDense(n, n, nil)
			for j := 0; j < n; j++ {
				eye.Set(j, j, 1)
			}
			left := mat.NewDense(n, n, nil)
			left.Outer(rho, sv, yv)
			left.Sub(eye, left)
			tmp := mat.NewDense(n, n, nil)
			tmp.Mul(left, h)
			h.Mul(tmp, left.T())
			ss := mat.NewDense(n, n, nil)
			ss.Outer(rho, sv, sv)
			h.Add(h, ss)
		}

		prev := fx
		copy(x, xNew)
		fx = fNew
		g = gNew

		if s.converged(prev, fx) {
			o.status = Converged
			break
		}
		if c.exhausted() {
			o.status = MaxFunctionEvaluationsReached
			break
		}
	}
	if o.status == Running {
		o.status = MaxIterationsReached
	}

	if !mathx.IsFinite(fx) {
		return o.fail(s, "BFGS: objective never finite")
	}
	o.best = ParameterSet{Values: append([]float64(nil), x...), Fitness: sign * fx}
	return nil
}

func (o *BFGS) fail(s Settings, msg string) error {
	o.status = Failed
	if s.ReportFailure {
		return fmt.Errorf("%s: %w", msg, ErrFailed)
	}
	return nil
}
