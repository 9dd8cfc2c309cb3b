// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimize

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
)

// NelderMead minimizes a multidimensional function with the downhill
// simplex method. It needs no derivatives, tolerates noisy
// objectives, and supports optional box bounds and penalty
// constraints, which makes it the workhorse behind maximum
// likelihood fits with awkward parameter domains.
type NelderMead struct {
	// Func is the objective.
	Func func(x []float64) float64

	// Initial is the starting point. It is not modified.
	Initial []float64

	// Lower and Upper optionally bound the search box. Either may
	// be nil for unbounded.
	Lower, Upper []float64

	// Constraints are enforced through penalties.
	Constraints []Constraint

	Settings

	status Status
	best   ParameterSet
}

func (o *NelderMead) Status() Status { return o.status }

func (o *NelderMead) BestParameterSet() ParameterSet { return o.best }

func (o *NelderMead) Minimize() error {
	return o.run(o.Func, 1)
}

func (o *NelderMead) Maximize() error {
	f := o.Func
	return o.run(func(x []float64) float64 { return -f(x) }, -1)
}

// Standard simplex coefficients: reflection, expansion, contraction,
// shrink.
const (
	nmAlpha = 1.0
	nmGamma = 2.0
	nmBeta  = 0.5
	nmDelta = 0.5
)

func (o *NelderMead) run(f func([]float64) float64, sign float64) error {
	s := o.Settings.withDefaults()
	o.status = Running
	o.best = ParameterSet{Fitness: math.NaN()}
	n := len(o.Initial)
	if o.Func == nil || n == 0 || !validBounds(o.Lower, o.Upper, n) {
		return o.fail(s, "NelderMead: missing objective, empty initial point, or inverted bounds")
	}

	obj := penalize(f, o.Constraints)
	c := &counter{f: obj, limit: s.MaxFunctionEvaluations}
	eval := func(x []float64) float64 {
		clampToBounds(x, o.Lower, o.Upper)
		return c.eval(x)
	}

	// Build the initial simplex: the start plus one vertex per
	// dimension, displaced 5% of the bound range (or of the
	// coordinate magnitude when unbounded).
	verts := make([]ParameterSet, n+1)
	x0 := append([]float64(nil), o.Initial...)
	clampToBounds(x0, o.Lower, o.Upper)
	verts[0] = ParameterSet{Values: x0, Fitness: eval(append([]float64(nil), x0...))}
	for i := 1; i <= n; i++ {
		v := append([]float64(nil), x0...)
		step := 0.05 * math.Max(math.Abs(v[i-1]), 1)
		if o.Lower != nil && o.Upper != nil {
			step = 0.05 * (o.Upper[i-1] - o.Lower[i-1])
		}
		if step == 0 {
			step = 0.05
		}
		v[i-1] += step
		verts[i] = ParameterSet{Values: v, Fitness: eval(v)}
	}

	centroid := make([]float64, n)
	trial := make([]float64, n)
	for i := 0; i < s.MaxIterations; i++ {
		sort.Slice(verts, func(a, b int) bool {
			fa, fb := verts[a].Fitness, verts[b].Fitness
			// NaN sorts last so degenerate vertices get replaced.
			if math.IsNaN(fb) {
				return !math.IsNaN(fa)
			}
			if math.IsNaN(fa) {
				return false
			}
			return fa < fb
		})
		low, high := verts[0], verts[n]

		if s.converged(high.Fitness, low.Fitness) {
			o.status = Converged
			break
		}
		if c.exhausted() {
			o.status = MaxFunctionEvaluationsReached
			break
		}

		// Centroid of all vertices but the worst.
		for j := range centroid {
			centroid[j] = 0
		}
		for _, v := range verts[:n] {
			floats.Add(centroid, v.Values)
		}
		floats.Scale(1/float64(n), centroid)

		// Reflect the worst vertex through the centroid.
		for j := range trial {
			trial[j] = centroid[j] + nmAlpha*(centroid[j]-high.Values[j])
		}
		fr := eval(trial)

		switch {
		case fr < low.Fitness:
			// Try expanding further.
			exp := make([]float64, n)
			for j := range exp {
				exp[j] = centroid[j] + nmGamma*(trial[j]-centroid[j])
			}
			fe := eval(exp)
			if fe < fr {
				verts[n] = ParameterSet{Values: exp, Fitness: fe}
			} else {
				verts[n] = ParameterSet{Values: append([]float64(nil), trial...), Fitness: fr}
			}
		case fr < verts[n-1].Fitness:
			verts[n] = ParameterSet{Values: append([]float64(nil), trial...), Fitness: fr}
		default:
			// Contract toward the better of the reflected
			// point and the worst vertex.
			worst := high.Values
			wf := high.Fitness
			if fr < wf || math.IsNaN(wf) {
				worst = trial
				wf = fr
			}
			for j := range trial {
				trial[j] = centroid[j] + nmBeta*(worst[j]-centroid[j])
			}
			fc := eval(trial)
			if fc < wf || math.IsNaN(wf) {
				verts[n] = ParameterSet{Values: append([]float64(nil), trial...), Fitness: fc}
			} else {
				// Shrink the whole simplex toward the best
				// vertex.
				for k := 1; k <= n; k++ {
					for j := range verts[k].Values {
						verts[k].Values[j] = low.Values[j] + nmDelta*(verts[k].Values[j]-low.Values[j])
					}
					verts[k].Fitness = eval(verts[k].Values)
				}
			}
		}
	}
	if o.status == Running {
		o.status = MaxIterationsReached
	}

	sort.Slice(verts, func(a, b int) bool {
		fa, fb := verts[a].Fitness, verts[b].Fitness
		if math.IsNaN(fb) {
			return !math.IsNaN(fa)
		}
		if math.IsNaN(fa) {
			return false
		}
		return fa < fb
	})
	if !mathx.IsFinite(verts[0].Fitness) || verts[0].Fitness >= penaltyWeight {
		return o.fail(s, "NelderMead: objective never finite and feasible")
	}
	o.best = ParameterSet{
		Values:  append([]float64(nil), verts[0].Values...),
		Fitness: sign * verts[0].Fitness,
	}
	return nil
}

func (o *NelderMead) fail(s Settings, msg string) error {
	o.status = Failed
	if s.ReportFailure {
		return fmt.Errorf("%s: %w", msg, ErrFailed)
	}
	return nil
}
