// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimize

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
)

// DifferentialEvolution minimizes a multidimensional function with
// the best/1/bin differential evolution strategy. It is a global,
// derivative-free method; use it when the objective is multimodal or
// too rough for BFGS and Nelder-Mead. Both bounds are required.
type DifferentialEvolution struct {
	// Func is the objective.
	Func func(x []float64) float64

	// Lower and Upper bound the search box. Both are required and
	// every Lower[i] must be strictly below Upper[i].
	Lower, Upper []float64

	// PopulationSize is the number of candidate vectors. The
	// default is max(15, 10·dim).
	PopulationSize int

	// Mutation is the differential weight F in (0, 2]. Default 0.8.
	Mutation float64

	// Crossover is the crossover probability CR in [0, 1].
	// Default 0.9.
	Crossover float64

	// Seed seeds the private random source, making runs
	// reproducible. Zero means seed 1.
	Seed int64

	// Constraints are enforced through penalties.
	Constraints []Constraint

	Settings

	status Status
	best   ParameterSet
}

func (o *DifferentialEvolution) Status() Status { return o.status }

func (o *DifferentialEvolution) BestParameterSet() ParameterSet { return o.best }

func (o *DifferentialEvolution) Minimize() error {
	return o.run(o.Func, 1)
}

func (o *DifferentialEvolution) Maximize() error {
	f := o.Func
	return o.run(func(x []float64) float64 { return -f(x) }, -1)
}

// deStallGenerations is how many consecutive converged-looking
// generations are required before the run stops. A single stalled
// generation is common early on and does not mean much.
const deStallGenerations = 10

func (o *DifferentialEvolution) run(f func([]float64) float64, sign float64) error {
	s := o.Settings.withDefaults()
	o.status = Running
	o.best = ParameterSet{Fitness: math.NaN()}
	n := len(o.Lower)
	if o.Func == nil || n == 0 || len(o.Upper) != n {
		return o.fail(s, "DifferentialEvolution: missing objective or bounds")
	}
	for i := range o.Lower {
		if !(o.Lower[i] < o.Upper[i]) {
			return o.fail(s, "DifferentialEvolution: inverted bounds")
		}
	}

	np := o.PopulationSize
	if np <= 0 {
		np = 10 * n
		if np < 15 {
			np = 15
		}
	}
	fw := o.Mutation
	if fw <= 0 {
		fw = 0.8
	}
	cr := o.Crossover
	if cr <= 0 {
		cr = 0.9
	}
	seed := o.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	obj := penalize(f, o.Constraints)
	c := &counter{f: obj, limit: s.MaxFunctionEvaluations}

	// Random initial population across the box.
	pop := make([]ParameterSet, np)
	bestIdx := 0
	for i := range pop {
		v := make([]float64, n)
		for j := range v {
			v[j] = o.Lower[j] + rng.Float64()*(o.Upper[j]-o.Lower[j])
		}
		pop[i] = ParameterSet{Values: v, Fitness: c.eval(v)}
		if better(pop[i].Fitness, pop[bestIdx].Fitness) {
			bestIdx = i
		}
	}

	trial := make([]float64, n)
	stall := 0
	for gen := 0; gen < s.MaxIterations; gen++ {
		prevBest := pop[bestIdx].Fitness
		for i := range pop {
			// Pick two distinct vectors different from i and
			// the best.
			r1 := rng.Intn(np)
			for r1 == i || r1 == bestIdx {
				r1 = rng.Intn(np)
			}
			r2 := rng.Intn(np)
			for r2 == i || r2 == bestIdx || r2 == r1 {
				r2 = rng.Intn(np)
			}

			jRand := rng.Intn(n)
			for j := 0; j < n; j++ {
				if j == jRand || rng.Float64() < cr {
					trial[j] = pop[bestIdx].Values[j] + fw*(pop[r1].Values[j]-pop[r2].Values[j])
					if trial[j] < o.Lower[j] {
						trial[j] = o.Lower[j]
					} else if trial[j] > o.Upper[j] {
						trial[j] = o.Upper[j]
					}
				} else {
					trial[j] = pop[i].Values[j]
				}
			}
			ft := c.eval(trial)
			if better(ft, pop[i].Fitness) {
				copy(pop[i].Values, trial)
				pop[i].Fitness = ft
				if better(ft, pop[bestIdx].Fitness) {
					bestIdx = i
				}
			}
			if c.exhausted() {
				break
			}
		}

		if s.converged(prevBest, pop[bestIdx].Fitness) {
			stall++
			if stall >= deStallGenerations {
				o.status = Converged
				break
			}
		} else {
			stall = 0
		}
		if c.exhausted() {
			o.status = MaxFunctionEvaluationsReached
			break
		}
	}
	if o.status == Running {
		o.status = MaxIterationsReached
	}

	bf := pop[bestIdx].Fitness
	if !mathx.IsFinite(bf) || bf >= penaltyWeight {
		return o.fail(s, "DifferentialEvolution: objective never finite and feasible")
	}
	o.best = ParameterSet{
		Values:  append([]float64(nil), pop[bestIdx].Values...),
		Fitness: sign * bf,
	}
	return nil
}

// better reports whether fitness a beats b, treating NaN as worse
// than anything.
func better(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a < b
}

func (o *DifferentialEvolution) fail(s Settings, msg string) error {
	o.status = Failed
	if s.ReportFailure {
		return fmt.Errorf("%s: %w", msg, ErrFailed)
	}
	return nil
}
