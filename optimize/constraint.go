// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimize

import "math"

// ConstraintType selects how a Constraint compares its function
// value against the target.
type ConstraintType int

const (
	EqualTo ConstraintType = iota
	LessThanOrEqual
	GreaterThanOrEqual
)

// A Constraint restricts candidate points to those where F(x)
// compares against Target within Tolerance. Bounded methods
// (NelderMead, DifferentialEvolution) enforce constraints by adding
// a penalty proportional to the violation.
type Constraint struct {
	F         func(x []float64) float64
	Target    float64
	Tolerance float64
	Type      ConstraintType
}

// Violation returns how far x is outside the constraint, or 0 if it
// is satisfied.
func (c Constraint) Violation(x []float64) float64 {
	d := c.F(x) - c.Target
	switch c.Type {
	case LessThanOrEqual:
		d -= c.Tolerance
	case GreaterThanOrEqual:
		d = -d - c.Tolerance
	default: // EqualTo
		d = math.Abs(d) - c.Tolerance
	}
	if d <= 0 {
		return 0
	}
	return d
}

const penaltyWeight = 1e10

// penalize wraps f so that constraint violations dominate the
// objective.
func penalize(f func([]float64) float64, cs []Constraint) func([]float64) float64 {
	if len(cs) == 0 {
		return f
	}
	return func(x []float64) float64 {
		p := 0.0
		for _, c := range cs {
			p += c.Violation(x)
		}
		if p > 0 {
			return penaltyWeight * (1 + p)
		}
		return f(x)
	}
}
