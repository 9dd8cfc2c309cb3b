// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/rootfind"
)

// A generator is the defining function family of an Archimedean
// copula: a strictly decreasing φ on (0, 1] with φ(1) = 0, its
// inverse, and its first two derivatives. Every Archimedean family
// builds CDF, PDF, and conditional distributions from these five
// functions:
//
//	C(u,v)  = φ⁻¹(φ(u) + φ(v))
//	c(u,v)  = -φ''(C)·φ'(u)·φ'(v) / φ'(C)³
//	H(v|u)  = ∂C/∂u = φ'(u) / φ'(C)
type generator interface {
	Generator(t float64) float64
	GeneratorInv(s float64) float64
	GeneratorPrime(t float64) float64
	GeneratorPrime2(t float64) float64
}

// condEps keeps conditional root searches strictly inside (0, 1),
// where the generator derivatives are finite.
const condEps = 1e-12

func archCDF(g generator, u, v float64) float64 {
	if u <= 0 || v <= 0 {
		return 0
	}
	if u >= 1 {
		u = 1
	}
	if v >= 1 {
		v = 1
	}
	return g.GeneratorInv(g.Generator(u) + g.Generator(v))
}

func archPDF(g generator, u, v float64) float64 {
	if u <= 0 || u >= 1 || v <= 0 || v >= 1 {
		return 0
	}
	c := archCDF(g, u, v)
	gpc := g.GeneratorPrime(c)
	return -g.GeneratorPrime2(c) * g.GeneratorPrime(u) * g.GeneratorPrime(v) / (gpc * gpc * gpc)
}

// archCond returns the conditional distribution H(v|u) = ∂C/∂u.
func archCond(g generator, u, v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	c := archCDF(g, u, v)
	return g.GeneratorPrime(u) / g.GeneratorPrime(c)
}

// archCondInv solves H(v|u) = p for v with a bounded root search.
// There is no closed form for general generators.
func archCondInv(g generator, u, p float64) float64 {
	if u <= 0 || u >= 1 || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	f := func(v float64) float64 { return archCond(g, u, v) - p }
	lo, hi := condEps, 1-condEps
	flo, fhi := f(lo), f(hi)
	if flo >= 0 {
		return 0
	}
	if fhi <= 0 {
		return 1
	}
	v, err := rootfind.Brent(f, lo, hi, 1e-12)
	if err != nil {
		return nan
	}
	return v
}
