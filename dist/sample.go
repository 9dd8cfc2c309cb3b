// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly duplicated measurements.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is already sorted in ascending
	// order.
	Sorted bool
}

// Mean returns the arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// Variance returns the unbiased sample variance.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.Variance(s.Xs, nil)
}

// StdDev returns the unbiased sample standard deviation.
func (s Sample) StdDev() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.StdDev(s.Xs, nil)
}

// Bounds returns the minimum and maximum values of Xs.
func (s Sample) Bounds() (min, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	min, max = s.Xs[0], s.Xs[0]
	for _, x := range s.Xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// Copy returns a copy of the Sample that shares no state with the
// original.
func (s Sample) Copy() Sample {
	return Sample{Xs: append([]float64(nil), s.Xs...), Sorted: s.Sorted}
}

// Sort sorts the Xs of s in place and returns s for chaining.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		sort.Float64s(s.Xs)
		s.Sorted = true
	}
	return s
}

// LMoments returns the first two sample L-moments and the L-skewness
// τ₃, computed from probability-weighted moments of the order
// statistics (Hosking 1990). It returns NaNs for samples smaller
// than 3.
func (s Sample) LMoments() (l1, l2, t3 float64) {
	n := len(s.Xs)
	if n < 3 {
		return nan, nan, nan
	}
	xs := s.Xs
	if !s.Sorted {
		xs = append([]float64(nil), xs...)
		sort.Float64s(xs)
	}

	var b0, b1, b2 float64
	nf := float64(n)
	for i, x := range xs {
		f := float64(i) // number of values below x
		b0 += x
		b1 += f * x / (nf - 1)
		b2 += f * (f - 1) * x / ((nf - 1) * (nf - 2))
	}
	b0 /= nf
	b1 /= nf
	b2 /= nf

	l1 = b0
	l2 = 2*b1 - b0
	l3 := 6*b2 - 6*b1 + b0
	if l2 == 0 {
		return l1, l2, nan
	}
	return l1, l2, l3 / l2
}

// Ranks returns the 1-based ranks of xs, assigning tied values the
// average of the ranks they occupy. This is the plotting-position
// rank used to build pseudo-observations for copula estimation.
func Ranks(xs []float64) []float64 {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		// Consume the run of values tied with xs[idx[i]].
		j := i
		for j < n && xs[idx[j]] == xs[idx[i]] {
			j++
		}
		// Ranks i+1 through j; ties share the average.
		avg := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		i = j
	}
	return ranks
}
