// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	if got := s.Mean(); !aeq(5, got) {
		t.Errorf("Mean = %v, want 5", got)
	}
	if got := s.Variance(); !aeq(32.0/7, got) {
		t.Errorf("Variance = %v, want 32/7", got)
	}
	min, max := s.Bounds()
	if min != 2 || max != 9 {
		t.Errorf("Bounds = %v, %v, want 2, 9", min, max)
	}
}

func TestSampleEmpty(t *testing.T) {
	var s Sample
	if !math.IsNaN(s.Mean()) || !math.IsNaN(s.Variance()) {
		t.Error("empty sample moments must be NaN")
	}
}

func TestLMoments(t *testing.T) {
	// For the sample {1, 2, 3, 4, 5}: b0 = 3, b1 = 2, b2 = 1.5,
	// so λ1 = 3, λ2 = 1, λ3 = 0, τ3 = 0.
	l1, l2, t3 := Sample{Xs: []float64{5, 3, 1, 4, 2}}.LMoments()
	if !aeq(3, l1) || !aeq(1, l2) || !aeq(0, t3) {
		t.Errorf("LMoments = %v, %v, %v, want 3, 1, 0", l1, l2, t3)
	}
}

func TestRanks(t *testing.T) {
	got := Ranks([]float64{10, 30, 20})
	want := []float64{1, 3, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Ranks = %v, want %v", got, want)
		}
	}

	// Ties share the average of the ranks they occupy.
	got = Ranks([]float64{1, 2, 2, 3})
	want = []float64{1, 2.5, 2.5, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Ranks with ties = %v, want %v", got, want)
		}
	}
}
