// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
	"testing"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/mathx"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFamilies returns one valid instance of every family.
func testFamilies() []Continuous {
	return []Continuous{
		NewNormal(1.5, 2),
		NewUniform(-1, 3),
		NewTriangular(0, 2, 5),
		NewExponential(0.7),
		NewWeibull(2, 3),
		NewGEV(10, 2, 0.1),
		NewGEV(10, 2, -0.1),
		NewGEV(10, 2, 0),
	}
}

func TestInvCDFRoundTrip(t *testing.T) {
	ps := []float64{1e-6, 0.001, 0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 0.999, 1 - 1e-6}
	for _, d := range testFamilies() {
		for _, p := range ps {
			x := d.InvCDF(p)
			got := d.CDF(x)
			if math.Abs(got-p) > 1e-6 {
				t.Errorf("%v: CDF(InvCDF(%v)) = %v", d.Family(), p, got)
			}
		}
	}
}

func TestInvCDFBounds(t *testing.T) {
	for _, d := range testFamilies() {
		lo, hi := d.Support()
		glo, ghi := d.InvCDF(0), d.InvCDF(1)
		if glo != lo || ghi != hi {
			t.Errorf("%v: InvCDF(0), InvCDF(1) = %v, %v, want support %v, %v",
				d.Family(), glo, ghi, lo, hi)
		}
		if !math.IsNaN(d.InvCDF(-0.1)) || !math.IsNaN(d.InvCDF(1.1)) {
			t.Errorf("%v: InvCDF outside [0,1] must be NaN", d.Family())
		}
	}
}

func TestOutsideSupport(t *testing.T) {
	for _, d := range testFamilies() {
		lo, hi := d.Support()
		if !math.IsInf(lo, -1) {
			if got := d.PDF(lo - 1); got != 0 {
				t.Errorf("%v: PDF below support = %v, want 0", d.Family(), got)
			}
			if got := d.CDF(lo - 1); got != 0 {
				t.Errorf("%v: CDF below support = %v, want 0", d.Family(), got)
			}
		}
		if !math.IsInf(hi, 1) {
			if got := d.PDF(hi + 1); got != 0 {
				t.Errorf("%v: PDF above support = %v, want 0", d.Family(), got)
			}
			if got := d.CDF(hi + 1); got != 1 {
				t.Errorf("%v: CDF above support = %v, want 1", d.Family(), got)
			}
		}
	}
}

func TestInvalidParameters(t *testing.T) {
	cases := []struct {
		d      Continuous
		params []float64
	}{
		{&Normal{}, []float64{0, -1}},
		{&Uniform{}, []float64{3, 1}},
		{&Triangular{}, []float64{0, 5, 2}},
		{&Exponential{}, []float64{-2}},
		{&Weibull{}, []float64{0, 1}},
		{&GEV{}, []float64{0, -1, 0}},
	}
	for _, c := range cases {
		if err := c.d.SetParams(c.params); !errors.Is(err, ErrParameter) {
			t.Errorf("%v.SetParams(%v) = %v, want ErrParameter", c.d.Family(), c.params, err)
		}
		// Wrong arity.
		if err := c.d.ValidateParams([]float64{1}); c.d.Family() != FamilyExponential && !errors.Is(err, ErrParameter) {
			t.Errorf("%v: wrong arity not rejected", c.d.Family())
		}
	}

	// Evaluation on an invalid distribution degrades to NaN and
	// LogMin, never panics.
	bad := &Normal{Mu: 0, Sigma: -1}
	if !math.IsNaN(bad.PDF(0)) || !math.IsNaN(bad.CDF(0)) || !math.IsNaN(bad.InvCDF(0.5)) {
		t.Error("invalid normal must evaluate to NaN")
	}
	if bad.LogPDF(0) != mathx.LogMin {
		t.Errorf("invalid normal LogPDF = %v, want LogMin", bad.LogPDF(0))
	}
}

func TestLogDomainClamping(t *testing.T) {
	d := NewUniform(0, 1)
	// Outside the support the density is 0; log must clamp, not
	// go to -Inf.
	if got := d.LogPDF(2); got != mathx.LogMin {
		t.Errorf("LogPDF outside support = %v, want LogMin", got)
	}
	if got := d.LogCDF(-1); got != mathx.LogMin {
		t.Errorf("LogCDF below support = %v, want LogMin", got)
	}
	if got := d.LogPDF(0.5); !aeq(0, got) {
		t.Errorf("LogPDF(0.5) = %v, want 0", got)
	}
}

func TestNormalAgainstTable(t *testing.T) {
	d := NewNormal(0, 1)
	// Standard normal values.
	if got := d.CDF(0); !aeq(0.5, got) {
		t.Errorf("Φ(0) = %v, want 0.5", got)
	}
	if got := d.CDF(1.96); math.Abs(got-0.9750021) > 1e-6 {
		t.Errorf("Φ(1.96) = %v, want 0.9750021", got)
	}
	if got := d.PDF(0); !aeq(0.3989423, got) {
		t.Errorf("φ(0) = %v, want 0.3989423", got)
	}
	if got := d.InvCDF(0.975); math.Abs(got-1.959964) > 1e-5 {
		t.Errorf("Φ⁻¹(0.975) = %v, want 1.959964", got)
	}
}

func TestClone(t *testing.T) {
	d := NewNormal(1, 2)
	c := d.Clone().(*Normal)
	c.Mu = 99
	if d.Mu != 1 {
		t.Error("Clone shares state with the original")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, d := range testFamilies() {
		data, err := Marshal(d)
		if err != nil {
			t.Fatalf("%v: %v", d.Family(), err)
		}
		got, err := Unmarshal(data)
		if err != nil {
			t.Fatalf("%v: %v", d.Family(), err)
		}
		if got.Family() != d.Family() {
			t.Errorf("family %v round-tripped to %v", d.Family(), got.Family())
		}
		gp, dp := got.Params(), d.Params()
		for i := range dp {
			if gp[i] != dp[i] {
				t.Errorf("%v: params %v round-tripped to %v", d.Family(), dp, gp)
			}
		}
	}

	if _, err := Unmarshal([]byte(`{"family":"cauchy","parameters":[0,1]}`)); err == nil {
		t.Error("unknown family must fail to unmarshal")
	}
	if _, err := Unmarshal([]byte(`{"family":"normal","parameters":[0,-1]}`)); !errors.Is(err, ErrParameter) {
		t.Error("invalid parameters must fail to unmarshal")
	}
}
