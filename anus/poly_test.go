// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anus

import (
	"testing"

	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
)

func fmtOf(i, f int, signed bool) policy.Format {
	return policy.Format{IntBits: i, FracBits: f, Signed: signed, Rnd: policy.RndNegInf, Ovf: policy.OvfSatTcpl}
}

// TestPolyQuadratic checks Horner evaluation of 2x²+3x+1 at x=2 -> 15.
func TestPolyQuadratic(t *testing.T) {
	f := fmtOf(8, 8, true)
	x := qfx.FromFloat64(2.0, f)
	a0 := qfx.FromFloat64(2.0, f)
	a1 := qfx.FromFloat64(3.0, f)
	a2 := qfx.FromFloat64(1.0, f)
	got := Poly(x, a0, a1, a2)
	if got.Float64() != 15.0 {
		t.Errorf("Poly(2; 2,3,1) = %v, want 15.0", got.Float64())
	}
}

func TestPolyFinalFormatMatchesLastCoeff(t *testing.T) {
	f := fmtOf(8, 8, true)
	x := qfx.FromFloat64(1.0, f)
	a0 := qfx.FromFloat64(1.0, f)
	narrow := fmtOf(2, 2, true)
	a1 := qfx.FromFloat64(1.0, narrow)
	got := Poly(x, a0, a1)
	if got.Format() != narrow {
		t.Errorf("Poly final format = %+v, want %+v", got.Format(), narrow)
	}
}

func TestPolySingleCoefficientIsIdentity(t *testing.T) {
	f := fmtOf(8, 8, true)
	x := qfx.FromFloat64(7.0, f)
	a0 := qfx.FromFloat64(3.5, f)
	got := Poly(x, a0)
	if got.Float64() != 3.5 {
		t.Errorf("Poly single-coeff = %v, want 3.5 (x ignored)", got.Float64())
	}
}

func TestPolyNoCoefficientsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Poly with no coefficients")
		}
	}()
	f := fmtOf(8, 8, true)
	Poly(qfx.FromFloat64(1.0, f))
}
