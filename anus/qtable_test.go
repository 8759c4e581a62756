// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anus

import (
	"math"
	"testing"

	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
)

func TestSqrtPreset(t *testing.T) {
	f := fmtOf(8, 8, true)
	x := qfx.FromFloat64(4.0, f)
	got := Sqrt(x)
	if got.Float64() != 2.0 {
		t.Errorf("Sqrt(4) = %v, want 2.0", got.Float64())
	}
	if got.Format() != f {
		t.Errorf("Sqrt result format = %+v, want %+v (x's own format)", got.Format(), f)
	}
}

func TestRsqrtPreset(t *testing.T) {
	f := fmtOf(8, 8, true)
	x := qfx.FromFloat64(4.0, f)
	got := Rsqrt(x)
	lsb := math.Ldexp(1, -f.FracBits)
	if math.Abs(got.Float64()-0.5) > lsb {
		t.Errorf("Rsqrt(4) = %v, want ~0.5", got.Float64())
	}
}

func TestReciprocalPreset(t *testing.T) {
	f := fmtOf(8, 8, true)
	x := qfx.FromFloat64(4.0, f)
	got := Reciprocal(x)
	if got.Float64() != 0.25 {
		t.Errorf("Reciprocal(4) = %v, want 0.25", got.Float64())
	}
}

func TestExpPreset(t *testing.T) {
	f := fmtOf(8, 8, true)
	x := qfx.FromFloat64(0.0, f)
	got := Exp(x)
	if got.Float64() != 1.0 {
		t.Errorf("Exp(0) = %v, want 1.0", got.Float64())
	}
}

// TestQtableUsesRoundZeroInternally picks x=1.0 (exact at frac_bits=1, so
// construction introduces no rounding) and f(v)=0.75v, whose result 0.75
// lands exactly on a tie when quantized back to frac_bits=1 (scaled =
// 1.5). The tie must resolve toward zero (floor, giving 0.5) even though
// x's own Format declares POS_INF rounding, which would instead round the
// tie up to 1.0 — proof that Qtable's internal quantization always uses
// RND::ZERO, never x's own mode (spec §4.7).
func TestQtableUsesRoundZeroInternally(t *testing.T) {
	threeQuarters := func(v float64) float64 { return 0.75 * v }

	posInf := fmtOf(4, 1, true)
	posInf.Rnd = policy.RndPosInf

	x := qfx.FromFloat64(1.0, posInf)
	got := Qtable(threeQuarters, x).Float64()
	if got != 0.5 {
		t.Errorf("Qtable(0.75x, 1.0) with POS_INF-tagged x = %v, want 0.5 (RND::ZERO)", got)
	}
}
