// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qblas

import (
	"testing"

	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
	"github.com/pikapuma/QuBLAS/qtensor"
)

func vecOf(vals []float64, f policy.Format) *qtensor.Tensor {
	v := qtensor.NewTensor(f, len(vals))
	for i, x := range vals {
		v.Set(qfx.FromFloat64(x, f), i)
	}
	return v
}

func TestQgemvAssignWhenBetaZeroAlphaOne(t *testing.T) {
	f := fmtOf(8, 8, true)
	A := qtensor.NewTensor(f, 2, 2)
	fill2D(A, 2, 2, [][]float64{{1, 2}, {3, 4}}, f)
	x := vecOf([]float64{1, 1}, f)

	var y qtensor.Tensor
	bundle := policy.New(policy.FullPrec())
	alpha := qfx.FromFloat64(1.0, f)
	beta := qfx.FromFloat64(0.0, f)
	Qgemv(&y, A, x, false, bundle, bundle, alpha, beta)

	if got := y.At(0).Float64(); got != 3.0 {
		t.Errorf("y[0] = %v, want 3.0", got)
	}
	if got := y.At(1).Float64(); got != 7.0 {
		t.Errorf("y[1] = %v, want 7.0", got)
	}
}

func TestQgemvScalesByAlpha(t *testing.T) {
	f := fmtOf(8, 8, true)
	A := qtensor.NewTensor(f, 2, 2)
	fill2D(A, 2, 2, [][]float64{{1, 0}, {0, 1}}, f)
	x := vecOf([]float64{2, 3}, f)

	var y qtensor.Tensor
	bundle := policy.New(policy.FullPrec())
	alpha := qfx.FromFloat64(2.0, f)
	beta := qfx.FromFloat64(0.0, f)
	Qgemv(&y, A, x, false, bundle, bundle, alpha, beta)

	if got := y.At(0).Float64(); got != 4.0 {
		t.Errorf("y[0] = %v, want 4.0", got)
	}
	if got := y.At(1).Float64(); got != 6.0 {
		t.Errorf("y[1] = %v, want 6.0", got)
	}
}

func TestQgemvFullAffineCompose(t *testing.T) {
	f := fmtOf(8, 8, true)
	A := qtensor.NewTensor(f, 2, 2)
	fill2D(A, 2, 2, [][]float64{{1, 0}, {0, 1}}, f)
	x := vecOf([]float64{1, 1}, f)
	y := vecOf([]float64{10, 20}, f)

	bundle := policy.New(policy.FullPrec())
	alpha := qfx.FromFloat64(2.0, f)
	beta := qfx.FromFloat64(0.5, f)
	Qgemv(y, A, x, false, bundle, bundle, alpha, beta)

	// y[0] = 0.5*10 + 2*1 = 7; y[1] = 0.5*20 + 2*1 = 12
	if got := y.At(0).Float64(); got != 7.0 {
		t.Errorf("y[0] = %v, want 7.0", got)
	}
	if got := y.At(1).Float64(); got != 12.0 {
		t.Errorf("y[1] = %v, want 12.0", got)
	}
}

func TestQgemvShapeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on x length mismatch")
		}
	}()
	f := fmtOf(8, 8, true)
	A := qtensor.NewTensor(f, 2, 3)
	x := vecOf([]float64{1, 1}, f) // wrong length: A has 3 cols
	var y qtensor.Tensor
	bundle := policy.New()
	Qgemv(&y, A, x, false, bundle, bundle, qfx.FromFloat64(1, f), qfx.FromFloat64(0, f))
}
