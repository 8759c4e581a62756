// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qtensor

import (
	"testing"

	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
)

func TestQaddMaterializesElementwise(t *testing.T) {
	f := fmtOf(8, 8, true)
	a := NewTensor(f, 2, 2)
	b := NewTensor(f, 2, 2)
	vals := [][2]float64{{1, 2}, {3, 4}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a.Set(qfx.FromFloat64(vals[i][j], f), i, j)
			b.Set(qfx.FromFloat64(1.0, f), i, j)
		}
	}
	expr := Qadd(a, b, policy.New())
	var dst Tensor
	Materialize(&dst, expr, f)
	want := [][2]float64{{2, 3}, {4, 5}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := dst.At(i, j).Float64(); got != want[i][j] {
				t.Errorf("dst[%d][%d] = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

func TestScalarBroadcast(t *testing.T) {
	f := fmtOf(8, 8, true)
	a := NewTensor(f, 3)
	for i := 0; i < 3; i++ {
		a.Set(qfx.FromFloat64(float64(i+1), f), i)
	}
	two := Scalar{V: qfx.FromFloat64(2.0, f)}
	expr := Qmul(a, two, policy.New(policy.FullPrec()))
	var dst Tensor
	Materialize(&dst, expr, f)
	want := []float64{2, 4, 6}
	for i := 0; i < 3; i++ {
		if got := dst.At(i).Float64(); got != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, got, want[i])
		}
	}
}

func TestComposedExprDoesNotMaterializeIntermediate(t *testing.T) {
	f := fmtOf(8, 8, true)
	a := NewTensor(f, 2)
	b := NewTensor(f, 2)
	c := NewTensor(f, 2)
	a.Set(qfx.FromFloat64(1.0, f), 0)
	a.Set(qfx.FromFloat64(2.0, f), 1)
	b.Set(qfx.FromFloat64(3.0, f), 0)
	b.Set(qfx.FromFloat64(4.0, f), 1)
	c.Set(qfx.FromFloat64(2.0, f), 0)
	c.Set(qfx.FromFloat64(2.0, f), 1)

	sum := Qadd(a, b, policy.New())
	prod := Qmul(sum, c, policy.New())
	if got := prod.At(0).Float64(); got != 8.0 { // (1+3)*2
		t.Errorf("prod.At(0) = %v, want 8.0", got)
	}
	if got := prod.At(1).Float64(); got != 12.0 { // (2+4)*2
		t.Errorf("prod.At(1) = %v, want 12.0", got)
	}
}

func TestQnegAndQabs(t *testing.T) {
	f := fmtOf(8, 8, true)
	a := NewTensor(f, 2)
	a.Set(qfx.FromFloat64(3.0, f), 0)
	a.Set(qfx.FromFloat64(-5.0, f), 1)

	neg := Qneg(a, policy.New())
	if got := neg.At(0).Float64(); got != -3.0 {
		t.Errorf("Qneg.At(0) = %v, want -3.0", got)
	}

	abs := Qabs(a, policy.New())
	if got := abs.At(1).Float64(); got != 5.0 {
		t.Errorf("Qabs.At(1) = %v, want 5.0", got)
	}
}
