// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qlapack

import (
	"math"
	"testing"

	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
	"github.com/pikapuma/QuBLAS/qtensor"
)

func fmtOf(i, f int, signed bool) policy.Format {
	return policy.Format{IntBits: i, FracBits: f, Signed: signed, Rnd: policy.RndTcpl, Ovf: policy.OvfSatTcpl}
}

func fill2D(t *qtensor.Tensor, vals [][]float64, f policy.Format) {
	for i, row := range vals {
		for j, v := range row {
			t.Set(qfx.FromFloat64(v, f), i, j)
		}
	}
}

// TestQpotrf2x2 is spec §8 scenario 6: Cholesky of [[4,2],[2,3]] in
// (8,16,true) stores 1/2 and 1/√2 on the diagonal.
func TestQpotrf2x2(t *testing.T) {
	f := fmtOf(8, 16, true)
	A := qtensor.NewTensor(f, 2, 2)
	fill2D(A, [][]float64{{4, 2}, {2, 3}}, f)

	ok := Qpotrf(A, policy.New())
	if !ok {
		t.Fatal("Qpotrf reported not positive definite")
	}

	lsb := math.Ldexp(1, -f.FracBits)
	if got := A.At(0, 0).Float64(); math.Abs(got-0.5) > lsb {
		t.Errorf("A[0][0] = %v, want ~0.5", got)
	}
	if got := A.At(1, 0).Float64(); math.Abs(got-1.0) > lsb {
		t.Errorf("A[1][0] = %v, want ~1.0", got)
	}
	if got := A.At(1, 1).Float64(); math.Abs(got-1/math.Sqrt(2)) > lsb {
		t.Errorf("A[1][1] = %v, want ~1/sqrt(2)", got)
	}
}

func TestQpotrfDetectsNonPD(t *testing.T) {
	f := fmtOf(8, 16, true)
	A := qtensor.NewTensor(f, 2, 2)
	fill2D(A, [][]float64{{-1, 0}, {0, 1}}, f)
	if Qpotrf(A, policy.New()) {
		t.Fatal("Qpotrf reported PD for a matrix with a non-positive diagonal")
	}
}

func TestQpotrfNonSquarePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on non-square A")
		}
	}()
	f := fmtOf(8, 16, true)
	A := qtensor.NewTensor(f, 2, 3)
	Qpotrf(A, policy.New())
}
