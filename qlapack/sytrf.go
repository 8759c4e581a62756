// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qlapack

import (
	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
	"github.com/pikapuma/QuBLAS/qtensor"
)

// Qsytrf computes the LDLᵀ factorization of symmetric A into unit-lower L
// and diagonal D (spec §4.6). L starts at the identity; then for each
// column j, D[j] = A[j,j] − Σ_{k<j} L[j,k]²·D[k], and for each i>j,
// L[i,j] = (A[i,j] − Σ_{k<j} L[i,k]·L[j,k]·D[k]) / D[j]. ldBundle governs
// every L[·,k]·D[k]-shaped product (including the squared term feeding
// D[j]); sumLDBundle governs every running-sum add and the final
// subtract/divide of each recurrence, letting the caller separate the
// product truncation policy from the accumulator's.
func Qsytrf(L, D, A *qtensor.Tensor, ldBundle, sumLDBundle policy.Bundle) {
	n, m := A.Dims()
	if n != m {
		panic(policy.ErrShape)
	}
	if L.IsZero() {
		L.ReuseAs(A.Format(), n, n)
	}
	if D.IsZero() {
		D.ReuseAs(A.Format(), n)
	}

	zero := qfx.FromFloat64(0, L.Format())
	one := qfx.FromFloat64(1, L.Format())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				L.SetRC(i, j, one)
			} else {
				L.SetRC(i, j, zero)
			}
		}
	}

	dZero := qfx.FromFloat64(0, D.Format())
	for j := 0; j < n; j++ {
		sum := dZero
		for k := 0; k < j; k++ {
			ljk := L.AtRC(j, k)
			sq := qfx.MulB(ljk, ljk, ldBundle)
			term := qfx.MulB(sq, D.At(k), ldBundle)
			sum = qfx.AddB(sum, term, sumLDBundle)
		}
		dj := qfx.SubB(A.AtRC(j, j), sum, sumLDBundle)
		D.Set(dj, j)

		for i := j + 1; i < n; i++ {
			sum2 := dZero
			for k := 0; k < j; k++ {
				prod := qfx.MulB(L.AtRC(i, k), L.AtRC(j, k), ldBundle)
				term := qfx.MulB(prod, D.At(k), ldBundle)
				sum2 = qfx.AddB(sum2, term, sumLDBundle)
			}
			num := qfx.SubB(A.AtRC(i, j), sum2, sumLDBundle)
			L.SetRC(i, j, qfx.DivB(num, dj, sumLDBundle))
		}
	}
}
