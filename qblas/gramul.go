// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qblas

import (
	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
	"github.com/pikapuma/QuBLAS/qtensor"
)

// Qgramul computes the Gram matrix of A (spec §4.6): C = AᵀA if trans is
// false, C = AAᵀ if trans is true. C must be square, of side matching A's
// non-contracted dimension (cols(A) for AᵀA, rows(A) for AAᵀ). Diagonal cells (bounded sums of squares) use
// diagMul/diagAdd; off-diagonal cells use offMul/offAdd, letting the
// caller give the diagonal path more headroom. If C is the zero Tensor it
// is auto-sized using the diagonal path's reduced Format — the diagonal
// bundle is, per spec's own rationale, the one the caller tunes for the
// wider dynamic range, so it is the safer default for sizing the shared
// destination Format.
func Qgramul(C, A *qtensor.Tensor, trans bool, diagMul, diagAdd, offMul, offAdd policy.Bundle) {
	ar, ac := A.Dims()
	var n, k int
	if trans {
		n, k = ar, ac
	} else {
		n, k = ac, ar
	}

	prodFormat := policy.Merge(A.Format(), A.Format(), diagMul, policy.OpMul)
	if C.IsZero() {
		C.ReuseAs(reduceFormat(diagAdd, prodFormat, k), n, n)
	} else if cr, cc := C.Dims(); cr != n || cc != n {
		panic(policy.ErrShape)
	}

	prods := make([]qfx.Value, k)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			mulB, addB := offMul, offAdd
			if i == j {
				mulB, addB = diagMul, diagAdd
			}
			for kk := 0; kk < k; kk++ {
				var x, y qfx.Value
				if trans {
					x, y = A.AtRC(i, kk), A.AtRC(j, kk)
				} else {
					x, y = A.AtRC(kk, i), A.AtRC(kk, j)
				}
				prods[kk] = qfx.MulB(x, y, mulB)
			}
			sum := qtensor.Qreduce([]policy.Bundle{addB}, prods...)
			C.SetRC(i, j, sum)
		}
	}
}
