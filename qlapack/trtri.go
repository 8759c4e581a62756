// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qlapack

import (
	"github.com/pikapuma/QuBLAS/anus"
	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
	"github.com/pikapuma/QuBLAS/qtensor"
)

// Qtrtri computes the dense inverse of the triangular matrix A into Ainv
// (spec §4.6). lower selects which triangle A occupies. The diagonal is
// the reciprocal of A's diagonal (via anus.Qtable's Reciprocal preset);
// off-diagonal entries follow the standard triangular-inverse recurrence,
// lower case working top-down (Ainv[j,i] = −(Σ_{k=i}^{j-1} A[j,k]·Ainv[k,i])
// / A[j,j] for j>i) and upper case running the mirror-image recurrence
// from the bottom-right corner. Grounded on lapack/gonum's Ztrti2/Ztrtri
// row/column recurrence, adapted from complex128 BLAS calls to direct
// scalar recursion since no BLAS level-2 call is available at this word
// width.
func Qtrtri(Ainv, A *qtensor.Tensor, lower bool, sumBundle policy.Bundle) {
	n, m := A.Dims()
	if n != m {
		panic(policy.ErrShape)
	}
	if Ainv.IsZero() {
		Ainv.ReuseAs(A.Format(), n, n)
	}

	if lower {
		for i := 0; i < n; i++ {
			Ainv.SetRC(i, i, anus.Reciprocal(A.AtRC(i, i)))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				sum := qfx.FromFloat64(0, Ainv.Format())
				for k := i; k < j; k++ {
					prod := qfx.MulB(A.AtRC(j, k), Ainv.AtRC(k, i), sumBundle)
					sum = qfx.AddB(sum, prod, sumBundle)
				}
				val := qfx.DivB(qfx.NegB(sum, sumBundle), A.AtRC(j, j), sumBundle)
				Ainv.SetRC(j, i, val)
			}
		}
		return
	}

	for i := n - 1; i >= 0; i-- {
		Ainv.SetRC(i, i, anus.Reciprocal(A.AtRC(i, i)))
	}
	for i := n - 1; i >= 0; i-- {
		for j := i - 1; j >= 0; j-- {
			sum := qfx.FromFloat64(0, Ainv.Format())
			for k := j + 1; k <= i; k++ {
				prod := qfx.MulB(A.AtRC(j, k), Ainv.AtRC(k, i), sumBundle)
				sum = qfx.AddB(sum, prod, sumBundle)
			}
			val := qfx.DivB(qfx.NegB(sum, sumBundle), A.AtRC(j, j), sumBundle)
			Ainv.SetRC(j, i, val)
		}
	}
}
