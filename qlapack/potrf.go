// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qlapack implements the LAPACK-style factorization/solve kernels
// of spec §4.6: Qpotrf/Qpotrs (Cholesky, with the non-standard
// reciprocal-square-root diagonal storage), Qsytrf (LDLᵀ), and Qtrtri
// (dense triangular inverse). All route through qfx's primitive
// arithmetic and anus's Qtable presets, the same way gonum's lapack/gonum
// tree implements its routines with blas64/blas-level scalar recurrences
// rather than calling back into a vendor BLAS.
package qlapack

import (
	"github.com/pikapuma/QuBLAS/anus"
	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
	"github.com/pikapuma/QuBLAS/qtensor"
)

// Qpotrf computes the in-place lower-triangular Cholesky factor of the
// symmetric positive-definite matrix A (spec §4.6). For each column j it
// first applies every prior column k's rank-1 update to A[i,j] (i ≥ j),
// then — if the updated diagonal A[j,j] is positive — scales the
// below-diagonal part of the column by t = rsqrt(A[j,j]) (via
// anus.Qtable's Rsqrt preset) and stores t itself, not A[j,j]·t, on the
// diagonal: the non-standard reciprocal-square-root storage convention
// Qpotrs depends on, so the solve never has to divide. Qpotrf returns
// false and leaves A's partial result in place the first time a diagonal
// entry is not positive (A is not PD); the caller detects this from the
// return value, not from inspecting A.
func Qpotrf(A *qtensor.Tensor, bundle policy.Bundle) bool {
	n, m := A.Dims()
	if n != m {
		panic(policy.ErrShape)
	}
	for j := 0; j < n; j++ {
		for k := 0; k < j; k++ {
			ajk := A.AtRC(j, k)
			for i := j; i < n; i++ {
				prod := qfx.MulB(A.AtRC(i, k), ajk, bundle)
				A.SetRC(i, j, qfx.SubB(A.AtRC(i, j), prod, bundle))
			}
		}
		if A.AtRC(j, j).Float64() <= 0 {
			return false
		}
		t := anus.Rsqrt(A.AtRC(j, j))
		for i := j + 1; i < n; i++ {
			A.SetRC(i, j, qfx.MulB(A.AtRC(i, j), t, bundle))
		}
		A.SetRC(j, j, t)
	}
	return true
}
