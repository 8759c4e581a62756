// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qlapack

import (
	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
	"github.com/pikapuma/QuBLAS/qtensor"
)

// Qpotrs solves L·Lᵀ·x = b in place, where L is the reciprocal-square-root
// storage produced by Qpotrf (spec §4.6). Forward substitution computes
// b[i] -= Σ_{j<i} L[i,j]·b[j], then b[i] *= L[i,i] — multiply, not divide,
// since the diagonal already stores the reciprocal. Backward substitution
// is symmetric, reading L[j,i] for j>i in place of LᵀΤs own [i,j].
func Qpotrs(L, b *qtensor.Tensor, bundle policy.Bundle) {
	n, m := L.Dims()
	if n != m || b.Rank() != 1 || b.Shape()[0] != n {
		panic(policy.ErrShape)
	}

	for i := 0; i < n; i++ {
		acc := b.At(i)
		for j := 0; j < i; j++ {
			prod := qfx.MulB(L.AtRC(i, j), b.At(j), bundle)
			acc = qfx.SubB(acc, prod, bundle)
		}
		b.Set(qfx.MulB(acc, L.AtRC(i, i), bundle), i)
	}

	for i := n - 1; i >= 0; i-- {
		acc := b.At(i)
		for j := i + 1; j < n; j++ {
			prod := qfx.MulB(L.AtRC(j, i), b.At(j), bundle)
			acc = qfx.SubB(acc, prod, bundle)
		}
		b.Set(qfx.MulB(acc, L.AtRC(i, i), bundle), i)
	}
}
