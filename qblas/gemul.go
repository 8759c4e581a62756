// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qblas implements the BLAS-style dense linear-algebra kernels of
// spec §4.6 that route through qfx's primitive arithmetic and qtensor's
// tree reducer rather than native float arithmetic: Qgemul (general matrix
// multiply), Qgramul (AᵀA/AAᵀ with a diagonal/off-diagonal policy split),
// and Qgemv (matrix–vector product with α/β scaling).
package qblas

import (
	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
	"github.com/pikapuma/QuBLAS/qtensor"
)

// elemAt returns A[i,j], or A[j,i] if trans is set — the "op(A)" of spec
// §4.6's Qgemul.
func elemAt(A *qtensor.Tensor, trans bool, i, j int) qfx.Value {
	if trans {
		return A.AtRC(j, i)
	}
	return A.AtRC(i, j)
}

func dimsT(A *qtensor.Tensor, trans bool) (r, c int) {
	r, c = A.Dims()
	if trans {
		return c, r
	}
	return r, c
}

// reduceFormat computes the Format Qreduce returns when summing n values of
// Format elem under a single addBundle applied at every tree layer, without
// touching any data: the merge schedule depends only on the tree's shape
// (spec §3: the merged output format is a pure function of its inputs and
// bundle, not of data), so Qgemul/Qgramul can size their destination operand
// before computing a single cell.
func reduceFormat(addBundle policy.Bundle, elem policy.Format, n int) policy.Format {
	if n <= 1 {
		return elem
	}
	cur := make([]policy.Format, n)
	for i := range cur {
		cur[i] = elem
	}
	for len(cur) > 1 {
		next := make([]policy.Format, 0, (len(cur)+1)/2)
		i := 0
		for ; i+1 < len(cur); i += 2 {
			next = append(next, policy.Merge(cur[i], cur[i+1], addBundle, policy.OpAdd))
		}
		if i < len(cur) {
			next = append(next, cur[i])
		}
		cur = next
	}
	return cur[0]
}

// Qgemul computes C = op(A) * op(B) (spec §4.6). transA/transB select
// whether each operand is read transposed. Per output cell (i,j) it builds
// the length-K vector of products Qmul<mulBundle>(op(A)[i,k], op(B)[k,j])
// and reduces it with Qreduce<addBundle>, assigning (not accumulating)
// into C[i,j]. If C is the zero Tensor it is auto-sized to (rows(op(A)),
// cols(op(B))) with the Format Qreduce would produce for a K-deep sum of
// the merged product Format; otherwise C's existing shape and Format are
// used and each cell is cast into it on Set.
func Qgemul(C, A, B *qtensor.Tensor, transA, transB bool, addBundle, mulBundle policy.Bundle) {
	ar, ac := dimsT(A, transA)
	br, bc := dimsT(B, transB)
	if ac != br {
		panic(policy.ErrShape)
	}
	k := ac

	prodFormat := policy.Merge(A.Format(), B.Format(), mulBundle, policy.OpMul)
	if C.IsZero() {
		C.ReuseAs(reduceFormat(addBundle, prodFormat, k), ar, bc)
	}

	prods := make([]qfx.Value, k)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			for kk := 0; kk < k; kk++ {
				prods[kk] = qfx.MulB(elemAt(A, transA, i, kk), elemAt(B, transB, kk, j), mulBundle)
			}
			sum := qtensor.Qreduce([]policy.Bundle{addBundle}, prods...)
			C.SetRC(i, j, sum)
		}
	}
}
