// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qblas

import (
	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
	"github.com/pikapuma/QuBLAS/qtensor"
)

// Qgemv computes y = β·y + α·op(A)·x (spec §4.6). Per row i it builds the
// dot product of op(A)'s row and x via Qreduce<addBundle> over
// Qmul<mulBundle>, then composes it into y: if β=0 and α=1, assign the dot
// product directly; if β=0 and α≠1, scale by α; otherwise combine
// β·y[i]+α·dot. The three outer operations (the α-scale, the β-scale, and
// their sum) all force their result into y's own Format rather than
// merging (spec: "using y's own format for the outer ops"), since α and β
// are themselves values of that Format. If y is the zero Tensor it is
// auto-sized to length rows(op(A)) using α's Format.
func Qgemv(y, A, x *qtensor.Tensor, transA bool, addBundle, mulBundle policy.Bundle, alpha, beta qfx.Value) {
	ar, ac := dimsT(A, transA)
	if x.Rank() != 1 || x.Shape()[0] != ac {
		panic(policy.ErrShape)
	}
	if y.IsZero() {
		y.ReuseAs(alpha.Format(), ar)
	} else if y.Rank() != 1 || y.Shape()[0] != ar {
		panic(policy.ErrShape)
	}

	yf := y.Format()
	outer := policy.New(
		policy.IntBits(yf.IntBits), policy.FracBits(yf.FracBits),
		policy.Signed(yf.Signed), policy.Rnd(yf.Rnd), policy.Ovf(yf.Ovf),
	)

	betaZero := beta.Raw() == 0
	alphaOne := alpha.Float64() == 1.0

	prods := make([]qfx.Value, ac)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			prods[j] = qfx.MulB(elemAt(A, transA, i, j), x.At(j), mulBundle)
		}
		dot := qtensor.Qreduce([]policy.Bundle{addBundle}, prods...)

		switch {
		case betaZero && alphaOne:
			y.Set(dot, i)
		case betaZero:
			y.Set(qfx.MulB(alpha, dot, outer), i)
		default:
			scaled := qfx.MulB(alpha, dot, outer)
			old := qfx.MulB(beta, y.At(i), outer)
			y.Set(qfx.AddB(old, scaled, outer), i)
		}
	}
}
