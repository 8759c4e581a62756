// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anus implements the nonlinear utilities of spec §4.7: Horner
// polynomial evaluation, piecewise-polynomial approximation, and Qtable,
// the quantized-real-function sentinel that models an on-chip ROM lookup.
package anus

import (
	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
)

// pin builds a Bundle that forces every axis of a Merge to f, used where
// spec.md names an exact destination format rather than a derived one (the
// coefficient's own format, in Poly's case).
func pin(f policy.Format) policy.Bundle {
	return policy.New(
		policy.IntBits(f.IntBits), policy.FracBits(f.FracBits),
		policy.Signed(f.Signed), policy.Rnd(f.Rnd), policy.Ovf(f.Ovf),
	)
}

// Poly evaluates the polynomial with coefficients a₀..aₙ at x via Horner's
// scheme (spec §4.7): ((…((x·a₀+a₁)·x+a₂)…)·x+aₙ). Each coefficient
// carries its own Format; the intermediate result after incorporating aₖ
// is forced into aₖ's Format, so the final result carries aₙ's Format.
// Poly panics with policy.ErrShape if no coefficients are given.
func Poly(x qfx.Value, coeffs ...qfx.Value) qfx.Value {
	if len(coeffs) == 0 {
		panic(policy.ErrShape)
	}
	acc := coeffs[0]
	for _, ak := range coeffs[1:] {
		b := pin(ak.Format())
		acc = qfx.AddB(qfx.MulB(acc, x, b), ak, b)
	}
	return acc
}
