// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anus

import (
	"math"

	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
)

// Func is a one-argument real function, the shape Qtable quantizes.
type Func func(float64) float64

// Qtable evaluates f on x's real view and quantizes the result back into
// x's Format, always using RND::ZERO for the quantization step regardless
// of x's own rounding mode (spec §4.7: "quantizes the result back into x's
// format using RND::ZERO internally"). It models an on-chip ROM lookup;
// the caller substitutes a true ROM at RTL time.
func Qtable(f Func, x qfx.Value) qfx.Value {
	quantized := x.Format()
	quantized.Rnd = policy.RndZero
	v := qfx.FromFloat64(f(x.Float64()), quantized)
	return v.Cast(x.Format())
}

// Sqrt is the Qtable preset for √x.
func Sqrt(x qfx.Value) qfx.Value { return Qtable(math.Sqrt, x) }

// Reciprocal is the Qtable preset for 1/x.
func Reciprocal(x qfx.Value) qfx.Value {
	return Qtable(func(v float64) float64 { return 1 / v }, x)
}

// Rsqrt is the Qtable preset for 1/√x, the diagonal storage convention
// Qpotrf uses (spec §4.6).
func Rsqrt(x qfx.Value) qfx.Value {
	return Qtable(func(v float64) float64 { return 1 / math.Sqrt(v) }, x)
}

// Exp is the Qtable preset for eˣ.
func Exp(x qfx.Value) qfx.Value { return Qtable(math.Exp, x) }
