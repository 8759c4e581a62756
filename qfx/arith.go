// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qfx

import "github.com/pikapuma/QuBLAS/policy"

// Each primitive below follows the same five-step pipeline (spec §4.3):
// derive F_out via policy.Merge, compute the ideal wide-integer result in
// a 64-bit accumulator, reduce its fractional width to F_out.FracBits via
// FracConvert under F_out.Rnd, clamp/wrap it into range via IntConvert
// under F_out.Ovf, and return the resulting Value.
//
// Each has two forms: the "...B" form takes an already-built policy.Bundle
// (used internally by qtensor/qblas/qlapack, which build and thread
// bundles across many calls), and the plain form takes the public variadic
// policy.Option tag list for direct callers.

// MulB is Mul taking a pre-built policy.Bundle.
func MulB(a, b Value, bundle policy.Bundle) Value {
	fOut := policy.Merge(a.format, b.format, bundle, policy.OpMul)

	accFrac := a.format.FracBits + b.format.FracBits
	acc := int64(a.data) * int64(b.data)

	aligned := FracConvert(acc, accFrac, fOut.FracBits, fOut.Rnd)
	raw := IntConvert(aligned, fOut.IntBits, fOut.FracBits, fOut.Signed, fOut.Ovf)
	return Value{data: int32(raw), format: fOut}
}

// Mul computes a bit-exact fixed-point product. With policy.FullPrec() the
// output format starts from IntBits = a.IntBits+b.IntBits, FracBits =
// a.FracBits+b.FracBits; otherwise both axes take the max of the two
// operands. In both cases the symmetric 31-bit width cap is applied on top,
// so a FullPrec product wider than 31 bits is not lossless.
func Mul(a, b Value, opts ...policy.Option) Value {
	return MulB(a, b, policy.New(opts...))
}

// AddB is Add taking a pre-built policy.Bundle.
func AddB(a, b Value, bundle policy.Bundle) Value { return addSub(a, b, policy.OpAdd, bundle) }

// SubB is Sub taking a pre-built policy.Bundle.
func SubB(a, b Value, bundle policy.Bundle) Value { return addSub(a, b, policy.OpSub, bundle) }

// Add computes a bit-exact fixed-point sum.
func Add(a, b Value, opts ...policy.Option) Value { return AddB(a, b, policy.New(opts...)) }

// Sub computes a bit-exact fixed-point difference.
func Sub(a, b Value, opts ...policy.Option) Value { return SubB(a, b, policy.New(opts...)) }

func addSub(a, b Value, op policy.Op, bundle policy.Bundle) Value {
	fOut := policy.Merge(a.format, b.format, bundle, op)

	common := maxInt(a.format.FracBits, b.format.FracBits)
	av := int64(a.data) << uint(common-a.format.FracBits)
	bv := int64(b.data) << uint(common-b.format.FracBits)

	var acc int64
	if op == policy.OpAdd {
		acc = av + bv
	} else {
		acc = av - bv
	}

	aligned := FracConvert(acc, common, fOut.FracBits, fOut.Rnd)
	raw := IntConvert(aligned, fOut.IntBits, fOut.FracBits, fOut.Signed, fOut.Ovf)
	return Value{data: int32(raw), format: fOut}
}

// divWidthLimit bounds the numerator pre-shift of Div so the shifted
// 32-bit operand cannot overflow the 64-bit signed accumulator (spec §9
// open question: Qdiv's effective width limit). 31 is conservative: a
// 31-bit-magnitude operand left-shifted by up to 31 more bits still fits
// comfortably inside the 63 usable bits of a signed 64-bit accumulator.
const divWidthLimit = 31

// DivB is Div taking a pre-built policy.Bundle.
func DivB(a, b Value, bundle policy.Bundle) Value {
	fOut := policy.Merge(a.format, b.format, bundle, policy.OpDiv)

	if b.data == 0 {
		return Value{data: 0, format: fOut}
	}

	common := maxInt(a.format.FracBits, b.format.FracBits)
	shift := common - a.format.FracBits + fOut.FracBits
	if shift > divWidthLimit {
		panic(policy.ErrWidthCap)
	}

	num := int64(a.data) << uint(shift)
	den := int64(b.data) << uint(common-b.format.FracBits)
	acc := num / den

	raw := IntConvert(acc, fOut.IntBits, fOut.FracBits, fOut.Signed, fOut.Ovf)
	return Value{data: int32(raw), format: fOut}
}

// Div computes a fixed-point quotient. Division by zero returns zero in
// the output format (spec error kind 3: not an exceptional condition).
// Unlike the other primitives, Div's rounding is fixed at truncation
// toward zero (Go's native integer division), not F_out.Rnd: the
// numerator is pre-shifted to land the quotient directly at F_out's
// fractional scale (spec §4.3), leaving no separate fractional-reduction
// step for a rounding mode to act on.
func Div(a, b Value, opts ...policy.Option) Value {
	return DivB(a, b, policy.New(opts...))
}

// NegB is Neg taking a pre-built policy.Bundle.
func NegB(a Value, bundle policy.Bundle) Value {
	fOut := policy.Merge(a.format, a.format, bundle, policy.OpNeg)

	acc := -int64(a.data)
	aligned := FracConvert(acc, a.format.FracBits, fOut.FracBits, fOut.Rnd)
	raw := IntConvert(aligned, fOut.IntBits, fOut.FracBits, fOut.Signed, fOut.Ovf)
	return Value{data: int32(raw), format: fOut}
}

// Neg computes -a. The output format always widens IntBits by one bit and
// is always signed (spec §4.3), since negating the most negative signed
// value, or any unsigned value, requires one extra bit of range.
func Neg(a Value, opts ...policy.Option) Value {
	return NegB(a, policy.New(opts...))
}

// AbsB is Abs taking a pre-built policy.Bundle.
func AbsB(a Value, bundle policy.Bundle) Value {
	fOut := policy.Merge(a.format, a.format, bundle, policy.OpAbs)

	var acc int64
	if a.format.Signed {
		acc = abs64(int64(a.data))
	} else {
		acc = int64(a.data)
	}

	aligned := FracConvert(acc, a.format.FracBits, fOut.FracBits, fOut.Rnd)
	raw := IntConvert(aligned, fOut.IntBits, fOut.FracBits, fOut.Signed, fOut.Ovf)
	return Value{data: int32(raw), format: fOut}
}

// Abs computes |a|. An unsigned operand is returned unchanged (identity,
// no widening); a signed operand widens IntBits by one bit to hold
// |minInt|.
func Abs(a Value, opts ...policy.Option) Value {
	return AbsB(a, policy.New(opts...))
}

// Cmp returns the three-way ordering of a and b (-1, 0, +1) after
// left-aligning both operands to their common fractional width (spec
// §4.3). Cmp produces an ordering, not a FixedValue, so there is no output
// format to merge and no policy.Bundle argument.
func Cmp(a, b Value) int {
	common := maxInt(a.format.FracBits, b.format.FracBits)
	av := int64(a.data) << uint(common-a.format.FracBits)
	bv := int64(b.data) << uint(common-b.format.FracBits)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
