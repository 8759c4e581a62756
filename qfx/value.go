// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qfx

import (
	"math"

	"github.com/pikapuma/QuBLAS/policy"
)

// Value is a scalar FixedValue (spec §3): a signed 32-bit integer `data`
// interpreted as data·2^(-FracBits), carrying its own Format so every
// arithmetic primitive can merge formats without the caller threading them
// through separately.
type Value struct {
	data   int32
	format policy.Format
}

// Format returns the Format this Value was constructed or cast into.
func (v Value) Format() policy.Format { return v.format }

// Raw returns the underlying signed integer bit pattern.
func (v Value) Raw() int32 { return v.data }

// FromRaw constructs a Value directly from an explicit raw bit pattern
// (spec §4.2's "fill ... from explicit raw bit pattern"), with no rounding
// or overflow handling: the caller is asserting the pattern is already
// valid for f.
func FromRaw(data int32, f policy.Format) Value {
	f.Validate()
	return Value{data: data, format: f}
}

// FromFloat64 constructs a Value of Format f from a real number x (spec
// §4.2): x·2^f.FracBits is rounded to the nearest integer under f's
// default rounding mode, then clamped/wrapped into range under f's default
// overflow mode.
func FromFloat64(x float64, f policy.Format) Value {
	f.Validate()
	scaled := math.Ldexp(x, f.FracBits)
	raw := roundReal(scaled, f.Rnd)
	raw = IntConvert(raw, f.IntBits, f.FracBits, f.Signed, f.Ovf)
	return Value{data: int32(raw), format: f}
}

// Cast constructs a Value of Format to from v (spec §4.2): if the formats
// are identical the raw data is copied verbatim; otherwise v's data is
// re-aligned from v.format.FracBits to to.FracBits under to's rounding
// mode (FracConvert) and then clamped/wrapped into to's range under to's
// overflow mode (IntConvert).
func (v Value) Cast(to policy.Format) Value {
	to.Validate()
	if v.format == to {
		return Value{data: v.data, format: to}
	}
	aligned := FracConvert(int64(v.data), v.format.FracBits, to.FracBits, to.Rnd)
	raw := IntConvert(aligned, to.IntBits, to.FracBits, to.Signed, to.Ovf)
	return Value{data: int32(raw), format: to}
}

// Float64 returns the real-number view data·2^(-FracBits).
func (v Value) Float64() float64 {
	return math.Ldexp(float64(v.data), -v.format.FracBits)
}

// roundReal rounds a real number to the nearest integer under mode,
// applying the same tie-break table as FracConvert (spec §4.1) but over
// the continuous domain rather than between two fixed binary scales: a
// tie occurs only when x lands exactly on a half-integer.
func roundReal(x float64, mode policy.RoundMode) int64 {
	floor := math.Floor(x)

	switch mode {
	case policy.RndTcpl:
		return int64(floor)
	case policy.RndSmgn:
		return int64(math.Trunc(x))
	}

	ceil := floor + 1
	frac := x - floor

	switch {
	case frac < 0.5:
		return int64(floor)
	case frac > 0.5:
		return int64(ceil)
	}

	// exact tie
	switch mode {
	case policy.RndPosInf:
		return int64(ceil)
	case policy.RndNegInf:
		return int64(floor)
	case policy.RndZero:
		if math.Abs(floor) <= math.Abs(ceil) {
			return int64(floor)
		}
		return int64(ceil)
	case policy.RndInf:
		if math.Abs(floor) >= math.Abs(ceil) {
			return int64(floor)
		}
		return int64(ceil)
	case policy.RndConv:
		if int64(floor)&1 == 0 {
			return int64(floor)
		}
		return int64(ceil)
	default:
		panic(policy.ErrUnknownMode)
	}
}
