// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qfx implements the bit-exact fixed-point scalar kernel: the
// casting algebra (FracConvert, IntConvert), the FixedValue and Dynamic
// value types, the primitive arithmetic operators, and the Complex
// composition rules. Every cast QuBLAS performs anywhere — scalar
// construction, tensor expression materialization, kernel intermediates —
// reduces to a call into this package, so that only one algorithmic core
// needs to be verified (spec §9).
package qfx

import "github.com/pikapuma/QuBLAS/policy"

// FracConvert re-aligns a wide signed integer v from fractional width
// fromFrac to toFrac under the given rounding mode (spec §4.1). Widening
// (fromFrac ≤ toFrac) is always lossless. Narrowing applies the tie-break
// table: every mode other than TCPL/SMGN rounds to the nearer of the floor
// and ceiling multiples of 2^d, differing only in how an exact tie is
// broken; TCPL always floors (arithmetic shift) and SMGN truncates the
// magnitude toward zero.
func FracConvert(v int64, fromFrac, toFrac int, mode policy.RoundMode) int64 {
	if fromFrac <= toFrac {
		return v << uint(toFrac-fromFrac)
	}
	d := uint(fromFrac - toFrac)

	switch mode {
	case policy.RndTcpl:
		return v >> d
	case policy.RndSmgn:
		if v >= 0 {
			return v >> d
		}
		return -((-v) >> d)
	case policy.RndPosInf, policy.RndNegInf, policy.RndZero, policy.RndInf, policy.RndConv:
	default:
		panic(policy.ErrUnknownMode)
	}

	mask := (int64(1) << d) - 1
	floor := v &^ mask
	ceil := floor + (int64(1) << d)
	half := int64(1) << (d - 1)
	diff := v - floor

	var chosen int64
	switch {
	case diff < half:
		chosen = floor
	case diff > half:
		chosen = ceil
	default: // exact tie
		switch mode {
		case policy.RndPosInf:
			chosen = ceil
		case policy.RndNegInf:
			chosen = floor
		case policy.RndZero:
			if abs64(floor) <= abs64(ceil) {
				chosen = floor
			} else {
				chosen = ceil
			}
		case policy.RndInf:
			if abs64(floor) >= abs64(ceil) {
				chosen = floor
			} else {
				chosen = ceil
			}
		case policy.RndConv:
			if (floor>>d)&1 == 0 {
				chosen = floor
			} else {
				chosen = ceil
			}
		default:
			panic(policy.ErrUnknownMode)
		}
	}
	return chosen >> d
}

// IntConvert clamps or wraps a value already aligned to fracBits into the
// representable range of an (intBits, fracBits, signed) format (spec
// §4.1). M is the maximum representable raw value and m the minimum.
func IntConvert(v int64, intBits, fracBits int, signed bool, mode policy.OverflowMode) int64 {
	bits := intBits + fracBits
	max := (int64(1) << uint(bits)) - 1
	var min int64
	if signed {
		min = -max - 1
	}

	switch mode {
	case policy.OvfSatTcpl:
		return clamp64(v, min, max)
	case policy.OvfSatZero:
		if v >= min && v <= max {
			return v
		}
		return 0
	case policy.OvfSatSmgn:
		return clamp64(v, min+1, max)
	case policy.OvfWrpTcpl:
		wrapBits := bits
		if signed {
			wrapBits = bits + 1
		}
		mod := int64(1) << uint(wrapBits)
		masked := v & (mod - 1)
		if signed && masked >= mod/2 {
			masked -= mod
		}
		return masked
	default:
		panic(policy.ErrUnknownMode)
	}
}

func clamp64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
