// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package policy defines the quantization policy vocabulary shared by every
// QuBLAS package: the seven fractional rounding modes, the four overflow
// modes, the compile-time fixed-point Format record, and the PolicyBundle
// merger rule that derives an output Format from a pair of input Formats
// and a set of caller overrides.
package policy

import "fmt"

// RoundMode selects the tie-break and truncation policy applied when a
// value's fractional width is reduced. See FracConvert in package qfx for
// the algorithm each mode parameterizes.
type RoundMode uint8

const (
	// RndPosInf rounds half away from negative infinity (half-up).
	RndPosInf RoundMode = iota
	// RndNegInf rounds half toward negative infinity (half-down, i.e. floor).
	RndNegInf
	// RndZero rounds half toward zero.
	RndZero
	// RndInf rounds half away from zero.
	RndInf
	// RndConv rounds half to the nearer even value (convergent/banker's rounding).
	RndConv
	// RndTcpl truncates via an arithmetic shift right (floor toward -infinity,
	// no tie-break: this is not "round to nearest", it always floors).
	RndTcpl
	// RndSmgn truncates the magnitude toward zero, preserving sign
	// (sign-magnitude truncation).
	RndSmgn
)

func (m RoundMode) String() string {
	switch m {
	case RndPosInf:
		return "POS_INF"
	case RndNegInf:
		return "NEG_INF"
	case RndZero:
		return "ZERO"
	case RndInf:
		return "INF"
	case RndConv:
		return "CONV"
	case RndTcpl:
		return "TCPL"
	case RndSmgn:
		return "SMGN"
	default:
		return fmt.Sprintf("RoundMode(%d)", uint8(m))
	}
}

// OverflowMode selects the clamping or wrapping policy applied when an
// integer-width cast exceeds the target range. See IntConvert in package qfx.
type OverflowMode uint8

const (
	// OvfSatTcpl saturates to the full two's-complement range [m, M].
	OvfSatTcpl OverflowMode = iota
	// OvfSatZero replaces any out-of-range value with zero.
	OvfSatZero
	// OvfSatSmgn saturates to the symmetric magnitude range [m+1, M], reserving
	// the most-negative representable value.
	OvfSatSmgn
	// OvfWrpTcpl wraps within the target bit width using two's-complement
	// (or unsigned mask) semantics.
	OvfWrpTcpl
)

func (m OverflowMode) String() string {
	switch m {
	case OvfSatTcpl:
		return "SAT_TCPL"
	case OvfSatZero:
		return "SAT_ZERO"
	case OvfSatSmgn:
		return "SAT_SMGN"
	case OvfWrpTcpl:
		return "WRP_TCPL"
	default:
		return fmt.Sprintf("OverflowMode(%d)", uint8(m))
	}
}
