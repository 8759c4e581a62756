// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package policy

// Error represents a QuBLAS configuration error: a width-cap violation, a
// shape mismatch, or an unknown policy tag. These are programmer errors
// (spec error kind 1) and are always signaled by panicking with one of the
// constants below, never by a returned error value — mirroring mat64's
// Error/ErrShape convention.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrWidthCap reports that a Format's int+frac bit count exceeds 31, or
	// that symmetric width-cap reduction could not restore the invariant.
	ErrWidthCap = Error("policy: int_bits+frac_bits exceeds the 31-bit cap")
	// ErrNegWidth reports a negative int_bits or frac_bits.
	ErrNegWidth = Error("policy: negative bit width")
	// ErrShape reports that two tensor/vector operands have incompatible
	// shapes for the requested kernel.
	ErrShape = Error("policy: dimension mismatch")
	// ErrUnknownMode reports an unrecognized RoundMode or OverflowMode value,
	// typically surfaced only through the dynamic-format cast path.
	ErrUnknownMode = Error("policy: unknown rounding or overflow mode")
	// ErrAlias reports that an in-place kernel's destination aliases an
	// input it is not permitted to alias.
	ErrAlias = Error("policy: destination aliases input")
)
