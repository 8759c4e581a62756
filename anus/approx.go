// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anus

import "github.com/pikapuma/QuBLAS/qfx"

// Error is a string-constant error, mirroring policy.Error: programming
// errors detected at construction time rather than recoverable conditions.
type Error string

func (e Error) Error() string { return string(e) }

// ErrSegmentCount reports that Approx was called with a mismatched number
// of breakpoints and polynomial segments.
const ErrSegmentCount = Error("anus: Approx requires one more polynomial than breakpoints")

// Approx evaluates a piecewise polynomial (spec §4.7): x is compared
// against each of the m breakpoints in order, selecting segment i (0 ≤ i ≤
// m) such that breakpoints[i-1] ≤ x < breakpoints[i] (segment 0 covers
// everything below the first breakpoint, segment m everything at or above
// the last), then dispatches to Poly with that segment's coefficients.
// len(polys) must equal len(breakpoints)+1. Breakpoints are compared via
// qfx.Cmp in x's own value domain (spec §4.7's "normalized against x's
// representable range" is read here as: the caller supplies breakpoints
// already expressed as qfx.Value in that domain, not as raw/external units).
func Approx(x qfx.Value, breakpoints []qfx.Value, polys [][]qfx.Value) qfx.Value {
	if len(polys) != len(breakpoints)+1 {
		panic(ErrSegmentCount)
	}
	seg := 0
	for seg < len(breakpoints) && qfx.Cmp(x, breakpoints[seg]) >= 0 {
		seg++
	}
	return Poly(x, polys[seg]...)
}
