// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package policy

// Format is the compile-time FixedFormat record of spec §3: an integer
// width, a fractional width, a signedness flag, and the default rounding
// and overflow policy applied whenever a FixedValue of this Format is
// constructed or cast into without an explicit override. Format is a plain
// value type — QuBLAS has no template system, so every kernel takes Format
// (or several) as ordinary arguments instead of a type parameter.
type Format struct {
	IntBits  int
	FracBits int
	Signed   bool
	Rnd      RoundMode
	Ovf      OverflowMode
}

// Bits returns the total representable width, int_bits + frac_bits.
func (f Format) Bits() int { return f.IntBits + f.FracBits }

// Validate checks the invariant 0 ≤ int_bits, 0 ≤ frac_bits, 0 ≤
// int_bits+frac_bits ≤ 31 (spec §3). It panics with a policy.Error, the
// convention used for every compile-time configuration error in this
// library.
func (f Format) Validate() {
	if f.IntBits < 0 || f.FracBits < 0 {
		panic(ErrNegWidth)
	}
	if f.Bits() > 31 {
		panic(ErrWidthCap)
	}
}

// Bounds returns the inclusive representable integer range of a Format, in
// units of its own LSB (i.e. the raw `data` range of a FixedValue of this
// Format), per spec §3: signed formats span [-2^(i+f), 2^(i+f)-1], unsigned
// formats span [0, 2^(i+f)-1].
func (f Format) Bounds() (min, max int64) {
	full := int64(1) << uint(f.Bits())
	if f.Signed {
		return -full, full - 1
	}
	return 0, full - 1
}

// capWidth applies the symmetric width-cap reduction of spec §3: if
// i+f > 31, both i and f are reduced by ⌈(i+f-31+1)/2⌉ from their sum,
// repeated conceptually but in fact closed-form since a single reduction
// always restores the invariant (i+f drops by 2× the ceil-halved excess,
// never undershooting by more than one bit total).
func capWidth(i, f int) (int, int) {
	sum := i + f
	if sum <= 31 {
		return i, f
	}
	excess := sum - 31 + 1
	cut := (excess + 1) / 2 // ceil(excess/2)
	i -= cut
	f -= cut
	if i < 0 {
		f += i
		i = 0
	}
	if f < 0 {
		i += f
		f = 0
	}
	return i, f
}

// CapWidth exports capWidth for kernels (qblas, qlapack) that must derive an
// output Format whose combined width might exceed the 31-bit cap before the
// merger rule's own reduction is applied, e.g. FullPrec matrix products
// accumulated across many terms.
func CapWidth(i, f int) (int, int) { return capWidth(i, f) }
