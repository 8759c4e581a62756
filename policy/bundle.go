// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package policy

// Op identifies which primitive arithmetic operation a Bundle is being
// merged for; the merger rule (spec §3) treats multiply differently from
// add/sub/div, and neg/abs differently again.
type Op uint8

const (
	OpMul Op = iota
	OpAdd
	OpSub
	OpDiv
	OpNeg
	OpAbs
	OpCmp
)

// DefaultRnd and DefaultOvf are the library defaults substituted by the
// merger rule when two operands disagree on rounding or overflow policy
// (spec §3: "the common mode of the inputs if they agree, else the library
// default (TCPL truncation / saturating TCPL)").
const (
	DefaultRnd = RndTcpl
	DefaultOvf = OvfSatTcpl
)

// Bundle is an unordered set of override tags (spec §3 PolicyBundle): any
// axis left nil/unset is derived by Merge from the operand Formats; any
// axis explicitly set here overrides the merged value. Bundle also carries
// named sub-bundles, used by kernels that expose per-intermediate policy
// (e.g. Complex multiply's "ac"/"bd"/"ad"/"bc" sub-products) and is the
// zero value by default, so
// policy.Bundle{} is always a valid "no overrides" bundle.
type Bundle struct {
	intBits  *int
	fracBits *int
	signed   *bool
	rnd      *RoundMode
	ovf      *OverflowMode
	fullPrec bool
	named    map[string]Bundle
}

// Option configures a Bundle under construction. The named constructors
// below (IntBits, FracBits, ...) are QuBLAS's public ABI tag vocabulary
// (spec §6): a caller composes exactly the named tags spec.md prescribes
// and nothing else.
type Option func(*Bundle)

// IntBits overrides the merged output's integer width.
func IntBits(n int) Option { return func(b *Bundle) { v := n; b.intBits = &v } }

// FracBits overrides the merged output's fractional width.
func FracBits(n int) Option { return func(b *Bundle) { v := n; b.fracBits = &v } }

// Signed overrides the merged output's signedness.
func Signed(s bool) Option { return func(b *Bundle) { v := s; b.signed = &v } }

// Rnd overrides the merged output's rounding mode.
func Rnd(m RoundMode) Option { return func(b *Bundle) { v := m; b.rnd = &v } }

// Ovf overrides the merged output's overflow mode.
func Ovf(m OverflowMode) Option { return func(b *Bundle) { v := m; b.ovf = &v } }

// FullPrec requests a widened, loss-free output format per spec §3's
// multiply/add/sub/div rules.
func FullPrec() Option { return func(b *Bundle) { b.fullPrec = true } }

// Named attaches a sub-bundle reachable via Bundle.Named, for kernels that
// expose per-intermediate policy (Complex's ac/bd/ad/bc products, ...).
func Named(name string, sub Bundle) Option {
	return func(b *Bundle) {
		if b.named == nil {
			b.named = make(map[string]Bundle)
		}
		b.named[name] = sub
	}
}

// New composes a Bundle from zero or more Options.
func New(opts ...Option) Bundle {
	var b Bundle
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Sub returns the named sub-bundle attached via Named, or the zero Bundle
// (no overrides) if none was attached under that name.
func (b Bundle) Sub(name string) Bundle {
	if b.named == nil {
		return Bundle{}
	}
	return b.named[name]
}

// FullPrecision reports whether the FullPrec tag is set.
func (b Bundle) FullPrecision() bool { return b.fullPrec }

// HasNamed reports whether a sub-bundle was explicitly attached under name
// via Named, distinguishing "no override was given for this name" from
// "an override of the zero Bundle (no overrides) was given". Used by
// kernels that dispatch on the presence of a named tag rather than on its
// contents, e.g. Complex multiply's "karatsuba" selector tag.
func (b Bundle) HasNamed(name string) bool {
	if b.named == nil {
		return false
	}
	_, ok := b.named[name]
	return ok
}

// Merge derives the output Format for op from two input Formats and a
// PolicyBundle of overrides, implementing the merger rule of spec §3
// exactly: the width rule per op, s_out = s1 ∨ s2, rnd/ovf agreement with
// library-default fallback, explicit bundle overrides applied last, then
// the symmetric width-cap reduction if the merged width exceeds 31 bits.
func Merge(f1, f2 Format, b Bundle, op Op) Format {
	var iOut, fOut int
	switch op {
	case OpMul:
		if b.fullPrec {
			iOut = f1.IntBits + f2.IntBits
			fOut = f1.FracBits + f2.FracBits
		} else {
			iOut = max(f1.IntBits, f2.IntBits)
			fOut = max(f1.FracBits, f2.FracBits)
		}
	case OpAdd, OpSub, OpDiv:
		iOut = max(f1.IntBits, f2.IntBits)
		if b.fullPrec {
			iOut++
		}
		fOut = max(f1.FracBits, f2.FracBits)
	case OpNeg:
		iOut = f1.IntBits + 1
		fOut = f1.FracBits
	case OpAbs:
		if !f1.Signed {
			iOut = f1.IntBits
		} else {
			iOut = f1.IntBits + 1
		}
		fOut = f1.FracBits
	case OpCmp:
		iOut = max(f1.IntBits, f2.IntBits)
		fOut = max(f1.FracBits, f2.FracBits)
	default:
		panic(ErrUnknownMode)
	}

	sOut := f1.Signed || f2.Signed
	if op == OpNeg {
		sOut = true
	}

	var rndOut RoundMode
	if f1.Rnd == f2.Rnd {
		rndOut = f1.Rnd
	} else {
		rndOut = DefaultRnd
	}
	var ovfOut OverflowMode
	if f1.Ovf == f2.Ovf {
		ovfOut = f1.Ovf
	} else {
		ovfOut = DefaultOvf
	}

	if b.intBits != nil {
		iOut = *b.intBits
	}
	if b.fracBits != nil {
		fOut = *b.fracBits
	}
	if b.signed != nil {
		sOut = *b.signed
	}
	if b.rnd != nil {
		rndOut = *b.rnd
	}
	if b.ovf != nil {
		ovfOut = *b.ovf
	}

	iOut, fOut = capWidth(iOut, fOut)

	return Format{IntBits: iOut, FracBits: fOut, Signed: sOut, Rnd: rndOut, Ovf: ovfOut}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
