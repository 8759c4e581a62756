// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qfx

import (
	"github.com/pkg/errors"

	"github.com/pikapuma/QuBLAS/policy"
)

// Complex is the opaque complex scalar of spec §3.4: a pair of FixedValues,
// one per real format Fr and Fi. Primitives that dispatch on
// complex/complex or real/complex operands route through this type instead
// of through Value.
type Complex struct {
	Re, Im Value
}

// ErrUnsupportedOp reports an operation spec.md declares unsupported
// (complex/complex and real/complex division), wrapped with
// github.com/pkg/errors so callers retain a stack trace at the point of
// invocation (spec error kind 4).
var ErrUnsupportedOp = errors.New("qfx: unsupported operation")

// AddComplex computes x+y component-wise.
func AddComplex(x, y Complex, bundle policy.Bundle) Complex {
	return Complex{
		Re: AddB(x.Re, y.Re, bundle.Sub("re")),
		Im: AddB(x.Im, y.Im, bundle.Sub("im")),
	}
}

// SubComplex computes x-y component-wise.
func SubComplex(x, y Complex, bundle policy.Bundle) Complex {
	return Complex{
		Re: SubB(x.Re, y.Re, bundle.Sub("re")),
		Im: SubB(x.Im, y.Im, bundle.Sub("im")),
	}
}

// MulComplex computes x*y (spec §4.3 Complex rules). By default it uses
// the school-book 4-multiply/2-add-or-sub expansion:
//
//	(a+bi)(c+di) = (ac-bd) + (ad+bc)i
//
// Each of the four sub-products and the two combining adds can be steered
// independently via the named sub-bundles "ac", "bd", "ad", "bc", and
// "re"/"im" for the final combine. If bundle has a "karatsuba" sub-bundle
// attached (policy.Named("karatsuba", ...), value irrelevant — its mere
// presence is the selector), the alternate 3-multiply/5-add form is used
// instead, exposing its own intermediate sub-bundles "abc" (c·(a+b)),
// "bad" (a·(d-c)), and "cdb" (b·(c+d)).
func MulComplex(x, y Complex, bundle policy.Bundle) Complex {
	if bundle.HasNamed("karatsuba") {
		return mulKaratsuba(x, y, bundle)
	}
	return mulSchoolbook(x, y, bundle)
}

func mulSchoolbook(x, y Complex, bundle policy.Bundle) Complex {
	ac := MulB(x.Re, y.Re, bundle.Sub("ac"))
	bd := MulB(x.Im, y.Im, bundle.Sub("bd"))
	ad := MulB(x.Re, y.Im, bundle.Sub("ad"))
	bc := MulB(x.Im, y.Re, bundle.Sub("bc"))
	return Complex{
		Re: SubB(ac, bd, bundle.Sub("re")),
		Im: AddB(ad, bc, bundle.Sub("im")),
	}
}

// mulKaratsuba computes x*y with three multiplies instead of four:
//
//	k1 = c * (a+b)
//	k2 = a * (d-c)
//	k3 = b * (c+d)
//	re = k1 - k3
//	im = k1 + k2
func mulKaratsuba(x, y Complex, bundle policy.Bundle) Complex {
	apb := AddB(x.Re, x.Im, bundle.Sub("abc"))
	dmc := SubB(y.Im, y.Re, bundle.Sub("bad"))
	cpd := AddB(y.Re, y.Im, bundle.Sub("cdb"))

	k1 := MulB(y.Re, apb, bundle.Sub("abc"))
	k2 := MulB(x.Re, dmc, bundle.Sub("bad"))
	k3 := MulB(x.Im, cpd, bundle.Sub("cdb"))

	return Complex{
		Re: SubB(k1, k3, bundle.Sub("re")),
		Im: AddB(k1, k2, bundle.Sub("im")),
	}
}

// MulRealComplex computes r*y for a real scalar r, distributing over both
// parts (spec §4.3: "Real×Complex distributes over the two parts").
func MulRealComplex(r Value, y Complex, bundle policy.Bundle) Complex {
	return Complex{
		Re: MulB(r, y.Re, bundle.Sub("re")),
		Im: MulB(r, y.Im, bundle.Sub("im")),
	}
}

// DivComplex is declared per spec §4.3 but always fails: complex/complex
// division is an unsupported operation (spec error kind 4).
func DivComplex(x, y Complex, bundle policy.Bundle) (Complex, error) {
	return Complex{}, errors.Wrap(ErrUnsupportedOp, "qfx: complex/complex division")
}

// DivRealComplex is declared per spec §4.3 but always fails:
// real/complex division is an unsupported operation (spec error kind 4).
func DivRealComplex(r Value, y Complex, bundle policy.Bundle) (Complex, error) {
	return Complex{}, errors.Wrap(ErrUnsupportedOp, "qfx: real/complex division")
}
