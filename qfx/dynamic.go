// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qfx

import "github.com/pikapuma/QuBLAS/policy"

// Dynamic is the dynamic-format variant of Value (spec §3): it carries its
// Format alongside its data so it can be converted to or from any static
// Format at runtime. It performs the same casting algebra as Value — both
// delegate to FracConvert/IntConvert — so only one algorithmic core needs
// verification (spec §9 design note on static/dynamic dispatch).
type Dynamic struct {
	data   int64
	format policy.Format
}

// NewDynamic wraps a static Value as a Dynamic, carrying its Format along.
func NewDynamic(v Value) Dynamic {
	return Dynamic{data: int64(v.Raw()), format: v.Format()}
}

// DynamicOf constructs a Dynamic directly from a real number under format f.
func DynamicOf(x float64, f policy.Format) Dynamic {
	return NewDynamic(FromFloat64(x, f))
}

// Format returns the runtime Format this Dynamic currently holds.
func (d Dynamic) Format() policy.Format { return d.format }

// To converts d into a static Value of Format to, applying to's rounding
// and overflow policy: "assignment from dynamic to static applies the
// target's policies" (spec §4.2).
func (d Dynamic) To(to policy.Format) Value {
	to.Validate()
	if d.format == to {
		return Value{data: int32(d.data), format: to}
	}
	aligned := FracConvert(d.data, d.format.FracBits, to.FracBits, to.Rnd)
	raw := IntConvert(aligned, to.IntBits, to.FracBits, to.Signed, to.Ovf)
	return Value{data: int32(raw), format: to}
}

// Recast reformats d in place to a new runtime Format using that Format's
// own rounding/overflow policy: "assignment from ... static to dynamic
// applies the [static] policies, and vice versa" (spec §4.2) — here the
// "vice versa" direction, dynamic assigned a new dynamic Format.
func (d Dynamic) Recast(to policy.Format) Dynamic {
	if d.format == to {
		return Dynamic{data: d.data, format: to}
	}
	aligned := FracConvert(d.data, d.format.FracBits, to.FracBits, to.Rnd)
	raw := IntConvert(aligned, to.IntBits, to.FracBits, to.Signed, to.Ovf)
	return Dynamic{data: raw, format: to}
}

// Float64 returns the real-number view, identical in meaning to Value.Float64.
func (d Dynamic) Float64() float64 {
	return Value{data: int32(d.data), format: d.format}.Float64()
}
