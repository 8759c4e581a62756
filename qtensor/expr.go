// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qtensor

import (
	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
)

// Operand is anything an expression view can index: a Tensor, a Scalar
// (broadcast), or another Expr (for composition without materialization,
// e.g. (A+B)*C). A nil Shape means "broadcast against any shape".
type Operand interface {
	Shape() []int
	At(idx ...int) qfx.Value
}

// Expr is a lazy element-wise expression view over one or two tensor
// operands (spec §4.4): indexing it computes a single element by routing
// to the scalar primitive, with no intermediate tensor allocated. Expr
// borrows its operands; it must not outlive them.
type Expr interface {
	Operand
}

// Scalar wraps a single qfx.Value so it can be mixed into a tensor
// expression as a broadcast operand (spec §4.4: "when a view is mixed with
// a scalar, the scalar is broadcast").
type Scalar struct{ V qfx.Value }

// Shape returns nil: a Scalar has no shape of its own and matches any.
func (s Scalar) Shape() []int { return nil }

// At ignores idx and always returns the wrapped value.
func (s Scalar) At(idx ...int) qfx.Value { return s.V }

// binaryExpr is the lazy view for Qmul/Qadd/Qsub/Qdiv. Its Shape is
// inherited from whichever operand is not a broadcast scalar (spec §4.4:
// "views inherit their shape from their first tensor operand").
type binaryExpr struct {
	a, b   Operand
	bundle policy.Bundle
	apply  func(a, b qfx.Value, bundle policy.Bundle) qfx.Value
}

func (e *binaryExpr) Shape() []int {
	if s := e.a.Shape(); s != nil {
		return s
	}
	return e.b.Shape()
}

func (e *binaryExpr) At(idx ...int) qfx.Value {
	return e.apply(e.a.At(idx...), e.b.At(idx...), e.bundle)
}

// unaryExpr is the lazy view for Qneg/Qabs.
type unaryExpr struct {
	a      Operand
	bundle policy.Bundle
	apply  func(a qfx.Value, bundle policy.Bundle) qfx.Value
}

func (e *unaryExpr) Shape() []int { return e.a.Shape() }

func (e *unaryExpr) At(idx ...int) qfx.Value {
	return e.apply(e.a.At(idx...), e.bundle)
}

// Qmul returns a lazy element-wise product view of a and b.
func Qmul(a, b Operand, bundle policy.Bundle) Expr {
	return &binaryExpr{a: a, b: b, bundle: bundle, apply: qfx.MulB}
}

// Qadd returns a lazy element-wise sum view of a and b.
func Qadd(a, b Operand, bundle policy.Bundle) Expr {
	return &binaryExpr{a: a, b: b, bundle: bundle, apply: qfx.AddB}
}

// Qsub returns a lazy element-wise difference view of a and b.
func Qsub(a, b Operand, bundle policy.Bundle) Expr {
	return &binaryExpr{a: a, b: b, bundle: bundle, apply: qfx.SubB}
}

// Qdiv returns a lazy element-wise quotient view of a and b.
func Qdiv(a, b Operand, bundle policy.Bundle) Expr {
	return &binaryExpr{a: a, b: b, bundle: bundle, apply: qfx.DivB}
}

// Qneg returns a lazy element-wise negation view of a.
func Qneg(a Operand, bundle policy.Bundle) Expr {
	return &unaryExpr{a: a, bundle: bundle, apply: qfx.NegB}
}

// Qabs returns a lazy element-wise absolute-value view of a.
func Qabs(a Operand, bundle policy.Bundle) Expr {
	return &unaryExpr{a: a, bundle: bundle, apply: qfx.AbsB}
}

// Materialize evaluates src element-wise into dst, which must already have
// src's shape (spec §4.4: "assigning a view to a tensor of matching shape
// materializes element-wise"). dst is resized if it is still the zero
// Tensor.
func Materialize(dst *Tensor, src Expr, format policy.Format) {
	shape := src.Shape()
	dst.reuseAs(format, shape...)
	walk(shape, func(idx []int) {
		dst.Set(src.At(idx...), idx...)
	})
}

// walk calls visit once per coordinate of a row-major iteration over
// shape, idx reused across calls (the callee must not retain it).
func walk(shape []int, visit func(idx []int)) {
	if len(shape) == 0 {
		visit(nil)
		return
	}
	idx := make([]int, len(shape))
	for {
		visit(idx)
		k := len(shape) - 1
		for k >= 0 {
			idx[k]++
			if idx[k] < shape[k] {
				break
			}
			idx[k] = 0
			k--
		}
		if k < 0 {
			return
		}
	}
}
