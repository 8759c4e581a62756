// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qtensor implements the fixed-shape tensor (spec §3/§4.4), its
// lazy element-wise expression wrappers, and the log-depth tree reducer
// (spec §4.5), all built on the qfx scalar primitives.
package qtensor

import (
	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
)

// Tensor is a dense row-major array of compile-time-fixed shape, carrying
// elements of a single FixedFormat (spec §3). Its raw elements are stored
// unboxed as int32 alongside one shared Format, rather than as a slice of
// qfx.Value, mirroring mat64.Dense's raw-[]float64-plus-stride layout.
type Tensor struct {
	shape  []int
	stride []int
	data   []int32
	format policy.Format
}

// NewTensor allocates a zero-valued Tensor of the given shape and element
// Format. Shape is fixed for the lifetime of the Tensor (spec: "dynamic
// shape tensors" are a non-goal).
func NewTensor(format policy.Format, shape ...int) *Tensor {
	format.Validate()
	n := 1
	for _, d := range shape {
		if d < 0 {
			panic(policy.ErrShape)
		}
		n *= d
	}
	return &Tensor{
		shape:  append([]int(nil), shape...),
		stride: rowMajorStride(shape),
		data:   make([]int32, n),
		format: format,
	}
}

// rowMajorStride computes the strides of a row-major buffer of the given
// shape: stride[k] = ∏ shape[k+1:].
func rowMajorStride(shape []int) []int {
	stride := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		stride[k] = acc
		acc *= shape[k]
	}
	return stride
}

// Shape returns the tensor's dimensions. The caller must not mutate the
// returned slice.
func (t *Tensor) Shape() []int { return t.shape }

// Format returns the FixedFormat shared by every element.
func (t *Tensor) Format() policy.Format { return t.format }

// Len returns the total element count ∏ dᵢ.
func (t *Tensor) Len() int { return len(t.data) }

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int { return len(t.shape) }

// IsZero reports whether t is still the zero Tensor (no backing buffer
// allocated), the convention a kernel uses to decide whether to
// auto-allocate an output operand.
func (t *Tensor) IsZero() bool { return t.shape == nil && t.data == nil }

func (t *Tensor) flatIndex(idx []int) int {
	if len(idx) != len(t.shape) {
		panic(policy.ErrShape)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			panic(policy.ErrShape)
		}
		off += i * t.stride[k]
	}
	return off
}

// At returns the element at idx (one coordinate per dimension), panicking
// with policy.ErrShape if idx is out of range or of the wrong rank.
func (t *Tensor) At(idx ...int) qfx.Value {
	return qfx.FromRaw(t.data[t.flatIndex(idx)], t.format)
}

// Set stores v at idx, casting it into the tensor's Format first if v does
// not already carry it (spec §4.2: cross-format assignment runs the
// casting algebra under the destination's policy).
func (t *Tensor) Set(v qfx.Value, idx ...int) {
	if v.Format() != t.format {
		v = v.Cast(t.format)
	}
	t.data[t.flatIndex(idx)] = v.Raw()
}

// atFlat and SetFlat index the row-major buffer directly, bypassing shape
// validation; used internally by the tree reducer (spec §4.5: "for a
// tensor input, the reducer flattens row-major") and by qio's fill helpers,
// which populate every element without caring about its coordinate.
func (t *Tensor) atFlat(i int) qfx.Value { return qfx.FromRaw(t.data[i], t.format) }

// SetFlat stores v at row-major position i, casting it into the tensor's
// Format first if needed.
func (t *Tensor) SetFlat(v qfx.Value, i int) {
	if v.Format() != t.format {
		v = v.Cast(t.format)
	}
	t.data[i] = v.Raw()
}

// Dims returns the (rows, cols) of a rank-2 Tensor, panicking otherwise.
// The linear-algebra kernels (spec §4.6) operate on rank-2 tensors only;
// Dims/AtRC/SetRC are their narrow matrix-shaped view onto Tensor, the way
// mat64.Dense exposes Dims/At/Set over its own raw buffer.
func (t *Tensor) Dims() (r, c int) {
	if len(t.shape) != 2 {
		panic(policy.ErrShape)
	}
	return t.shape[0], t.shape[1]
}

// AtRC returns the (i,j) element of a rank-2 Tensor.
func (t *Tensor) AtRC(i, j int) qfx.Value { return t.At(i, j) }

// SetRC stores v at the (i,j) element of a rank-2 Tensor.
func (t *Tensor) SetRC(i, j int, v qfx.Value) { t.Set(v, i, j) }

// ReuseAs is the exported form of reuseAs, used by the qblas/qlapack
// kernel packages to prepare an output Tensor that may arrive either
// zero-valued or pre-allocated.
func (t *Tensor) ReuseAs(format policy.Format, shape ...int) { t.reuseAs(format, shape...) }

// reuseAs resizes t to shape under format if t is the zero Tensor (no
// backing buffer yet), or checks that t already has exactly that shape and
// format otherwise. Grounded on mat64.Dense's reuseAs: destination
// operands of a kernel may be passed either pre-allocated or zero-valued.
func (t *Tensor) reuseAs(format policy.Format, shape ...int) {
	if t.data == nil && t.shape == nil {
		*t = *NewTensor(format, shape...)
		return
	}
	if len(t.shape) != len(shape) {
		panic(policy.ErrShape)
	}
	for k, d := range shape {
		if t.shape[k] != d {
			panic(policy.ErrShape)
		}
	}
	if t.format != format {
		panic(policy.ErrShape)
	}
}
