// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qtensor

import (
	"testing"

	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
)

// TestQreduceAssociativityUnderFullPrec is spec §8's associativity
// property: with FullPrec at every layer, Qreduce equals the textbook wide
// sum of its inputs.
func TestQreduceAssociativityUnderFullPrec(t *testing.T) {
	f := fmtOf(8, 8, true)
	vals := []float64{1, 2, 3, 4, 5, 6, 7}
	vs := make([]qfx.Value, len(vals))
	for i, x := range vals {
		vs[i] = qfx.FromFloat64(x, f)
	}
	bundle := policy.New(policy.FullPrec())
	got := Qreduce([]policy.Bundle{bundle}, vs...)
	if got.Float64() != 28.0 {
		t.Errorf("Qreduce sum = %v, want 28.0", got.Float64())
	}
}

func TestQreduceOddLengthCarriesForward(t *testing.T) {
	f := fmtOf(8, 8, true)
	vs := []qfx.Value{
		qfx.FromFloat64(1, f),
		qfx.FromFloat64(2, f),
		qfx.FromFloat64(3, f),
	}
	bundle := policy.New(policy.FullPrec())
	got := Qreduce([]policy.Bundle{bundle}, vs...)
	if got.Float64() != 6.0 {
		t.Errorf("Qreduce odd-length sum = %v, want 6.0", got.Float64())
	}
}

func TestQreducePerLayerBundles(t *testing.T) {
	f := fmtOf(4, 4, true)
	vs := []qfx.Value{
		qfx.FromFloat64(1, f),
		qfx.FromFloat64(1, f),
		qfx.FromFloat64(1, f),
		qfx.FromFloat64(1, f),
	}
	layer0 := policy.New(policy.IntBits(5), policy.FracBits(4), policy.Signed(true))
	layer1 := policy.New(policy.IntBits(6), policy.FracBits(4), policy.Signed(true))
	got := Qreduce([]policy.Bundle{layer0, layer1}, vs...)
	if got.Format().IntBits != 6 {
		t.Errorf("Qreduce final format IntBits = %d, want 6 (layer-1 bundle)", got.Format().IntBits)
	}
	if got.Float64() != 4.0 {
		t.Errorf("Qreduce sum = %v, want 4.0", got.Float64())
	}
}

func TestQreduceSingleElement(t *testing.T) {
	f := fmtOf(4, 4, true)
	v := qfx.FromFloat64(2.0, f)
	got := Qreduce(nil, v)
	if got.Float64() != 2.0 {
		t.Errorf("Qreduce single = %v, want 2.0", got.Float64())
	}
}

func TestReduceTensorFlattensRowMajor(t *testing.T) {
	f := fmtOf(8, 8, true)
	ten := NewTensor(f, 2, 2)
	ten.Set(qfx.FromFloat64(1, f), 0, 0)
	ten.Set(qfx.FromFloat64(2, f), 0, 1)
	ten.Set(qfx.FromFloat64(3, f), 1, 0)
	ten.Set(qfx.FromFloat64(4, f), 1, 1)
	bundle := policy.New(policy.FullPrec())
	got := ReduceTensor([]policy.Bundle{bundle}, ten)
	if got.Float64() != 10.0 {
		t.Errorf("ReduceTensor sum = %v, want 10.0", got.Float64())
	}
}

func TestQreduceEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty Qreduce input")
		}
	}()
	Qreduce(nil)
}
