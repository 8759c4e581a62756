// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qio

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/blake2b"

	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
	"github.com/pikapuma/QuBLAS/qtensor"
)

// RNG is a seeded, reproducible bit source for test-vector generation. It
// hashes a seed plus an incrementing counter through blake2b, the same
// keyed-expansion idiom opd-ai-go-randomx uses for its own deterministic
// byte stream, rather than math/rand: the goal is a stream that reproduces
// bit-for-bit across machines and Go versions, matching the rest of this
// library's bit-exactness contract.
type RNG struct {
	seed    []byte
	counter uint64
}

// NewRNG returns an RNG seeded with the given bytes. The same seed always
// produces the same sequence of draws.
func NewRNG(seed []byte) *RNG {
	cp := make([]byte, len(seed))
	copy(cp, seed)
	return &RNG{seed: cp}
}

// Uint64 returns the next 64-bit word of the stream.
func (r *RNG) Uint64() uint64 {
	var ctr [8]byte
	binary.LittleEndian.PutUint64(ctr[:], r.counter)
	r.counter++

	h, err := blake2b.New(8, r.seed)
	if err != nil {
		// Fails for an out-of-range output size (8 is valid) or a key longer
		// than 64 bytes, so a seed over 64 bytes panics here.
		panic(err)
	}
	h.Write(ctr[:])
	return binary.LittleEndian.Uint64(h.Sum(nil))
}

// Float64 returns a uniform draw in [0,1).
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// UniformFill fills t with values drawn uniformly from t's Format's
// representable range (spec §4.2's "fill from uniform integer
// distribution").
func UniformFill(t *qtensor.Tensor, rng *RNG) {
	f := t.Format()
	lo, hi := f.Bounds()
	span := uint64(hi-lo) + 1
	for i := 0; i < t.Len(); i++ {
		raw := int32(lo + int64(rng.Uint64()%span))
		t.SetFlat(qfx.FromRaw(raw, f), i)
	}
}

// NormalFill fills t with values drawn from a Gaussian with the given mean
// and standard deviation (in real-number units), via Box–Muller sampling of
// rng's uniform stream and quantization into t's Format.
func NormalFill(t *qtensor.Tensor, rng *RNG, mean, stddev float64) {
	f := t.Format()
	n := t.Len()
	for i := 0; i < n; i++ {
		u1, u2 := rng.Float64(), rng.Float64()
		if u1 == 0 {
			u1 = math.SmallestNonzeroFloat64
		}
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
		t.SetFlat(qfx.FromFloat64(mean+stddev*z, f), i)
	}
}

// RawFill copies an explicit raw bit pattern directly into t, one int32 per
// element in row-major order, bypassing float conversion entirely (spec
// §4.2's "explicit raw bit pattern" fill mode). It panics with
// policy.ErrShape if len(bits) != t.Len().
func RawFill(t *qtensor.Tensor, bits []int32) {
	if len(bits) != t.Len() {
		panic(policy.ErrShape)
	}
	f := t.Format()
	for i, b := range bits {
		t.SetFlat(qfx.FromRaw(b, f), i)
	}
}
