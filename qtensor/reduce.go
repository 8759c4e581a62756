// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qtensor

import (
	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
)

// Qreduce sums vs using pairwise combination arranged in a complete binary
// tree (spec §4.5): layer 0 pair-sums the leaves, layer 1 pair-sums those
// partial sums, and so on. bundles[k] is the add policy for layer k; if
// fewer bundles are given than the tree has layers, the last bundle is
// reused for every remaining deeper layer. An odd element at any layer
// carries forward to the next layer unchanged, mirroring a hardware adder
// tree with an unbalanced leaf count. Qreduce panics if vs is empty.
func Qreduce(bundles []policy.Bundle, vs ...qfx.Value) qfx.Value {
	if len(vs) == 0 {
		panic(policy.ErrShape)
	}
	layer := vs
	for depth := 0; len(layer) > 1; depth++ {
		b := layerBundle(bundles, depth)
		next := make([]qfx.Value, 0, (len(layer)+1)/2)
		i := 0
		for ; i+1 < len(layer); i += 2 {
			next = append(next, qfx.AddB(layer[i], layer[i+1], b))
		}
		if i < len(layer) {
			next = append(next, layer[i])
		}
		layer = next
	}
	return layer[0]
}

// ReduceTensor flattens t row-major (spec §4.5: "for a tensor input, the
// reducer flattens row-major and applies the same schedule") and sums it
// via Qreduce.
func ReduceTensor(bundles []policy.Bundle, t *Tensor) qfx.Value {
	n := t.Len()
	vs := make([]qfx.Value, n)
	for i := 0; i < n; i++ {
		vs[i] = t.atFlat(i)
	}
	return Qreduce(bundles, vs...)
}

func layerBundle(bundles []policy.Bundle, depth int) policy.Bundle {
	if len(bundles) == 0 {
		return policy.Bundle{}
	}
	if depth < len(bundles) {
		return bundles[depth]
	}
	return bundles[len(bundles)-1]
}
