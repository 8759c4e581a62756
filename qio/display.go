// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qio

import (
	"bytes"
	"fmt"

	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qtensor"
)

// Formatted wraps a rank-1 or rank-2 Tensor for human-readable display. It
// prints each element's Float64 view, row by row, the way a debugger would
// dump a matrix while stepping through a failing kernel — not a
// bit-accurate serialization (see MarshalBinary for that).
type Formatted struct {
	T *qtensor.Tensor
}

// String implements fmt.Stringer.
func (f Formatted) String() string {
	var buf bytes.Buffer
	switch f.T.Rank() {
	case 1:
		buf.WriteByte('[')
		for i := 0; i < f.T.Len(); i++ {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "%g", f.T.At(i).Float64())
		}
		buf.WriteByte(']')
	case 2:
		r, c := f.T.Dims()
		for i := 0; i < r; i++ {
			buf.WriteByte('[')
			for j := 0; j < c; j++ {
				if j > 0 {
					buf.WriteString(", ")
				}
				fmt.Fprintf(&buf, "%g", f.T.AtRC(i, j).Float64())
			}
			buf.WriteByte(']')
			if i < r-1 {
				buf.WriteByte('\n')
			}
		}
	default:
		panic(policy.ErrShape)
	}
	return buf.String()
}
