// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qio

import (
	"bytes"
	"encoding/binary"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qfx"
	"github.com/pikapuma/QuBLAS/qtensor"
)

// MarshalBinary encodes a rank-2 Tensor's raw int32 data for an external
// math tool, little-endian, following the exact layout mat64.Dense uses for
// float64: rows (int64), cols (int64), then the Format's (int_bits int32,
// frac_bits int32, signed bool) triple so a reader can reconstruct scale,
// then the row-major element data — here int32 raw FixedValue words
// instead of float64s.
func MarshalBinary(t *qtensor.Tensor) ([]byte, error) {
	r, c := t.Dims()
	f := t.Format()
	buf := new(bytes.Buffer)
	for _, v := range []interface{}{
		int64(r), int64(c),
		int32(f.IntBits), int32(f.FracBits), f.Signed,
	} {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			return nil, err
		}
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := binary.Write(buf, binary.LittleEndian, t.AtRC(i, j).Raw()); err != nil {
				return nil, err
			}
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary is the inverse of MarshalBinary, reconstructing a new
// Tensor with the encoded Format and raw data.
func UnmarshalBinary(data []byte) (*qtensor.Tensor, error) {
	r := bytes.NewReader(data)
	var rows, cols int64
	var intBits, fracBits int32
	var signed bool
	for _, v := range []interface{}{&rows, &cols, &intBits, &fracBits, &signed} {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, err
		}
	}
	f := policy.Format{IntBits: int(intBits), FracBits: int(fracBits), Signed: signed}
	t := qtensor.NewTensor(f, int(rows), int(cols))
	for i := 0; i < int(rows); i++ {
		for j := 0; j < int(cols); j++ {
			var raw int32
			if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
				return nil, err
			}
			t.SetRC(i, j, qfx.FromRaw(raw, f))
		}
	}
	return t, nil
}

// WriteCSV writes a rank-2 Tensor's Float64 view as comma-separated text,
// for loading into an external numeric tool (spreadsheet, MATLAB/NumPy
// import) that has no notion of fixed-point Format.
func WriteCSV(w io.Writer, t *qtensor.Tensor) error {
	r, c := t.Dims()
	cw := csv.NewWriter(w)
	for i := 0; i < r; i++ {
		row := make([]string, c)
		for j := 0; j < c; j++ {
			row[j] = strconv.FormatFloat(t.AtRC(i, j).Float64(), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
