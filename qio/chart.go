// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qio

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pikapuma/QuBLAS/qtensor"
)

// RenderHeatmap writes an HTML heat map of a rank-2 Tensor's Float64 view to
// w, for eyeballing where a kernel's output diverges from an expected
// result while debugging. Grounded on JonasLazardGIT-SPRUCE's
// cmd/analysis/main.go chart-building idiom (charts.New*/SetGlobalOptions/
// opts.Title/opts.VisualMap), substituting charts.NewHeatMap for that
// file's charts.NewBar since a matrix is naturally a 2-D grid rather than a
// 1-D histogram.
func RenderHeatmap(w io.Writer, title string, t *qtensor.Tensor) error {
	r, c := t.Dims()

	xLabels := make([]string, c)
	for j := 0; j < c; j++ {
		xLabels[j] = strconv.Itoa(j)
	}
	yLabels := make([]string, r)
	for i := 0; i < r; i++ {
		yLabels[i] = strconv.Itoa(i)
	}

	data := make([]opts.HeatMapData, 0, r*c)
	min, max := 0.0, 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := t.AtRC(i, j).Float64()
			if i == 0 && j == 0 {
				min, max = v, v
			} else {
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, v}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithVisualMapOpts(opts.VisualMap{Calculable: true, Min: float32(min), Max: float32(max)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xLabels}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: yLabels}),
	)
	hm.AddSeries("value", data)

	return hm.Render(w)
}
