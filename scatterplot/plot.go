// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// plot builds a scatter plot of an aggregated table, mapping the
// "count" column to mark size and, for labeled data, the "label"
// column to color.
func plot(tab table.Grouping, labeled bool) *gg.Plot {
	p := gg.NewPlot(tab)
	p.Stat(sizeScale{"count", 2, 10})
	lp := gg.LayerPoints{X: "x", Y: "y", Size: "size"}
	if labeled {
		lp.Color = "label"
	}
	p.Add(lp)
	return p
}

// sizeScale is a stat that adds a "size" column rescaling column Col
// into [Lo, max(K, max Col)], so that the largest counts stay legible
// without tiny counts vanishing. Bounds are computed across all
// groups so sizes are comparable between labels.
type sizeScale struct {
	Col   string
	Lo, K float64
}

func (s sizeScale) F(g table.Grouping) table.Grouping {
	// Combined bounds across groups.
	min, max := math.NaN(), math.NaN()
	var ns []float64
	for _, gid := range g.Tables() {
		slice.Convert(&ns, g.Table(gid).MustColumn(s.Col))
		nmin, nmax := stats.Bounds(ns)
		if nmin < min || math.IsNaN(min) {
			min = nmin
		}
		if nmax > max || math.IsNaN(max) {
			max = nmax
		}
	}
	hi := math.Max(s.K, max)

	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var ns []float64
		slice.Convert(&ns, t.MustColumn(s.Col))
		size := vec.Map(func(n float64) float64 {
			if max == min {
				return s.Lo
			}
			return s.Lo + (n-min)/(max-min)*(hi-s.Lo)
		}, ns)
		return table.NewBuilder(t).Add("size", size).Done()
	})
}
