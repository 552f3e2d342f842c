// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Grid aggregates points by rounding each coordinate to the nearest
// integer (ties round away from zero) and counting the observations
// that land in each integer cell. It returns one weighted point per
// non-empty cell, positioned at the cell's integer coordinates.
//
// Cells are emitted in ascending x order, then ascending y order, so
// the result is deterministic and independent of the order of points.
// Coordinates may be negative; the tabulated region is the integer
// bounding box of the rounded data.
//
// Grid allocates the full bounding box, so its cost is
// O(width*height + n). For data that is sparse over a very large
// range, Proximity may be a better fit.
func Grid(points []Point) []WeightedPoint {
	if len(points) == 0 {
		return nil
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = math.Round(p.X)
		ys[i] = math.Round(p.Y)
	}
	xmin, xmax := stats.Bounds(xs)
	ymin, ymax := stats.Bounds(ys)

	w, h := int(xmax-xmin)+1, int(ymax-ymin)+1
	counts := make([]int, w*h)
	for i := range xs {
		cx, cy := int(xs[i]-xmin), int(ys[i]-ymin)
		counts[cx*h+cy]++
	}

	var out []WeightedPoint
	for cx := 0; cx < w; cx++ {
		for cy := 0; cy < h; cy++ {
			if n := counts[cx*h+cy]; n > 0 {
				out = append(out, WeightedPoint{
					X: xmin + float64(cx),
					Y: ymin + float64(cy),
					N: n,
				})
			}
		}
	}
	return out
}
