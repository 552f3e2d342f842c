// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import "math"

// Defaults for Proximity's parameters. The aggstat package applies
// these when its option fields are zero.
const (
	DefaultEpsilon   = 0.5
	DefaultMaxPasses = 50
)

// Proximity aggregates points by repeatedly merging pairs that are
// closer than eps. Merging replaces one point of the pair with the
// midpoint of the two and adds their weights; the other point is
// absorbed and takes no further part. The process stops after a full
// pass performs no merges, or after maxPasses passes, whichever comes
// first. Hitting the pass cap yields a valid partial aggregation, not
// an error.
//
// Each pass scans ordered pairs (i, j) in ascending input-index order
// and a merge moves point i immediately, so later comparisons in the
// same pass see the updated position. The result therefore depends on
// the order of points. That is the contract: Proximity is a cheap
// deterministic greedy merge for display purposes, not a clustering
// algorithm, and callers that need order independence should sort
// their input first.
//
// If eps <= 0 no pair can merge and every point is returned with
// weight 1. If maxPasses < 1, DefaultMaxPasses is used. Surviving
// points are returned in input order. The input slice is not
// modified.
func Proximity(points []Point, eps float64, maxPasses int) []WeightedPoint {
	if maxPasses < 1 {
		maxPasses = DefaultMaxPasses
	}

	// Scratch positions and weights, owned by this call. Weight 0
	// marks an absorbed point.
	pts := make([]Point, len(points))
	copy(pts, points)
	w := make([]int, len(pts))
	for i := range w {
		w[i] = 1
	}

	for pass := 0; eps > 0 && pass < maxPasses; pass++ {
		merged := false
		for i := range pts {
			if w[i] == 0 {
				continue
			}
			for j := range pts {
				if i == j || w[j] == 0 {
					continue
				}
				if math.Hypot(pts[i].X-pts[j].X, pts[i].Y-pts[j].Y) >= eps {
					continue
				}
				pts[i].X = (pts[i].X + pts[j].X) / 2
				pts[i].Y = (pts[i].Y + pts[j].Y) / 2
				w[i] += w[j]
				w[j] = 0
				merged = true
			}
		}
		if !merged {
			break
		}
	}

	var out []WeightedPoint
	for i, p := range pts {
		if w[i] > 0 {
			out = append(out, WeightedPoint{X: p.X, Y: p.Y, N: w[i]})
		}
	}
	return out
}
