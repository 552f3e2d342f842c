// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aggregate reduces overlapping 2-D observations to a smaller
// set of weighted points for plotting.
//
// Dense scatter data often has many observations drawn on top of each
// other, which hides how many there really are. The aggregators in
// this package collapse nearby observations into single points that
// carry a count, so a renderer can map the count to mark size or
// opacity instead of overdrawing.
//
// Two aggregators are provided: Grid snaps observations to integer
// cells and counts per cell, and Proximity greedily merges points
// closer than a distance threshold. Both conserve mass: the counts of
// the output always sum to the number of input observations.
//
// For data tagged with a category, ByLabel runs an aggregator
// independently per category so observations with different labels are
// never combined. The aggstat package provides the same transforms
// over go-gg table groupings.
package aggregate

import (
	"errors"
	"fmt"
)

// A Point is a single (x, y) observation.
type Point struct {
	X, Y float64
}

// A WeightedPoint is an aggregated point standing for N observations.
// Label is the category of the partition the point came from; it is
// set only by ByLabel and is "" otherwise.
type WeightedPoint struct {
	X, Y  float64
	N     int
	Label string
}

// A Func reduces a set of observations to a smaller set of weighted
// points. The N fields of the result must sum to len(points). A Func
// must not retain or modify points.
//
// Grid is a Func. Proximity can be made one by closing over its
// parameters.
type Func func(points []Point) []WeightedPoint

// ErrInvalidInput is returned (wrapped) for malformed arguments, such
// as a label sequence whose length does not match the points.
var ErrInvalidInput = errors.New("invalid input")

// ByLabel applies aggregator f to points, partitioned by label.
//
// If labels is nil, f is applied once to all of points and the result
// is returned unlabeled. Otherwise labels[i] gives the category of
// points[i], f is applied to each category independently, and the
// results are concatenated in order of each label's first appearance,
// with every point tagged with its category. Points with different
// labels are never aggregated together.
//
// If labels is non-nil and len(labels) != len(points), ByLabel returns
// an error wrapping ErrInvalidInput.
func ByLabel(points []Point, labels []string, f Func) ([]WeightedPoint, error) {
	if labels == nil {
		return f(points), nil
	}
	if len(labels) != len(points) {
		return nil, fmt.Errorf("%w: %d points but %d labels", ErrInvalidInput, len(points), len(labels))
	}

	// Partition by label, keeping first-appearance order.
	var order []string
	parts := make(map[string][]Point)
	for i, p := range points {
		l := labels[i]
		if _, ok := parts[l]; !ok {
			order = append(order, l)
		}
		parts[l] = append(parts[l], p)
	}

	var out []WeightedPoint
	for _, l := range order {
		for _, wp := range f(parts[l]) {
			wp.Label = l
			out = append(out, wp)
		}
	}
	return out, nil
}
