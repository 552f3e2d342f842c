// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"reflect"
	"testing"
)

func sumN(wps []WeightedPoint) int {
	n := 0
	for _, wp := range wps {
		n += wp.N
	}
	return n
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   []WeightedPoint
	}{
		{
			"rounding",
			[]Point{{1.2, 1.4}, {1.6, 1.6}},
			[]WeightedPoint{{1, 1, 1, ""}, {2, 2, 1, ""}},
		},
		{
			"sharedCell",
			[]Point{{0.4, 0.4}, {-0.4, 0.2}, {1, 1}},
			[]WeightedPoint{{0, 0, 2, ""}, {1, 1, 1, ""}},
		},
		{
			"tiesAwayFromZero",
			[]Point{{0.5, 1.5}, {-0.5, -1.5}},
			[]WeightedPoint{{-1, -2, 1, ""}, {1, 2, 1, ""}},
		},
		{
			"negative",
			[]Point{{-1.2, -2.6}, {-0.8, -2.5}},
			[]WeightedPoint{{-1, -3, 2, ""}},
		},
		{
			"single",
			[]Point{{3.7, -0.2}},
			[]WeightedPoint{{4, 0, 1, ""}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Grid(test.points)
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("Grid(%v) = %v; want %v", test.points, got, test.want)
			}
			if got, want := sumN(got), len(test.points); got != want {
				t.Errorf("counts sum to %d; want %d", got, want)
			}
		})
	}
}

func TestGridEmpty(t *testing.T) {
	if got := Grid(nil); len(got) != 0 {
		t.Errorf("Grid(nil) = %v; want empty", got)
	}
	if got := Grid([]Point{}); len(got) != 0 {
		t.Errorf("Grid([]) = %v; want empty", got)
	}
}

// TestGridOrderIndependent checks that Grid gives identical results,
// including output order, for permutations of the same observations.
func TestGridOrderIndependent(t *testing.T) {
	points := []Point{{0.2, 0.9}, {4.4, 2.2}, {-1.5, 0}, {0.1, 1.1}, {4.6, 1.8}, {0, 0}}
	want := Grid(points)

	perm := make([]Point, len(points))
	// Reversal.
	for i, p := range points {
		perm[len(points)-1-i] = p
	}
	if got := Grid(perm); !reflect.DeepEqual(got, want) {
		t.Errorf("reversed input: Grid = %v; want %v", got, want)
	}
	// Rotation.
	copy(perm, points[2:])
	copy(perm[len(points)-2:], points[:2])
	if got := Grid(perm); !reflect.DeepEqual(got, want) {
		t.Errorf("rotated input: Grid = %v; want %v", got, want)
	}
}

// TestGridCellOrder checks that cells come out in ascending x, then
// ascending y order.
func TestGridCellOrder(t *testing.T) {
	points := []Point{{2, 2}, {0, 1}, {2, 0}, {0, 0}}
	got := Grid(points)
	want := []WeightedPoint{{0, 0, 1, ""}, {0, 1, 1, ""}, {2, 0, 1, ""}, {2, 2, 1, ""}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Grid(%v) = %v; want %v", points, got, want)
	}
}
