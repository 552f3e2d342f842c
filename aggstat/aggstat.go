// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aggstat provides point-aggregation statistics over go-gg
// tables.
//
// The statistics in this package wrap the aggregators from the
// aggregate package in the ggstat convention: an options struct with
// an F method from table.Grouping to table.Grouping, so they compose
// with gg.Plot.Stat and go-gg layers. Grouping is the partitioning
// mechanism: group the input by a label column first (table.GroupBy)
// and each group is aggregated independently, with the group's
// constant columns (including the label) carried onto the output
// rows.
package aggstat

import (
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	"github.com/overplot/overplot/aggregate"
)

// Grid bins (X, Y) observations into integer cells and counts the
// observations per cell.
//
// X and Y name the coordinate columns. If they are "", they default
// to the first and second columns, respectively.
//
// The result has three columns per group:
//
// - Column X is the cell's x coordinate (the rounded value).
//
// - Column Y is the cell's y coordinate.
//
// - Column "count" is the number of observations in the cell.
type Grid struct {
	// X and Y are the names of the coordinate columns.
	X, Y string
}

func (s Grid) F(g table.Grouping) table.Grouping {
	defaultCols(g, &s.X, &s.Y)
	return mapAgg(g, s.X, s.Y, aggregate.Grid)
}

// Proximity merges (X, Y) observations closer than Epsilon into
// weighted midpoints, iterating until a pass merges nothing or the
// pass cap is hit. See aggregate.Proximity for the exact greedy,
// order-dependent semantics.
//
// All fields have reasonable default zero values.
//
// The result has columns X, Y, and "count", as for Grid, except that
// coordinates stay continuous.
type Proximity struct {
	// X and Y are the names of the coordinate columns. If they
	// are "", they default to the first and second columns,
	// respectively.
	X, Y string

	// Epsilon is the distance below which two points merge. If
	// Epsilon is 0, it is treated as aggregate.DefaultEpsilon. A
	// negative Epsilon disables merging, which returns every
	// observation with count 1.
	Epsilon float64

	// MaxPasses caps the number of merge passes. If MaxPasses
	// is <= 0, it is treated as aggregate.DefaultMaxPasses.
	MaxPasses int
}

func (s Proximity) F(g table.Grouping) table.Grouping {
	defaultCols(g, &s.X, &s.Y)
	if s.Epsilon == 0 {
		s.Epsilon = aggregate.DefaultEpsilon
	}
	if s.MaxPasses <= 0 {
		s.MaxPasses = aggregate.DefaultMaxPasses
	}
	eps, passes := s.Epsilon, s.MaxPasses
	return mapAgg(g, s.X, s.Y, func(points []aggregate.Point) []aggregate.WeightedPoint {
		return aggregate.Proximity(points, eps, passes)
	})
}

// mapAgg applies f to the (xcol, ycol) observations of each group and
// rebuilds each group as an (xcol, ycol, "count") table, preserving
// constant columns.
func mapAgg(g table.Grouping, xcol, ycol string, f aggregate.Func) table.Grouping {
	var xs, ys []float64
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		slice.Convert(&xs, t.MustColumn(xcol))
		slice.Convert(&ys, t.MustColumn(ycol))

		points := make([]aggregate.Point, len(xs))
		for i := range points {
			points[i] = aggregate.Point{X: xs[i], Y: ys[i]}
		}
		wps := f(points)

		xo := make([]float64, len(wps))
		yo := make([]float64, len(wps))
		no := make([]int, len(wps))
		for i, wp := range wps {
			xo[i], yo[i], no[i] = wp.X, wp.Y, wp.N
		}

		nt := new(table.Builder).Add(xcol, xo).Add(ycol, yo).Add("count", no)
		preserveConsts(nt, t)
		return nt.Done()
	})
}

// defaultCols fills in empty column names with the grouping's first
// columns.
func defaultCols(g table.Grouping, cols ...*string) {
	dcols := g.Columns()
	for i, colp := range cols {
		if *colp == "" {
			if i >= len(dcols) {
				panic(fmt.Sprintf("cannot get default column %d; table has only %d columns", i, len(dcols)))
			}
			*colp = dcols[i]
		}
	}
}

// preserveConsts copies the constant columns from t into nt.
func preserveConsts(nt *table.Builder, t *table.Table) {
	for _, col := range t.Columns() {
		if nt.Has(col) {
			// Don't overwrite existing columns in nt.
			continue
		}
		if cv, ok := t.Const(col); ok {
			nt.AddConst(col, cv)
		}
	}
}
