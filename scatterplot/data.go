// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// synthesize returns n observations drawn from k unit-variance
// gaussian clusters with random centers. If k > 1 each observation is
// labeled with its cluster and the result is labeled.
func synthesize(n, k int, seed int64) (table.Grouping, bool) {
	if k < 1 {
		k = 1
	}
	rng := rand.New(rand.NewSource(seed))

	cx, cy := make([]float64, k), make([]float64, k)
	for i := range cx {
		cx[i], cy[i] = rng.Float64()*20, rng.Float64()*20
	}

	xs, ys := make([]float64, n), make([]float64, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		c := rng.Intn(k)
		xs[i] = cx[c] + rng.NormFloat64()
		ys[i] = cy[c] + rng.NormFloat64()
		labels[i] = fmt.Sprintf("c%d", c)
	}

	b := new(table.Builder).Add("x", xs).Add("y", ys)
	if k > 1 {
		b.Add("label", labels)
		return b.Done(), true
	}
	return b.Done(), false
}

// readPoints reads observations from a CSV file of "x,y" or
// "x,y,label" rows. A leading header row is skipped if its first
// field is not a number. Every row must have the same number of
// fields; the result is labeled if rows have three.
func readPoints(path string) (table.Grouping, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, false, err
	}

	xs, ys := []float64{}, []float64{}
	var labels []string
	for i, rec := range recs {
		if len(rec) != 2 && len(rec) != 3 {
			return nil, false, fmt.Errorf("%s:%d: want 2 or 3 fields, got %d", path, i+1, len(rec))
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			if i == 0 {
				// Header row.
				continue
			}
			return nil, false, fmt.Errorf("%s:%d: bad x value %q", path, i+1, rec[0])
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, false, fmt.Errorf("%s:%d: bad y value %q", path, i+1, rec[1])
		}
		xs, ys = append(xs, x), append(ys, y)
		if len(rec) == 3 {
			labels = append(labels, strings.TrimSpace(rec[2]))
		}
	}
	if labels != nil && len(labels) != len(xs) {
		return nil, false, fmt.Errorf("%s: mixed labeled and unlabeled rows", path)
	}

	b := new(table.Builder).Add("x", xs).Add("y", ys)
	if labels != nil {
		b.Add("label", labels)
	}
	return b.Done(), labels != nil, nil
}
