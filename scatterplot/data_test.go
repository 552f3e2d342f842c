// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.csv")
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadPoints(t *testing.T) {
	path := writeFile(t, "1.5,2.5\n-1,0\n")
	g, labeled, err := readPoints(path)
	if err != nil {
		t.Fatal(err)
	}
	if labeled {
		t.Error("got labeled = true; want false")
	}
	tab := g.Table(table.RootGroupID)
	if got, want := tab.Column("x"), []float64{1.5, -1}; !reflect.DeepEqual(got, want) {
		t.Errorf("x = %v; want %v", got, want)
	}
	if got, want := tab.Column("y"), []float64{2.5, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("y = %v; want %v", got, want)
	}
}

func TestReadPointsLabeledHeader(t *testing.T) {
	path := writeFile(t, "x,y,label\n1,2,A\n3,4,B\n")
	g, labeled, err := readPoints(path)
	if err != nil {
		t.Fatal(err)
	}
	if !labeled {
		t.Fatal("got labeled = false; want true")
	}
	tab := g.Table(table.RootGroupID)
	if got, want := tab.Column("label"), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("label = %v; want %v", got, want)
	}
}

func TestReadPointsBad(t *testing.T) {
	for _, contents := range []string{
		"1,2\nbogus,4\n", // non-numeric past the header
		"1,2,A\n3,4\n",   // mixed field counts
	} {
		path := writeFile(t, contents)
		if _, _, err := readPoints(path); err == nil {
			t.Errorf("readPoints of %q succeeded; want error", contents)
		}
	}
}

func TestSynthesize(t *testing.T) {
	g, labeled := synthesize(100, 3, 1)
	if !labeled {
		t.Fatal("got labeled = false; want true")
	}
	tab := g.Table(table.RootGroupID)
	if got := tab.Len(); got != 100 {
		t.Errorf("got %d rows; want 100", got)
	}

	// Same seed, same data.
	g2, _ := synthesize(100, 3, 1)
	tab2 := g2.Table(table.RootGroupID)
	if !reflect.DeepEqual(tab.Column("x"), tab2.Column("x")) {
		t.Error("same seed produced different data")
	}

	// A single cluster is unlabeled.
	if _, labeled := synthesize(10, 1, 1); labeled {
		t.Error("k=1 should be unlabeled")
	}
}
