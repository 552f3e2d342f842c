// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scatterplot demonstrates the overplot aggregators.
//
// scatterplot synthesizes clustered random points (or reads them from
// a CSV file of "x,y" or "x,y,label" rows), aggregates overlapping
// points with one of the aggregation methods, and renders an SVG
// scatter plot in which mark size shows how many observations each
// point stands for. Labeled points are aggregated per label and
// colored by label.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/overplot/overplot/aggregate"
	"github.com/overplot/overplot/aggstat"
)

func main() {
	log.SetPrefix("scatterplot: ")
	log.SetFlags(0)

	var (
		flagN          = flag.Int("n", 400, "synthesize `count` points")
		flagClusters   = flag.Int("clusters", 3, "synthesize `k` labeled clusters")
		flagSeed       = flag.Int64("seed", 1, "seed for synthesized data")
		flagInput      = flag.String("i", "", "read x,y[,label] CSV from `file` instead of synthesizing")
		flagMethod     = flag.String("method", "merge", "aggregation `method`: grid or merge")
		flagEps        = flag.Float64("eps", aggregate.DefaultEpsilon, "merge points closer than `dist` (method merge)")
		flagPasses     = flag.Int("passes", aggregate.DefaultMaxPasses, "cap merging at `n` passes (method merge)")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable      = flag.Bool("table", false, "output a table instead of a plot")
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	var stat gg.Stat
	switch *flagMethod {
	case "grid":
		stat = aggstat.Grid{X: "x", Y: "y"}
	case "merge":
		stat = aggstat.Proximity{X: "x", Y: "y", Epsilon: *flagEps, MaxPasses: *flagPasses}
	default:
		log.Fatalf("unknown method %q", *flagMethod)
	}

	// Load or synthesize the observations.
	var tab table.Grouping
	var labeled bool
	if *flagInput != "" {
		var err error
		tab, labeled, err = readPoints(*flagInput)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		tab, labeled = synthesize(*flagN, *flagClusters, *flagSeed)
	}

	// Aggregate, partitioned by label.
	if labeled {
		tab = table.GroupBy(tab, "label")
	}
	tab = stat.F(tab)

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	// Output table.
	if *flagTable {
		table.Fprint(f, tab)
		return
	}

	// Render plot.
	if err := plot(tab, labeled).WriteSVG(f, 600, 400); err != nil {
		log.Fatal(err)
	}
}
