package main

import (
	"flag"
	"log"

	util "CodonUsage/pkg/codonUsage"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// flag
var (
	input1 = flag.String(
		"i1",
		"",
		"input fasta 1",
	)
	input2 = flag.String(
		"i2",
		"",
		"input fasta 2",
	)
	window = flag.Int(
		"w",
		100,
		"window",
	)
	name = flag.String(
		"n",
		"GC",
		"name",
	)
)

func winGC(path string, window int) plotter.XYs {
	var records, err = util.LoadFasta(path)
	simpleUtil.CheckErr(err)
	var seq = util.PooledSeq(records)

	points := plotter.XYs{}
	for i := 0; i+window <= len(seq); i++ {
		points = append(points, plotter.XY{X: float64(i + 1), Y: util.GC(seq[i : i+window])})
	}
	return points
}

func main() {
	flag.Parse()
	if *input1 == "" || *input2 == "" {
		flag.PrintDefaults()
		log.Fatal("-i1/-i2 required!")
	}

	p := plot.New()
	p.Title.Text = "Windowed GC content"
	p.X.Label.Text = "position"
	p.Y.Label.Text = "GC"

	points1 := winGC(*input1, *window)
	points2 := winGC(*input2, *window)

	line1, _, err := plotter.NewLinePoints(points1)
	if err != nil {
		log.Fatal(err)
	}
	line1.Color = plotutil.Color(1)

	line2, _, err := plotter.NewLinePoints(points2)
	if err != nil {
		log.Fatal(err)
	}
	line2.Color = plotutil.Color(2)

	p.Add(line1, line2)
	p.Legend.Add(*input1, line1)
	p.Legend.Add(*input2, line2)

	if err := p.Save(16*vg.Inch, 9*vg.Inch, *name+".winGC.png"); err != nil {
		log.Fatal(err)
	}
}
