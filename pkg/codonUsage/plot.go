package codonUsage

import (
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotTopCodons draws one bar per (codon, count) pair with the codon as the
// category label and saves a PNG to path. An existing file is overwritten.
func PlotTopCodons(label string, top []CodonCount, path string) error {
	p := plot.New()
	p.Title.Text = "Top " + strconv.Itoa(len(top)) + " codons - " + label
	p.X.Label.Text = "Codon"
	p.Y.Label.Text = "Count"

	var (
		values = make(plotter.Values, len(top))
		codons = make([]string, len(top))
	)
	for i, cc := range top {
		values[i] = float64(cc.Count)
		codons[i] = cc.Codon
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)

	p.Add(bars)
	p.NominalX(codons...)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

// UnionTopCodons returns the sorted union of the genomes' top codon sets.
// The comparison chart aligns bars by codon identity over this union, so a
// codon missing from one genome's top list still gets that genome's count.
func UnionTopCodons(infos ...*GenomeInfo) []string {
	var set = make(map[string]bool)
	for _, info := range infos {
		for _, cc := range info.TopCodon {
			set[cc.Codon] = true
		}
	}
	var codons []string
	for codon := range set {
		codons = append(codons, codon)
	}
	sort.Strings(codons)
	return codons
}

// PlotComparison draws paired bars for two genomes over the union of their
// top codon sets and saves a PNG to path.
func PlotComparison(info1, info2 *GenomeInfo, path string) error {
	p := plot.New()
	p.Title.Text = "Codon counts comparison (top codons union)"
	p.X.Label.Text = "Codon"
	p.Y.Label.Text = "Count"

	var (
		codons  = UnionTopCodons(info1, info2)
		values1 = make(plotter.Values, len(codons))
		values2 = make(plotter.Values, len(codons))
	)
	for i, codon := range codons {
		values1[i] = float64(info1.CodonCount[codon])
		values2[i] = float64(info2.CodonCount[codon])
	}

	var w = vg.Points(12)

	bars1, err := plotter.NewBarChart(values1, w)
	if err != nil {
		return err
	}
	bars1.LineStyle.Width = vg.Length(0)
	bars1.Color = plotutil.Color(0)
	bars1.Offset = -w / 2

	bars2, err := plotter.NewBarChart(values2, w)
	if err != nil {
		return err
	}
	bars2.LineStyle.Width = vg.Length(0)
	bars2.Color = plotutil.Color(1)
	bars2.Offset = w / 2

	p.Add(bars1, bars2)
	p.Legend.Add(info1.Label, bars1)
	p.Legend.Add(info2.Label, bars2)
	p.Legend.Top = true
	p.NominalX(codons...)

	return p.Save(16*vg.Inch, 6*vg.Inch, path)
}
