package codonUsage

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// PlotTopCodonsHTML renders an interactive grouped bar chart of the
// genomes' codon counts over the union of their top codon sets.
func PlotTopCodonsHTML(path string, infos ...*GenomeInfo) {
	var (
		bar    = charts.NewBar()
		codons = UnionTopCodons(infos...)
		output = osUtil.Create(path)
	)
	defer simpleUtil.DeferClose(output)

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Top codon usage",
			Subtitle: "pooled genome codon counts",
		}))

	bar.SetXAxis(codons)
	for _, info := range infos {
		bar.AddSeries(info.Label, GenerateBarItems(info.CodonCount, codons))
	}
	simpleUtil.CheckErr(bar.Render(output))
}

func GenerateBarItems(counts map[string]int, codons []string) []opts.BarData {
	var items = make([]opts.BarData, 0, len(codons))
	for _, codon := range codons {
		items = append(items, opts.BarData{Value: counts[codon]})
	}
	return items
}
