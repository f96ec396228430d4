package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	util "CodonUsage/pkg/codonUsage"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// flag
var (
	covid = flag.String(
		"covid",
		"NC_045512.2.fasta",
		"SARS-CoV-2 genome fasta",
	)
	flu = flag.String(
		"flu",
		"influenza_raw.fasta",
		"Influenza A fasta, segments concatenated",
	)
	outputDir = flag.String(
		"o",
		".",
		"output directory",
	)
	top = flag.Int(
		"top",
		util.TopCodonNum,
		"top N codons per genome",
	)
	debug = flag.Bool(
		"debug",
		false,
		"debug log",
	)
)

func main() {
	flag.Parse()
	if *covid == "" || *flu == "" {
		flag.PrintDefaults()
		log.Fatal("-covid/-flu required!")
	}
	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	now := time.Now()

	simpleUtil.CheckErr(os.MkdirAll(*outputDir, 0755))

	var genomes = []*util.GenomeInfo{
		util.NewGenomeInfo("covid", "SARS-CoV-2", *covid),
		util.NewGenomeInfo("flu", "Influenza (concatenated)", *flu),
	}
	for _, info := range genomes {
		simpleUtil.CheckErr(info.SingleRun(*outputDir, *top))
	}

	simpleUtil.CheckErr(
		util.PlotComparison(
			genomes[0], genomes[1],
			filepath.Join(*outputDir, "top_codons_comparison.png"),
		),
	)
	util.PlotTopCodonsHTML(filepath.Join(*outputDir, "top_codons.html"), genomes...)
	util.WriteUsageXlsx(filepath.Join(*outputDir, "codon_usage.xlsx"), genomes...)
	util.SummaryTxt(filepath.Join(*outputDir, "summary.txt"), genomes...)

	slog.Info("Done", "time", time.Since(now))
}
