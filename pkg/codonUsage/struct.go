package codonUsage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	math2 "github.com/liserjrqlxue/goUtil/math"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

const (
	TopCodonNum     = 10
	TopAminoAcidNum = 3
)

type GenomeInfo struct {
	Name  string // short id, used in output file names
	Label string // chart label
	Fasta string

	Records []Record
	Seq     string

	CodonCount     map[string]int // A/C/G/T codons only
	SkippedCodon   map[string]int // codons carrying ambiguity codes
	AminoAcidCount map[string]int
	NtCount        map[byte]int
	Stats          map[string]int

	TopCodon     []CodonCount
	TopAminoAcid []CodonCount

	GCContent float64
}

func NewGenomeInfo(name, label, fasta string) *GenomeInfo {
	return &GenomeInfo{
		Name:  name,
		Label: label,
		Fasta: fasta,

		CodonCount:   make(map[string]int),
		SkippedCodon: make(map[string]int),
		NtCount:      make(map[byte]int),
		Stats:        make(map[string]int),
	}
}

// Load reads the FASTA file and pools all records into one sequence.
func (info *GenomeInfo) Load() error {
	var records, err = LoadFasta(info.Fasta)
	if err != nil {
		return err
	}
	info.Records = records
	info.Seq = PooledSeq(records)
	info.Stats["RecordNum"] = len(records)
	info.Stats["SeqLength"] = len(info.Seq)
	slog.Info("load fasta", "name", info.Name, "fasta", info.Fasta, "records", len(records), "length", len(info.Seq))
	return nil
}

// CountCodons tokenizes the pooled sequence and fills the frequency
// tables, the amino acid table and the top lists.
func (info *GenomeInfo) CountCodons(top int) {
	for _, codon := range Codons(info.Seq) {
		info.Stats["CodonNum"]++
		if IsACGT(codon) {
			info.CodonCount[codon]++
		} else {
			info.SkippedCodon[codon]++
			info.Stats["SkippedCodonNum"]++
		}
	}
	info.Stats["CountedCodonNum"] = info.Stats["CodonNum"] - info.Stats["SkippedCodonNum"]

	info.AminoAcidCount = CountAminoAcids(info.CodonCount)
	info.TopCodon = TopN(info.CodonCount, top)
	info.TopAminoAcid = TopN(info.AminoAcidCount, TopAminoAcidNum)

	info.UpdateComposition()

	slog.Info(
		"count codons",
		"name", info.Name,
		"codons", info.Stats["CodonNum"],
		"skipped", info.Stats["SkippedCodonNum"],
		"distinct", len(info.CodonCount),
	)
}

// UpdateComposition tallies single nucleotide counts and GC content of the
// pooled sequence.
func (info *GenomeInfo) UpdateComposition() {
	for i := 0; i < len(info.Seq); i++ {
		info.NtCount[info.Seq[i]]++
	}
	info.GCContent = GC(info.Seq)
}

// SingleRun loads one genome, counts its codons, writes the per genome
// usage table and renders the per genome bar chart.
func (info *GenomeInfo) SingleRun(outputDir string, top int) error {
	if err := info.Load(); err != nil {
		return err
	}
	info.CountCodons(top)

	info.WriteUsageTxt(filepath.Join(outputDir, info.Name+".codon_usage.txt"))

	var png = filepath.Join(outputDir, fmt.Sprintf("%s_top%d_codons.png", info.Name, top))
	if err := PlotTopCodons(info.Label, info.TopCodon, png); err != nil {
		return err
	}
	slog.Info("plot top codons", "name", info.Name, "png", png)
	return nil
}

// WriteUsageTxt writes the full codon frequency table, ranked, with the
// translated amino acid and the relative frequency of each codon.
func (info *GenomeInfo) WriteUsageTxt(path string) {
	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)

	fmtUtil.Fprintln(out, "codon\taminoAcid\tcount\tfrequency")
	for _, cc := range TopN(info.CodonCount, len(info.CodonCount)) {
		fmtUtil.Fprintf(
			out,
			"%s\t%s\t%d\t%.6f\n",
			cc.Codon,
			CodonTable[cc.Codon],
			cc.Count,
			math2.DivisionInt(cc.Count, info.Stats["CountedCodonNum"]),
		)
	}
	for _, cc := range TopN(info.SkippedCodon, len(info.SkippedCodon)) {
		fmtUtil.Fprintf(out, "%s\tX\t%d\tskipped\n", cc.Codon, cc.Count)
	}
}

// WriteStats writes one genome's summary block.
func (info *GenomeInfo) WriteStats(out *os.File) {
	fmtUtil.Fprintf(out, "####################  %s\n", info.Label)
	fmtUtil.Fprintf(out, "Fasta\t\t\t= %s\n", info.Fasta)
	fmtUtil.Fprintf(out, "RecordNum\t\t= %d\n", info.Stats["RecordNum"])
	fmtUtil.Fprintf(out, "SeqLength\t\t= %d\n", info.Stats["SeqLength"])
	fmtUtil.Fprintf(out, "CodonNum\t\t= %d\n", info.Stats["CodonNum"])
	fmtUtil.Fprintf(out, "+CountedCodonNum\t= %d\n", info.Stats["CountedCodonNum"])
	fmtUtil.Fprintf(out, "+SkippedCodonNum\t= %d\n", info.Stats["SkippedCodonNum"])
	fmtUtil.Fprintf(out, "GCContent\t\t= %.4f%%\n", info.GCContent*100)

	for _, nt := range []byte{'A', 'C', 'G', 'T'} {
		fmtUtil.Fprintf(
			out,
			"+%cNum\t\t\t= %d\t%7.4f%%\n",
			nt,
			info.NtCount[nt],
			math2.DivisionInt(info.NtCount[nt], len(info.Seq))*100,
		)
	}

	fmtUtil.Fprintf(out, "Top%dCodon:\n", len(info.TopCodon))
	for _, cc := range info.TopCodon {
		fmtUtil.Fprintf(out, "++%s\t%d\n", cc.Codon, cc.Count)
	}
	fmtUtil.Fprintf(out, "Top%dAminoAcid:\n", len(info.TopAminoAcid))
	for _, cc := range info.TopAminoAcid {
		fmtUtil.Fprintf(out, "++%s\t%d\n", cc.Codon, cc.Count)
	}
	fmtUtil.Fprint(out, "\n")
}

// SummaryTxt writes the run summary for all genomes to path.
func SummaryTxt(path string, infos ...*GenomeInfo) {
	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)

	for _, info := range infos {
		info.WriteStats(out)
	}
}
