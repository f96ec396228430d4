package codonUsage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestGenomeInfoCountCodons(t *testing.T) {
	info := NewGenomeInfo("test", "Test", "")
	info.Seq = "ATGATGATGCCCNNNAA"
	info.CountCodons(TopCodonNum)

	if !reflect.DeepEqual(info.CodonCount, map[string]int{"ATG": 3, "CCC": 1}) {
		t.Errorf("CodonCount = %v", info.CodonCount)
	}
	if !reflect.DeepEqual(info.SkippedCodon, map[string]int{"NNN": 1}) {
		t.Errorf("SkippedCodon = %v", info.SkippedCodon)
	}
	if info.Stats["CodonNum"] != 5 {
		t.Errorf("CodonNum = %d; want 5", info.Stats["CodonNum"])
	}
	if info.Stats["SkippedCodonNum"] != 1 {
		t.Errorf("SkippedCodonNum = %d; want 1", info.Stats["SkippedCodonNum"])
	}
	if info.Stats["CountedCodonNum"] != 4 {
		t.Errorf("CountedCodonNum = %d; want 4", info.Stats["CountedCodonNum"])
	}

	expectedTop := []CodonCount{{"ATG", 3}, {"CCC", 1}}
	if !reflect.DeepEqual(info.TopCodon, expectedTop) {
		t.Errorf("TopCodon = %v; want %v", info.TopCodon, expectedTop)
	}
	// ATG->M, CCC->P
	expectedAA := map[string]int{"M": 3, "P": 1}
	if !reflect.DeepEqual(info.AminoAcidCount, expectedAA) {
		t.Errorf("AminoAcidCount = %v; want %v", info.AminoAcidCount, expectedAA)
	}
}

func TestGenomeInfoSingleRun(t *testing.T) {
	var dir = t.TempDir()
	var fasta = filepath.Join(dir, "test.fasta")
	if err := os.WriteFile(fasta, []byte(">seq1\nATGATGATGCCC\n"), 0644); err != nil {
		t.Fatalf("Failed to write test fasta: %v", err)
	}

	info := NewGenomeInfo("covid", "SARS-CoV-2", fasta)
	if err := info.SingleRun(dir, TopCodonNum); err != nil {
		t.Fatalf("SingleRun failed: %v", err)
	}

	if info.Seq != "ATGATGATGCCC" {
		t.Errorf("Seq = %q", info.Seq)
	}
	for _, name := range []string{"covid.codon_usage.txt", "covid_top10_codons.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected output %s: %v", name, err)
		}
	}

	content, err := os.ReadFile(filepath.Join(dir, "covid.codon_usage.txt"))
	if err != nil {
		t.Fatalf("Failed to read usage table: %v", err)
	}
	expected := "codon\taminoAcid\tcount\tfrequency\nATG\tM\t3\t0.750000\nCCC\tP\t1\t0.250000\n"
	if string(content) != expected {
		t.Errorf("Unexpected usage table.\nExpected: %q\nActual: %q", expected, string(content))
	}
}

func TestGenomeInfoSingleRunMissingFasta(t *testing.T) {
	var dir = t.TempDir()
	info := NewGenomeInfo("flu", "Influenza", filepath.Join(dir, "missing.fasta"))
	if err := info.SingleRun(dir, TopCodonNum); err == nil {
		t.Fatal("Expected an error, but got nil")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Expected no output files, got %d", len(entries))
	}
}

func TestPlotComparison(t *testing.T) {
	var dir = t.TempDir()

	info1 := NewGenomeInfo("covid", "SARS-CoV-2", "")
	info1.Seq = "ATGATGATGCCC"
	info1.CountCodons(TopCodonNum)

	info2 := NewGenomeInfo("flu", "Influenza (concatenated)", "")
	info2.Seq = "TTTTTTGGG"
	info2.CountCodons(TopCodonNum)

	// disjoint top sets are laid out over the sorted union
	union := UnionTopCodons(info1, info2)
	if !reflect.DeepEqual(union, []string{"ATG", "CCC", "GGG", "TTT"}) {
		t.Errorf("UnionTopCodons = %v", union)
	}

	var path = filepath.Join(dir, "top_codons_comparison.png")
	if err := PlotComparison(info1, info2, path); err != nil {
		t.Fatalf("PlotComparison failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected comparison png: %v", err)
	}
}

func TestWriteUsageXlsx(t *testing.T) {
	var dir = t.TempDir()

	info1 := NewGenomeInfo("covid", "SARS-CoV-2", "")
	info1.Seq = "ATGATGATGCCC"
	info1.CountCodons(TopCodonNum)

	info2 := NewGenomeInfo("flu", "Influenza (concatenated)", "")
	info2.Seq = "TTTAAA"
	info2.CountCodons(TopCodonNum)

	var path = filepath.Join(dir, "codon_usage.xlsx")
	WriteUsageXlsx(path, info1, info2)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected xlsx output: %v", err)
	}
}

func TestPlotTopCodonsHTML(t *testing.T) {
	var dir = t.TempDir()

	info := NewGenomeInfo("covid", "SARS-CoV-2", "")
	info.Seq = "ATGATGATGCCC"
	info.CountCodons(TopCodonNum)

	var path = filepath.Join(dir, "top_codons.html")
	PlotTopCodonsHTML(path, info)
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected html output: %v", err)
	}
	if !strings.Contains(string(content), "ATG") {
		t.Error("html chart does not mention top codon")
	}
}

func TestSummaryTxt(t *testing.T) {
	var dir = t.TempDir()

	info := NewGenomeInfo("covid", "SARS-CoV-2", "covid.fasta")
	info.Seq = "ATGATGATGCCC"
	info.CountCodons(TopCodonNum)

	var path = filepath.Join(dir, "summary.txt")
	SummaryTxt(path, info)

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read summary: %v", err)
	}
	for _, want := range []string{"SARS-CoV-2", "CodonNum", "GCContent", "++ATG\t3", "++M\t3"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("summary missing %q", want)
		}
	}
}
