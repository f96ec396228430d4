package codonUsage

import "sort"

const CodonLength = 3

// CodonTable is the standard DNA codon table. Stop codons map to "*".
var CodonTable = map[string]string{
	"TTT": "F", "TTC": "F", "TTA": "L", "TTG": "L",
	"TCT": "S", "TCC": "S", "TCA": "S", "TCG": "S",
	"TAT": "Y", "TAC": "Y", "TAA": "*", "TAG": "*",
	"TGT": "C", "TGC": "C", "TGA": "*", "TGG": "W",
	"CTT": "L", "CTC": "L", "CTA": "L", "CTG": "L",
	"CCT": "P", "CCC": "P", "CCA": "P", "CCG": "P",
	"CAT": "H", "CAC": "H", "CAA": "Q", "CAG": "Q",
	"CGT": "R", "CGC": "R", "CGA": "R", "CGG": "R",
	"ATT": "I", "ATC": "I", "ATA": "I", "ATG": "M",
	"ACT": "T", "ACC": "T", "ACA": "T", "ACG": "T",
	"AAT": "N", "AAC": "N", "AAA": "K", "AAG": "K",
	"AGT": "S", "AGC": "S", "AGA": "R", "AGG": "R",
	"GTT": "V", "GTC": "V", "GTA": "V", "GTG": "V",
	"GCT": "A", "GCC": "A", "GCA": "A", "GCG": "A",
	"GAT": "D", "GAC": "D", "GAA": "E", "GAG": "E",
	"GGT": "G", "GGC": "G", "GGA": "G", "GGG": "G",
}

// Codons splits seq into non-overlapping 3-mers from position 0.
// Trailing 1-2 characters that do not form a full codon are dropped.
func Codons(seq string) []string {
	var codons = make([]string, 0, len(seq)/CodonLength)
	for i := 0; i+CodonLength <= len(seq); i += CodonLength {
		codons = append(codons, seq[i:i+CodonLength])
	}
	return codons
}

// CountCodons tallies each distinct codon of seq.
func CountCodons(seq string) map[string]int {
	var counts = make(map[string]int)
	for i := 0; i+CodonLength <= len(seq); i += CodonLength {
		counts[seq[i:i+CodonLength]]++
	}
	return counts
}

// CodonCount is one entry of a ranked frequency table.
type CodonCount struct {
	Codon string
	Count int
}

// TopN ranks counts descending and keeps the first n entries. Equal counts
// are ordered by codon ascending so repeated runs give identical output.
// Fewer than n distinct keys returns all of them.
func TopN(counts map[string]int, n int) []CodonCount {
	var top = make([]CodonCount, 0, len(counts))
	for codon, count := range counts {
		top = append(top, CodonCount{Codon: codon, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Codon < top[j].Codon
	})
	if n < len(top) {
		top = top[:n]
	}
	return top
}

// IsACGT reports whether the codon contains only A/C/G/T. Ambiguity codes
// from the reference assemblies fail this check.
func IsACGT(codon string) bool {
	for i := 0; i < len(codon); i++ {
		switch codon[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

// CountAminoAcids folds a codon frequency table into amino acid counts
// using CodonTable. Codons outside the table count as "X".
func CountAminoAcids(codonCount map[string]int) map[string]int {
	var counts = make(map[string]int)
	for codon, count := range codonCount {
		var aa, ok = CodonTable[codon]
		if !ok {
			aa = "X"
		}
		counts[aa] += count
	}
	return counts
}

// GC returns the G+C fraction of seq.
func GC(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	var count = 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			count++
		}
	}
	return float64(count) / float64(len(seq))
}
