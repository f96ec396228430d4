package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	codon "CodonUsage/pkg/codonUsage"

	"github.com/cloudflare/ahocorasick"
	"github.com/liserjrqlxue/DNA/pkg/util"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input fasta, plain or .gz",
	)
	motifList = flag.String(
		"m",
		"",
		"motif list, one [name seq] per line",
	)
)

type Motif struct {
	Name  string
	Seq   string
	RcSeq string

	// records that contain the motif on either strand
	Records int
	// total occurrences over both strands
	Count int
}

func readMotifs(path string) []Motif {
	var motifs []Motif
	for i, line := range textUtil.File2Array(path) {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		var fields = strings.Fields(line)
		if len(fields) < 2 {
			log.Printf("skip motif line %d:[%s]", i+1, line)
			continue
		}
		var m = Motif{
			Name: fields[0],
			Seq:  strings.ToUpper(fields[1]),
		}
		m.RcSeq = util.ReverseComplement(m.Seq)
		motifs = append(motifs, m)
	}
	return motifs
}

func main() {
	flag.Parse()
	if *input == "" || *motifList == "" {
		flag.PrintDefaults()
		log.Fatal("-i/-m required!")
	}

	var motifs = readMotifs(*motifList)
	if len(motifs) == 0 {
		log.Fatal("no motifs loaded!")
	}

	// patterns hold each motif and its reverse complement, in order
	var patterns = make([]string, 0, len(motifs)*2)
	for _, m := range motifs {
		patterns = append(patterns, m.Seq, m.RcSeq)
	}
	matcher := ahocorasick.NewStringMatcher(patterns)

	var records, err = codon.LoadFasta(*input)
	simpleUtil.CheckErr(err)

	for _, record := range records {
		var seen = make(map[int]bool)
		for _, hit := range matcher.Match([]byte(record.Seq)) {
			seen[hit/2] = true
		}
		for idx := range seen {
			motifs[idx].Records++
		}
		for idx := range motifs {
			var m = &motifs[idx]
			m.Count += strings.Count(record.Seq, m.Seq)
			if m.RcSeq != m.Seq {
				m.Count += strings.Count(record.Seq, m.RcSeq)
			}
		}
	}

	fmt.Printf("#records:%d\n", len(records))
	fmt.Print("motif\tseq\trcSeq\trecords\tcount\n")
	for _, m := range motifs {
		fmt.Printf("%s\t%s\t%s\t%d\t%d\n", m.Name, m.Seq, m.RcSeq, m.Records, m.Count)
	}
}
