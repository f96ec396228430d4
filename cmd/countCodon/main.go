package main

import (
	"flag"
	"fmt"
	"log"

	util "CodonUsage/pkg/codonUsage"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input fasta, plain or .gz",
	)
	rc = flag.Bool(
		"rc",
		false,
		"count codons of the reverse complement strand",
	)
)

func main() {
	flag.Parse()
	if *input == "" {
		flag.PrintDefaults()
		log.Fatal("-i required!")
	}

	var records, err = util.LoadFasta(*input)
	simpleUtil.CheckErr(err)
	var seq = util.PooledSeq(records)
	if *rc {
		seq = util.ReverseComplement(seq)
	}

	var counts = util.CountCodons(seq)
	var total = len(seq) / util.CodonLength

	fmt.Printf("#records:%d\tlength:%d\tcodons:%d\tGC:%.4f\n", len(records), len(seq), total, util.GC(seq))
	fmt.Print("codon\taminoAcid\tcount\tfrequency\n")
	for _, cc := range util.TopN(counts, len(counts)) {
		var aa, ok = util.CodonTable[cc.Codon]
		if !ok {
			aa = "X"
		}
		fmt.Printf("%s\t%s\t%d\t%.6f\n", cc.Codon, aa, cc.Count, float64(cc.Count)/float64(total))
	}
}
