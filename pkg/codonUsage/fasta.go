package codonUsage

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	gzip "github.com/klauspost/pgzip"
)

// regexp
var (
	gz = regexp.MustCompile(`\.gz$`)
)

// Record is one FASTA record: the header line without the leading '>' and
// the uppercased sequence with line breaks removed.
type Record struct {
	Name string
	Seq  string
}

// LoadFasta reads all records from a FASTA file, plain or gzip compressed.
// Sequence lines are uppercased and concatenated in file order. Sequence
// data before the first header is kept as a record with an empty Name.
func LoadFasta(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var scanner *bufio.Scanner
	if gz.MatchString(path) {
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		defer gzReader.Close()
		scanner = bufio.NewScanner(gzReader)
	} else {
		scanner = bufio.NewScanner(file)
	}

	var records []Record
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			records = append(records, Record{Name: strings.TrimPrefix(line, ">")})
			continue
		}
		if len(records) == 0 {
			records = append(records, Record{})
		}
		records[len(records)-1].Seq += strings.ToUpper(line)
	}
	return records, scanner.Err()
}

// PooledSeq concatenates all record sequences into one analysis sequence.
// Influenza segments are downloaded as separate records and analyzed pooled.
func PooledSeq(records []Record) string {
	var sb strings.Builder
	for _, record := range records {
		sb.WriteString(record.Seq)
	}
	return sb.String()
}
