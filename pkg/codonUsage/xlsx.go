package codonUsage

import (
	"log/slog"

	math2 "github.com/liserjrqlxue/goUtil/math"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

func SetCellValue(xlsx *excelize.File, sheet string, col, row int, value interface{}) {
	simpleUtil.CheckErr(
		xlsx.SetCellValue(
			sheet,
			simpleUtil.HandleError(
				excelize.CoordinatesToCellName(col, row),
			),
			value,
		),
	)
}

func SetRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) {
	simpleUtil.CheckErr(
		xlsx.SetSheetRow(
			sheet,
			simpleUtil.HandleError(
				excelize.CoordinatesToCellName(col, row),
			),
			&value,
		),
	)
}

// WriteUsageXlsx writes one ranked codon usage sheet per genome plus a
// comparison sheet over the union of the top codon sets.
func WriteUsageXlsx(path string, infos ...*GenomeInfo) {
	var xlsx = excelize.NewFile()

	for i, info := range infos {
		var sheet = info.Name
		if i == 0 {
			simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", sheet))
		} else {
			simpleUtil.HandleError(xlsx.NewSheet(sheet))
		}
		simpleUtil.CheckErr(xlsx.SetColWidth(sheet, "A", "D", 12))

		SetRow(xlsx, sheet, 1, 1, []interface{}{"Codon", "AminoAcid", "Count", "Frequency"})
		var row = 2
		for _, cc := range TopN(info.CodonCount, len(info.CodonCount)) {
			SetRow(xlsx, sheet, 1, row, []interface{}{
				cc.Codon,
				CodonTable[cc.Codon],
				cc.Count,
				math2.DivisionInt(cc.Count, info.Stats["CountedCodonNum"]),
			})
			row++
		}
		SetCellValue(xlsx, sheet, 1, row, "Total")
		SetCellValue(xlsx, sheet, 3, row, info.Stats["CountedCodonNum"])
	}

	var comparison = "comparison"
	simpleUtil.HandleError(xlsx.NewSheet(comparison))
	var title = []interface{}{"Codon"}
	for _, info := range infos {
		title = append(title, info.Label)
	}
	SetRow(xlsx, comparison, 1, 1, title)
	for i, codon := range UnionTopCodons(infos...) {
		var line = []interface{}{codon}
		for _, info := range infos {
			line = append(line, info.CodonCount[codon])
		}
		SetRow(xlsx, comparison, 1, i+2, line)
	}

	slog.Info("save xlsx", "path", path)
	simpleUtil.CheckErr(xlsx.SaveAs(path))
}
