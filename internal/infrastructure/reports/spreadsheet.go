package reports

import (
	"bytes"
	"fmt"

	"mixto_gestao/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const budgetsSheet = "Orçamentos"

var budgetColumns = []string{"A", "B", "C", "D", "E", "F", "G"}

// BudgetsSpreadsheet renders one row per budget with a total line at the end.
// Monetary cells hold numbers so the sheet can be summed.
func BudgetsSpreadsheet(rows []interfaces.BudgetRow, companyName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), budgetsSheet); err != nil {
		return nil, fmt.Errorf("%w: set sheet name: %v", ErrReportGeneration, err)
	}

	widths := []float64{12, 32, 12, 16, 16, 12, 40}
	for i, c := range budgetColumns {
		if err := f.SetColWidth(budgetsSheet, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("%w: set col width %s: %v", ErrReportGeneration, c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("%w: title style: %v", ErrReportGeneration, err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F46E5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: header style: %v", ErrReportGeneration, err)
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("%w: body style: %v", ErrReportGeneration, err)
	}
	moneyFmt := `"R$" #,##0.00`
	moneyStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: money style: %v", ErrReportGeneration, err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: total style: %v", ErrReportGeneration, err)
	}

	lastCol := budgetColumns[len(budgetColumns)-1]
	if err := f.MergeCell(budgetsSheet, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("%w: merge title: %v", ErrReportGeneration, err)
	}
	f.SetCellValue(budgetsSheet, "A1", sanitizeExcelCell(companyName)+" - Orçamentos")
	f.SetCellStyle(budgetsSheet, "A1", lastCol+"1", titleStyle)

	headers := []string{"Número", "Cliente", "Data", "Status", "Valor Total", "Progresso", "Descrição"}
	for i, h := range headers {
		f.SetCellValue(budgetsSheet, budgetColumns[i]+"3", h)
	}
	f.SetCellStyle(budgetsSheet, "A3", lastCol+"3", headerStyle)

	line := 4
	for _, r := range rows {
		n := fmt.Sprint(line)
		b := r.Budget
		f.SetCellValue(budgetsSheet, "A"+n, b.ID)
		f.SetCellValue(budgetsSheet, "B"+n, sanitizeExcelCell(r.ClientName))
		f.SetCellValue(budgetsSheet, "C"+n, FormatDate(b.Date))
		f.SetCellValue(budgetsSheet, "D"+n, b.Status.Label())
		f.SetCellValue(budgetsSheet, "E"+n, b.TotalValue)
		f.SetCellValue(budgetsSheet, "F"+n, fmt.Sprintf("%d%%", b.ProgressPercent()))
		f.SetCellValue(budgetsSheet, "G"+n, sanitizeExcelCell(b.Description))
		f.SetCellStyle(budgetsSheet, "A"+n, lastCol+n, bodyStyle)
		f.SetCellStyle(budgetsSheet, "E"+n, "E"+n, moneyStyle)
		line++
	}

	if len(rows) > 0 {
		n := fmt.Sprint(line + 1)
		f.SetCellValue(budgetsSheet, "D"+n, "Total")
		f.SetCellFormula(budgetsSheet, "E"+n, fmt.Sprintf("SUM(E4:E%d)", line-1))
		f.SetCellStyle(budgetsSheet, "D"+n, "E"+n, totalStyle)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: write workbook: %v", ErrReportGeneration, err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prefixes a quote on values a spreadsheet would read as a
// formula.
func sanitizeExcelCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#D1D5DB", Style: 1}
	}
	return borders
}
