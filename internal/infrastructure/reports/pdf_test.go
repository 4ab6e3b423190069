package reports

import (
	"bytes"
	"testing"

	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

func TestBudgetPDF(t *testing.T) {
	t.Run("full budget", func(t *testing.T) {
		rb := entities.ResolveBudget(sampleBudget(), sampleDataset())
		out, err := BudgetPDF(rb, sampleCompany())
		if err != nil {
			t.Fatalf("BudgetPDF() error = %v", err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF")) {
			t.Fatalf("expected a PDF document, got %d bytes", len(out))
		}
	})

	t.Run("no items and unknown client", func(t *testing.T) {
		b := sampleBudget()
		b.ClientID = ""
		b.ServiceItems = nil
		b.MaterialItems = nil
		b.TotalValue = 0
		rb := entities.ResolveBudget(b, entities.Dataset{})
		out, err := BudgetPDF(rb, sampleCompany())
		if err != nil {
			t.Fatalf("BudgetPDF() error = %v", err)
		}
		if len(out) == 0 {
			t.Fatal("expected non-empty output")
		}
	})
}

func TestPDFFileName(t *testing.T) {
	if got := PDFFileName("001/2026"); got != "orcamento_001-2026.pdf" {
		t.Fatalf("unexpected file name %q", got)
	}
}

func TestBudgetsSpreadsheet(t *testing.T) {
	rows := []interfaces.BudgetRow{
		{Budget: sampleBudget(), ClientName: "João Silva"},
		{Budget: entities.Budget{ID: "002/2026", Status: entities.BudgetStatusPendente, Description: "=HYPERLINK()"}, ClientName: "Maria"},
	}

	out, err := BudgetsSpreadsheet(rows, "Mixto")
	if err != nil {
		t.Fatalf("BudgetsSpreadsheet() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("result is not a workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != budgetsSheet {
		t.Fatalf("unexpected sheets %v", sheets)
	}
	if v, _ := f.GetCellValue(budgetsSheet, "A4"); v != "001/2026" {
		t.Fatalf("expected 001/2026 in A4, got %q", v)
	}
	if v, _ := f.GetCellValue(budgetsSheet, "B4"); v != "João Silva" {
		t.Fatalf("expected client name in B4, got %q", v)
	}
	if v, _ := f.GetCellValue(budgetsSheet, "D5"); v != "Pendente" {
		t.Fatalf("expected Pendente in D5, got %q", v)
	}
	if v, _ := f.GetCellValue(budgetsSheet, "G5"); v != "'=HYPERLINK()" {
		t.Fatalf("expected sanitized description, got %q", v)
	}
}

func TestRenderer(t *testing.T) {
	r := NewRenderer(sampleCompany())
	rb := entities.ResolveBudget(sampleBudget(), sampleDataset())

	summary := r.SummaryText(rb)
	if !bytes.Contains([]byte(summary), []byte("MIXTO DE TUDO")) {
		t.Fatalf("expected company name in summary, got %q", summary)
	}
	link := r.ShareLink(rb.Client.Phone, summary)
	if !bytes.HasPrefix([]byte(link), []byte("https://wa.me/92999991234?text=")) {
		t.Fatalf("unexpected link %q", link)
	}
}
