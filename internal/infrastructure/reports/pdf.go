package reports

import (
	"errors"
	"fmt"
	"strings"

	"mixto_gestao/internal/config"
	"mixto_gestao/internal/domain/entities"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	mconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ErrReportGeneration wraps any failure while rendering a document.
var ErrReportGeneration = errors.New("report generation failed")

var (
	colorBrand    = &props.Color{Red: 30, Green: 58, Blue: 138}
	colorMuted    = &props.Color{Red: 75, Green: 85, Blue: 99}
	colorServices = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorMaterial = &props.Color{Red: 16, Green: 185, Blue: 129}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorPanel    = &props.Color{Red: 249, Green: 250, Blue: 251}
	colorStripe   = &props.Color{Red: 243, Green: 244, Blue: 246}
)

// PDFFileName is the download name for a budget, e.g. orcamento_001-2026.pdf.
func PDFFileName(budgetID string) string {
	return "orcamento_" + strings.ReplaceAll(budgetID, "/", "-") + ".pdf"
}

// BudgetPDF renders the printable budget. A panic inside the renderer is
// returned as ErrReportGeneration.
func BudgetPDF(rb entities.ResolvedBudget, company config.CompanyConfig) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrReportGeneration, r)
		}
	}()

	cfg := mconfig.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(12).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addLetterhead(m, company)
	addBudgetHeader(m, rb.Budget)
	addClientBlock(m, rb.Client)
	if len(rb.ServiceItems) > 0 {
		addItemsTable(m, "SERVIÇOS", rb.ServiceItems, colorServices)
	}
	if len(rb.MaterialItems) > 0 {
		addItemsTable(m, "MATERIAIS", rb.MaterialItems, colorMaterial)
	}
	addTotals(m, rb.Budget, company.ValidityDays)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportGeneration, err)
	}
	return doc.GetBytes(), nil
}

func addLetterhead(m core.Maroto, company config.CompanyConfig) {
	centered := func(s string, size float64, style fontstyle.Type, color *props.Color) core.Row {
		return row.New(size/2 + 3).Add(
			col.New(12).Add(text.New(s, props.Text{Size: size, Style: style, Align: align.Center, Color: color})),
		)
	}

	m.AddRows(
		centered(strings.ToUpper(company.Name), 20, fontstyle.Bold, colorBrand),
		centered(strings.ToUpper(company.Tagline), 10, fontstyle.Normal, colorMuted),
		centered(company.Address, 9, fontstyle.Normal, colorMuted),
		centered("Contato: "+company.Phone, 9, fontstyle.Normal, colorMuted),
	)
	m.AddRows(row.New(6))
}

func addBudgetHeader(m core.Maroto, b entities.Budget) {
	m.AddRows(
		row.New(10).Add(
			col.New(8).Add(text.New("Orçamento #"+strings.ToUpper(b.ID), props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(4).Add(text.New("Data: "+FormatDate(b.Date), props.Text{
				Size:  10,
				Align: align.Right,
				Top:   2,
			})),
		),
	)
	m.AddRows(row.New(3))
}

func addClientBlock(m core.Maroto, c entities.Client) {
	panel := &props.Cell{BackgroundColor: colorPanel}
	label := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left, Left: 3, Top: 1}
	value := props.Text{Size: 10, Align: align.Left, Left: 3, Top: 1}

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New("CLIENTE:", label)),
			col.New(10).Add(text.New(c.Name, value)),
		).WithStyle(panel),
		row.New(7).Add(
			col.New(7).Add(text.New("CPF/CNPJ: "+orNA(c.Document), value)),
			col.New(5).Add(text.New("Tel: "+orNA(c.Phone), value)),
		).WithStyle(panel),
		row.New(7).Add(
			col.New(12).Add(text.New("Endereço: "+orNA(c.Address), value)),
		).WithStyle(panel),
	)
	m.AddRows(row.New(6))
}

func addItemsTable(m core.Maroto, title string, items []entities.ResolvedLineItem, headerColor *props.Color) {
	m.AddRows(row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Left})),
	))

	head := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Center, Color: colorWhite, Top: 1.5}
	headLeft := head
	headLeft.Align = align.Left
	headLeft.Left = 2
	headerCell := &props.Cell{BackgroundColor: headerColor}

	m.AddRows(row.New(7).Add(
		col.New(5).Add(text.New("Descrição", headLeft)).WithStyle(headerCell),
		col.New(2).Add(text.New("Quantidade", head)).WithStyle(headerCell),
		col.New(2).Add(text.New("Preço Unitário", head)).WithStyle(headerCell),
		col.New(3).Add(text.New("Subtotal", head)).WithStyle(headerCell),
	))

	body := props.Text{Size: 9, Align: align.Center, Top: 1.5}
	bodyLeft := body
	bodyLeft.Align = align.Left
	bodyLeft.Left = 2
	bodyRight := body
	bodyRight.Align = align.Right
	bodyRight.Right = 2

	for i, it := range items {
		r := row.New(7).Add(
			col.New(5).Add(text.New(it.Name, bodyLeft)),
			col.New(2).Add(text.New(FormatQuantity(it.Quantity)+" "+it.Unit, body)),
			col.New(2).Add(text.New(FormatBRL(it.UnitPrice), bodyRight)),
			col.New(3).Add(text.New(FormatBRL(it.Subtotal), bodyRight)),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		m.AddRows(r)
	}
	m.AddRows(row.New(8))
}

func addTotals(m core.Maroto, b entities.Budget, validityDays int) {
	total := props.Text{Size: 14, Style: fontstyle.Bold, Color: colorServices}
	totalLabel := total
	totalLabel.Align = align.Right
	totalValue := total
	totalValue.Align = align.Right

	m.AddRows(row.New(10).Add(
		col.New(8).Add(text.New("TOTAL GERAL:", totalLabel)),
		col.New(4).Add(text.New(FormatBRL(b.TotalValue), totalValue)),
	))
	m.AddRows(row.New(8))

	note := props.Text{Size: 10, Align: align.Left, Color: &props.Color{Red: 107, Green: 114, Blue: 128}}
	m.AddRows(
		row.New(8).Add(col.New(12).Add(text.New(fmt.Sprintf("Este orçamento tem validade de %d dias.", validityDays), note))),
		row.New(14),
		row.New(8).Add(col.New(12).Add(text.New("Assinatura do Responsável: _________________________________", note))),
	)
}
