// Package cli renders terminal output for the mixto command.
package cli

import (
	"fmt"
	"strings"

	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/infrastructure/reports"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorBorder  = lipgloss.Color("#282726")
	ColorTextDim = lipgloss.Color("#575653")
	ColorText    = lipgloss.Color("#FFFCF0")
	ColorAccent  = lipgloss.Color("#4F46E5")
	ColorGreen   = lipgloss.Color("#10B981")
	ColorOrange  = lipgloss.Color("#DA702C")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	moneyStyle  = lipgloss.NewStyle().Foreground(ColorGreen)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorTextDim)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorOrange)
)

const chartWidth = 30

type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title in a rounded box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)
	return border.Render(titleStyle.Render(title))
}

// RenderTable renders rows under a header line. Column widths are measured
// in terminal cells so accented labels line up.
func RenderTable(t Table) string {
	cols := len(t.Headers)
	if cols == 0 && len(t.Rows) > 0 {
		cols = len(t.Rows[0])
	}
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}
	if len(t.Headers) > 0 {
		b.WriteString(renderRow(t.Headers, widths, headerStyle) + "\n")
		sep := make([]string, cols)
		for i, w := range widths {
			sep[i] = strings.Repeat("─", w)
		}
		b.WriteString(dimStyle.Render("  "+strings.Join(sep, "─┼─")) + "\n")
	}
	for _, row := range t.Rows {
		b.WriteString(renderRow(row, widths, valueStyle) + "\n")
	}
	return b.String()
}

func renderRow(row []string, widths []int, style lipgloss.Style) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = style.Render(cell + strings.Repeat(" ", w-lipgloss.Width(cell)))
	}
	return "  " + strings.Join(cells, dimStyle.Render(" │ "))
}

// RenderDashboard prints the totals and a horizontal bar per month.
func RenderDashboard(s entities.DashboardStats) string {
	var b strings.Builder
	b.WriteString(RenderTable(Table{
		Title:   "Resumo",
		Headers: []string{"Indicador", "Valor"},
		Rows: [][]string{
			{"Clientes", fmt.Sprint(s.TotalClients)},
			{"Orçamentos", fmt.Sprint(s.TotalBudgets)},
			{"Faturamento", reports.FormatBRL(s.TotalRevenue)},
			{"Obras ativas", fmt.Sprint(s.ActiveServices)},
		},
	}))
	b.WriteString("\n  " + headerStyle.Render("Faturamento mensal") + "\n")

	peak := 0.0
	for _, m := range s.MonthlyRevenue {
		if m.Value > peak {
			peak = m.Value
		}
	}
	for _, m := range s.MonthlyRevenue {
		n := 0
		if peak > 0 {
			n = int(m.Value / peak * chartWidth)
		}
		bar := moneyStyle.Render(strings.Repeat("█", n)) + dimStyle.Render(strings.Repeat("·", chartWidth-n))
		fmt.Fprintf(&b, "  %-3s %s %s\n", m.Label, bar, reports.FormatBRL(m.Value))
	}
	return b.String()
}

// BudgetRows formats budgets for RenderTable.
func BudgetRows(rows []BudgetLine) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Budget.ID,
			r.ClientName,
			reports.FormatDate(r.Budget.Date),
			r.Budget.Status.Label(),
			reports.FormatBRL(r.Budget.TotalValue),
			fmt.Sprintf("%d%%", r.Budget.ProgressPercent()),
		})
	}
	return out
}

type BudgetLine struct {
	Budget     entities.Budget
	ClientName string
}

var BudgetHeaders = []string{"Número", "Cliente", "Data", "Status", "Valor", "Progresso"}

func Warn(msg string) string {
	return warnStyle.Render(msg)
}
