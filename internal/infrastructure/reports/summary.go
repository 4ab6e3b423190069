package reports

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"mixto_gestao/internal/domain/entities"
)

var nonDigits = regexp.MustCompile(`\D`)

// SummaryText renders the chat-friendly budget summary. Lines whose catalog
// entry no longer exists are left out.
func SummaryText(rb entities.ResolvedBudget, companyName string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*ORÇAMENTO - %s*\n\n", strings.ToUpper(companyName))
	fmt.Fprintf(&sb, "*Cliente:* %s\n", rb.Client.Name)
	fmt.Fprintf(&sb, "*Data:* %s\n\n", FormatDate(rb.Budget.Date))
	fmt.Fprintf(&sb, "*Serviços:*\n%s\n\n", bulletList(rb.ServiceItems))
	fmt.Fprintf(&sb, "*Materiais:*\n%s\n\n", bulletList(rb.MaterialItems))
	fmt.Fprintf(&sb, "*VALOR TOTAL:* %s\n\n", FormatBRL(rb.Budget.TotalValue))
	fmt.Fprintf(&sb, "_Status: %s_\n", rb.Budget.Status.Label())
	sb.WriteString("Obrigado pela preferência!")
	return sb.String()
}

func bulletList(items []entities.ResolvedLineItem) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		if !it.Found {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s (%s %s)", it.Name, FormatQuantity(it.Quantity), it.Unit))
	}
	if len(lines) == 0 {
		return "- Nenhum"
	}
	return strings.Join(lines, "\n")
}

// DigitsOnly strips everything but 0-9 from a phone number.
func DigitsOnly(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ShareLink builds a wa.me deep link carrying text.
func ShareLink(phone, text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + DigitsOnly(phone) + "?text=" + escaped
}
