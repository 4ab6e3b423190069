package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatBRL formats an amount as Brazilian reais, e.g. R$ 1.234,56.
func FormatBRL(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}

	result := "R$ " + sb.String() + "," + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// FormatQuantity drops trailing zeros and uses a decimal comma.
func FormatQuantity(q float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(q, 'f', -1, 64), ".", ",")
}

// FormatDate renders dd/mm/yyyy, or "-" for a missing date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
