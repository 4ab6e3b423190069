package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// BudgetSequences holds the last sequence number handed out per calendar year.
type BudgetSequences map[int]int

func (s BudgetSequences) Clone() BudgetSequences {
	out := make(BudgetSequences, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// FormatBudgetID renders the visible NNN/YYYY id.
func FormatBudgetID(seq, year int) string {
	return fmt.Sprintf("%03d/%d", seq, year)
}

// ParseBudgetID splits an NNN/YYYY id. ok is false for anything else.
func ParseBudgetID(id string) (seq, year int, ok bool) {
	parts := strings.Split(strings.TrimSpace(id), "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	seq, err := strconv.Atoi(parts[0])
	if err != nil || seq <= 0 {
		return 0, 0, false
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil || year <= 0 {
		return 0, 0, false
	}
	return seq, year, true
}

// NextBudgetSequence returns the next sequence for year.
//
// The persisted counter is authoritative, but it never goes below the highest
// sequence already stored for that year, so data written before the counter
// existed cannot produce a duplicate id.
func NextBudgetSequence(budgets []Budget, seqs BudgetSequences, year int) int {
	last := seqs[year]
	for _, b := range budgets {
		if s, y, ok := ParseBudgetID(b.ID); ok && y == year && s > last {
			last = s
		}
	}
	return last + 1
}
