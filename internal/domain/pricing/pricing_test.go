package pricing

import (
	"testing"

	"mixto_gestao/internal/domain/entities"
)

func TestTotal(t *testing.T) {
	cases := []struct {
		name  string
		items []entities.LineItem
		want  float64
	}{
		{name: "empty", items: nil, want: 0},
		{name: "single", items: []entities.LineItem{{CatalogID: "s1", Quantity: 3, UnitPrice: 100}}, want: 300},
		{name: "placeholder counts as zero", items: []entities.LineItem{{Quantity: 1, UnitPrice: 0}}, want: 0},
		{name: "cents do not drift", items: []entities.LineItem{
			{Quantity: 1, UnitPrice: 0.1},
			{Quantity: 1, UnitPrice: 0.2},
		}, want: 0.3},
		{name: "fractional quantity", items: []entities.LineItem{{Quantity: 2.5, UnitPrice: 45}}, want: 112.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Total(tc.items); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestBudgetTotal(t *testing.T) {
	s := []entities.LineItem{{CatalogID: "s1", Quantity: 1, UnitPrice: 2500}}
	m := []entities.LineItem{{CatalogID: "m1", Quantity: 10, UnitPrice: 45}}
	if got := BudgetTotal(s, m); got != 2950 {
		t.Fatalf("expected 2950, got %v", got)
	}
	if got := BudgetTotal(nil, nil); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
