package reports

import (
	"time"

	"mixto_gestao/internal/config"
	"mixto_gestao/internal/domain/entities"
)

func sampleDataset() entities.Dataset {
	return entities.Dataset{
		Clients: []entities.Client{{ID: "c1", Name: "João Silva", Phone: "(92) 99999-1234"}},
		Services: []entities.Service{
			{ID: "s1", Name: "Pintura Residencial", BasePrice: 25, Unit: "m²"},
		},
		Materials: []entities.Material{
			{ID: "m1", Name: "Cimento CP II 50kg", UnitPrice: 45, Unit: "saco"},
		},
	}
}

func sampleBudget() entities.Budget {
	return entities.Budget{
		ID:            "001/2026",
		ClientID:      "c1",
		ServiceItems:  []entities.LineItem{{CatalogID: "s1", Quantity: 100, UnitPrice: 25}},
		MaterialItems: []entities.LineItem{{CatalogID: "m1", Quantity: 10, UnitPrice: 45}},
		TotalValue:    2950,
		Date:          time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC),
		Status:        entities.BudgetStatusAprovado,
		Description:   "Reforma da sala",
	}
}

func sampleCompany() config.CompanyConfig {
	return config.Default().Company
}
