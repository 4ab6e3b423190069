package repository

import "mixto_gestao/internal/domain/entities"

// Demo rows written the first time a collection key is read and missing.

func seedClients() []entities.Client {
	return []entities.Client{{
		ID:       "c1",
		Name:     "Cliente Demonstração",
		Email:    "contato@mixto.com",
		Phone:    "92988091790",
		Address:  "Av. Principal, 100",
		Document: "000.000.000-00",
	}}
}

func seedServices() []entities.Service {
	return []entities.Service{{
		ID:          "s1",
		Name:        "Reforma Geral",
		Description: "Serviços de alvenaria e acabamento",
		BasePrice:   2500,
		Unit:        "global",
	}}
}

func seedMaterials() []entities.Material {
	return []entities.Material{{
		ID:        "m1",
		Name:      "Cimento CP-II",
		UnitPrice: 45,
		Stock:     50,
		Unit:      "saco",
	}}
}
