package request

import "mixto_gestao/internal/usecase"

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	Unit        string  `json:"unit"`
}

func (r ServiceRequest) ToCommand() usecase.ServiceCommand {
	return usecase.ServiceCommand{Name: r.Name, Description: r.Description, BasePrice: r.BasePrice, Unit: r.Unit}
}

type MaterialRequest struct {
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
	Stock     float64 `json:"stock"`
	Unit      string  `json:"unit"`
}

func (r MaterialRequest) ToCommand() usecase.MaterialCommand {
	return usecase.MaterialCommand{Name: r.Name, UnitPrice: r.UnitPrice, Stock: r.Stock, Unit: r.Unit}
}
