package entities

// Service is a catalog entry for labour sold by the company.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	Unit        string  `json:"unit"`
}

// Material is a catalog entry for supplies. Stock is informational and
// never decremented by budgets.
type Material struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Stock     float64 `json:"stock"`
	Unit      string  `json:"unit"`
}

// LineItemKind tells which catalog a line item selects from.
type LineItemKind string

const (
	LineItemKindService  LineItemKind = "service"
	LineItemKindMaterial LineItemKind = "material"
)

func (k LineItemKind) Valid() bool {
	return k == LineItemKindService || k == LineItemKindMaterial
}

const (
	ServiceNotFoundName  = "Serviço não encontrado"
	MaterialNotFoundName = "Material não encontrado"
	DefaultUnit          = "un"
)
