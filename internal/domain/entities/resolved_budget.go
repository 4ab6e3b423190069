package entities

// ResolvedLineItem is a line item joined with its catalog entry for display.
type ResolvedLineItem struct {
	LineItem
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Found    bool    `json:"found"`
	Subtotal float64 `json:"subtotal"`
}

// ResolvedBudget carries everything a report needs. Missing references are
// replaced by placeholders instead of failing.
type ResolvedBudget struct {
	Budget        Budget             `json:"budget"`
	Client        Client             `json:"client"`
	ClientFound   bool               `json:"client_found"`
	ServiceItems  []ResolvedLineItem `json:"service_items"`
	MaterialItems []ResolvedLineItem `json:"material_items"`
}

// ResolveBudget joins b with the clients and catalogs in d.
func ResolveBudget(b Budget, d Dataset) ResolvedBudget {
	client, found := d.FindClient(b.ClientID)
	if !found {
		client = Client{ID: b.ClientID, Name: UnknownClientName}
	}

	out := ResolvedBudget{
		Budget:        b,
		Client:        client,
		ClientFound:   found,
		ServiceItems:  make([]ResolvedLineItem, 0, len(b.ServiceItems)),
		MaterialItems: make([]ResolvedLineItem, 0, len(b.MaterialItems)),
	}

	for _, li := range b.ServiceItems {
		r := ResolvedLineItem{LineItem: li, Name: ServiceNotFoundName, Unit: DefaultUnit, Subtotal: li.Subtotal()}
		if s, ok := d.FindService(li.CatalogID); ok {
			r.Name, r.Found = s.Name, true
			if s.Unit != "" {
				r.Unit = s.Unit
			}
		}
		out.ServiceItems = append(out.ServiceItems, r)
	}
	for _, li := range b.MaterialItems {
		r := ResolvedLineItem{LineItem: li, Name: MaterialNotFoundName, Unit: DefaultUnit, Subtotal: li.Subtotal()}
		if m, ok := d.FindMaterial(li.CatalogID); ok {
			r.Name, r.Found = m.Name, true
			if m.Unit != "" {
				r.Unit = m.Unit
			}
		}
		out.MaterialItems = append(out.MaterialItems, r)
	}
	return out
}
