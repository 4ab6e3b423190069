package entities

// Collection names one independently persisted document.
type Collection string

const (
	CollectionClients         Collection = "clients"
	CollectionServices        Collection = "services"
	CollectionMaterials       Collection = "materials"
	CollectionBudgets         Collection = "budgets"
	CollectionBudgetSequences Collection = "budget_sequences"
)

func Collections() []Collection {
	return []Collection{
		CollectionClients,
		CollectionServices,
		CollectionMaterials,
		CollectionBudgets,
		CollectionBudgetSequences,
	}
}

// Dataset is the whole application state: four collections plus the
// per-year budget counter.
type Dataset struct {
	Clients   []Client
	Services  []Service
	Materials []Material
	Budgets   []Budget
	Sequences BudgetSequences
}

func (d Dataset) Clone() Dataset {
	out := Dataset{
		Clients:   append([]Client(nil), d.Clients...),
		Services:  append([]Service(nil), d.Services...),
		Materials: append([]Material(nil), d.Materials...),
		Budgets:   make([]Budget, len(d.Budgets)),
		Sequences: d.Sequences.Clone(),
	}
	for i, b := range d.Budgets {
		out.Budgets[i] = b.Clone()
	}
	return out
}

func (d Dataset) FindClient(id string) (Client, bool) {
	for _, c := range d.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

func (d Dataset) FindService(id string) (Service, bool) {
	for _, s := range d.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

func (d Dataset) FindMaterial(id string) (Material, bool) {
	for _, m := range d.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}

// BudgetIndex returns the position of the budget or -1.
func (d Dataset) BudgetIndex(id string) int {
	for i, b := range d.Budgets {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// CatalogPrice is the current price of a catalog entry.
func (d Dataset) CatalogPrice(kind LineItemKind, id string) (float64, bool) {
	if kind == LineItemKindMaterial {
		m, ok := d.FindMaterial(id)
		return m.UnitPrice, ok
	}
	s, ok := d.FindService(id)
	return s.BasePrice, ok
}
