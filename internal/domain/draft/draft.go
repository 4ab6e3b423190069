// Package draft is the editing buffer used while a budget's line items are
// being assembled, before the budget is saved.
package draft

import (
	"errors"

	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/domain/pricing"
)

var (
	ErrLineItemIndex        = errors.New("line item index out of range")
	ErrUnknownLineItemKind  = errors.New("unknown line item kind")
	ErrInvalidLineItemValue = errors.New("line item quantity and unit price must not be negative")
)

// CatalogLookup resolves the current price of a catalog entry.
// entities.Dataset satisfies it.
type CatalogLookup interface {
	CatalogPrice(kind entities.LineItemKind, id string) (float64, bool)
}

// LineItemEdit changes one line item. Nil fields are left untouched.
//
// A CatalogID different from the current one selects a new catalog entry and
// captures its price. UnitPrice, when present, is applied after that capture.
type LineItemEdit struct {
	Kind      entities.LineItemKind
	Index     int
	CatalogID *string
	Quantity  *float64
	UnitPrice *float64
}

// Draft holds the item lists of a budget under edit.
type Draft struct {
	ServiceItems  []entities.LineItem
	MaterialItems []entities.LineItem
}

func New() *Draft {
	return &Draft{
		ServiceItems:  []entities.LineItem{},
		MaterialItems: []entities.LineItem{},
	}
}

// FromBudget starts a draft from the saved item lists of b.
func FromBudget(b entities.Budget) *Draft {
	return &Draft{
		ServiceItems:  append([]entities.LineItem{}, b.ServiceItems...),
		MaterialItems: append([]entities.LineItem{}, b.MaterialItems...),
	}
}

// AddLineItem appends an unselected placeholder and returns its index.
func (d *Draft) AddLineItem(kind entities.LineItemKind) (int, error) {
	items, err := d.items(kind)
	if err != nil {
		return -1, err
	}
	*items = append(*items, entities.LineItem{CatalogID: "", Quantity: 1, UnitPrice: 0})
	return len(*items) - 1, nil
}

func (d *Draft) RemoveLineItem(kind entities.LineItemKind, index int) error {
	items, err := d.items(kind)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*items) {
		return ErrLineItemIndex
	}
	*items = append((*items)[:index], (*items)[index+1:]...)
	return nil
}

// Apply performs edit. Selecting an entry missing from the catalog keeps the
// id and the price already on the line.
func (d *Draft) Apply(edit LineItemEdit, catalog CatalogLookup) error {
	items, err := d.items(edit.Kind)
	if err != nil {
		return err
	}
	if edit.Index < 0 || edit.Index >= len(*items) {
		return ErrLineItemIndex
	}
	if (edit.Quantity != nil && *edit.Quantity < 0) || (edit.UnitPrice != nil && *edit.UnitPrice < 0) {
		return ErrInvalidLineItemValue
	}

	li := &(*items)[edit.Index]
	if edit.CatalogID != nil && *edit.CatalogID != li.CatalogID {
		li.CatalogID = *edit.CatalogID
		if catalog != nil {
			if price, ok := catalog.CatalogPrice(edit.Kind, li.CatalogID); ok {
				li.UnitPrice = price
			}
		}
	}
	if edit.Quantity != nil {
		li.Quantity = *edit.Quantity
	}
	if edit.UnitPrice != nil {
		li.UnitPrice = *edit.UnitPrice
	}
	return nil
}

// Total is the live total shown while editing.
func (d *Draft) Total() float64 {
	return pricing.BudgetTotal(d.ServiceItems, d.MaterialItems)
}

func (d *Draft) items(kind entities.LineItemKind) (*[]entities.LineItem, error) {
	switch kind {
	case entities.LineItemKindService:
		return &d.ServiceItems, nil
	case entities.LineItemKindMaterial:
		return &d.MaterialItems, nil
	default:
		return nil, ErrUnknownLineItemKind
	}
}
