package pos

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"phonemechanic-system/internal/catalog"
)

type ItemField string

const (
	FieldName     ItemField = "name"
	FieldPrice    ItemField = "price"
	FieldQuantity ItemField = "quantity"
)

// Cart holds the mutable line-item list for an in-progress order. It always
// contains at least one row while being edited, even if that row is empty.
// Totals are never cached here; they are recomputed by Calculate on demand.
type Cart struct {
	items []OrderItem
}

func NewCart() *Cart {
	c := &Cart{}
	c.Reset()
	return c
}

func blankItem() OrderItem {
	return OrderItem{
		ID:        uuid.NewString(),
		UnitPrice: decimal.Zero,
		Quantity:  1,
	}
}

// Reset restores the single empty placeholder row.
func (c *Cart) Reset() {
	c.items = []OrderItem{blankItem()}
}

func (c *Cart) AddBlank() {
	c.items = append(c.items, blankItem())
}

// AddFromCatalog appends one line per selected service, pricing each from
// the first numeric token of its display price. If the cart is exactly one
// untouched placeholder, bulk add replaces it rather than appending.
func (c *Cart) AddFromCatalog(services []catalog.Service) {
	if len(services) == 0 {
		return
	}

	if len(c.items) == 1 && c.items[0].Name == "" && c.items[0].UnitPrice.IsZero() {
		c.items = c.items[:0]
	}

	for _, svc := range services {
		c.items = append(c.items, OrderItem{
			ID:        uuid.NewString(),
			Name:      svc.Name,
			UnitPrice: catalog.ParsePrice(svc.Price),
			Quantity:  1,
		})
	}
}

// RemoveAt deletes the row at index. Removing the last remaining row is a
// no-op: the cart keeps at least one row while open.
func (c *Cart) RemoveAt(index int) bool {
	if index < 0 || index >= len(c.items) || len(c.items) <= 1 {
		return false
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return true
}

// UpdateField replaces a single field of one row. Numeric fields parse
// leniently: an unparseable price is 0, an unparseable or sub-1 quantity
// is 1. Nothing derived is recomputed here.
func (c *Cart) UpdateField(index int, field ItemField, value string) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}

	switch field {
	case FieldName:
		c.items[index].Name = value
	case FieldPrice:
		c.items[index].UnitPrice = ParseAmount(value)
	case FieldQuantity:
		qty, err := strconv.Atoi(value)
		if err != nil || qty < 1 {
			qty = 1
		}
		c.items[index].Quantity = qty
	default:
		return false
	}
	return true
}

// Items returns a copy of the current rows; callers cannot mutate the cart
// through it.
func (c *Cart) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Len() int {
	return len(c.items)
}
