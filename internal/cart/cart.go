// Package cart accumulates the products a shopper intends to buy before
// checkout. Stock is not checked here; checkout re-validates against the
// catalog.
package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/money"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be >= 1")
	ErrNilProduct      = errors.New("product is required")
	ErrInvalidPosition = errors.New("invalid item number")
)

// Cart keeps at most one item per product id, in the order products were
// first added.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{items: []Item{}}
}

// Add merges qty into the existing item for p, or appends a new item.
func (c *Cart) Add(p *catalog.Product, qty int) error {
	if p == nil {
		return ErrNilProduct
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += qty
			return nil
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: qty})
	return nil
}

// Remove deletes the item for productID. Removing an absent product is a no-op.
func (c *Cart) Remove(productID int) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// RemoveAt removes the item at the 1-based position shown to the user and
// returns it.
func (c *Cart) RemoveAt(position int) (Item, error) {
	if position < 1 || position > len(c.items) {
		return Item{}, ErrInvalidPosition
	}
	it := c.items[position-1]
	c.Remove(it.Product.ID)
	return it, nil
}

func (c *Cart) Total() decimal.Decimal {
	total := money.Zero
	for _, it := range c.items {
		total = total.Add(it.Total())
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Clear() {
	c.items = c.items[:0]
}

// Items returns a copy of the items in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Lines returns the requested quantities keyed by product for a stock
// reservation.
func (c *Cart) Lines() []catalog.Line {
	lines := make([]catalog.Line, 0, len(c.items))
	for _, it := range c.items {
		lines = append(lines, catalog.Line{ProductID: it.Product.ID, Quantity: it.Quantity})
	}
	return lines
}
