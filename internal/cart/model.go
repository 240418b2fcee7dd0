package cart

import (
	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/money"
)

// Item references a live catalog product; its price is read at the time the
// total is computed, not when the item was added.
type Item struct {
	Product  *catalog.Product
	Quantity int
}

func (it Item) Total() decimal.Decimal {
	return money.LineTotal(it.Product.Price, it.Quantity)
}
