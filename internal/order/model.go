package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/money"
)

// Item is a line captured at commit time. Later catalog price or name changes
// do not affect it.
type Item struct {
	ProductID int
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

func (it Item) Total() decimal.Decimal {
	return money.LineTotal(it.Price, it.Quantity)
}

type Order struct {
	ID        string
	Items     []Item
	Total     decimal.Decimal
	CreatedAt time.Time
}

// New copies items and computes the total once.
func New(id string, items []Item, createdAt time.Time) *Order {
	snapshot := make([]Item, len(items))
	copy(snapshot, items)

	total := money.Zero
	for _, it := range snapshot {
		total = total.Add(it.Total())
	}

	return &Order{
		ID:        id,
		Items:     snapshot,
		Total:     total,
		CreatedAt: createdAt,
	}
}
