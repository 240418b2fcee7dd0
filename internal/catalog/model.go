package catalog

import "github.com/shopspring/decimal"

// Product is a sellable item. ID, Name and Description never change after
// construction; Price and Stock may.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

type Line struct {
	ProductID int
	Quantity  int
}

type DepletedLine struct {
	ProductID int
	Name      string
	Requested int
	Available int
}

type ReserveResult struct {
	Reserved []Line
	Depleted []DepletedLine
}

// OK reports whether every requested line was reserved.
func (r ReserveResult) OK() bool {
	return len(r.Depleted) == 0
}
