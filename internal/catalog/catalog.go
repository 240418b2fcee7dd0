// Package catalog holds the product list and its stock levels.
package catalog

import (
	"errors"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/money"
)

var ErrNotFound = errors.New("product not found")

// Catalog is the authoritative product list. Products are kept in insertion
// order and handed out by pointer so that stock changes are visible to every
// holder, including cart items.
type Catalog struct {
	products []*Product
}

func New(products ...Product) *Catalog {
	c := &Catalog{products: make([]*Product, 0, len(products))}
	for _, p := range products {
		c.products = append(c.products, &p)
	}
	return c
}

// Seed returns the catalog the shop opens with.
func Seed() *Catalog {
	return New(
		Product{ID: 1, Name: "Wireless Mouse", Description: "Ergonomic mouse", Price: money.MustParse("499.00"), Stock: 10},
		Product{ID: 2, Name: "USB-C Cable", Description: "1m fast charging cable", Price: money.MustParse("199.00"), Stock: 25},
		Product{ID: 3, Name: "Bluetooth Headset", Description: "Noise-cancelling", Price: money.MustParse("1599.00"), Stock: 8},
		Product{ID: 4, Name: "Notebook", Description: "200 pages ruled", Price: money.MustParse("99.00"), Stock: 50},
		Product{ID: 5, Name: "Water Bottle", Description: "500 ml stainless", Price: money.MustParse("349.00"), Stock: 20},
	)
}

func (c *Catalog) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) FindByID(id int) (*Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// ReduceStock takes qty units out of stock. Nothing changes and false is
// returned when qty is negative or exceeds the available stock.
func (c *Catalog) ReduceStock(p *Product, qty int) bool {
	if p == nil || qty < 0 || qty > p.Stock {
		return false
	}
	p.Stock -= qty
	return true
}

func (c *Catalog) IncreaseStock(p *Product, qty int) {
	if p == nil || qty < 0 {
		return
	}
	p.Stock += qty
}

// Reserve decrements stock for every line, or for none of them. Lines for the
// same product are summed before checking; an unknown product counts as zero
// available. If anything is short the result lists the depleted products and
// the catalog is untouched.
func (c *Catalog) Reserve(lines []Line) ReserveResult {
	res := ReserveResult{}

	type locked struct {
		product   *Product
		productID int
		requested int
	}
	lockedRows := make([]locked, 0, len(lines))
	byID := make(map[int]int, len(lines))

	for _, line := range lines {
		if i, ok := byID[line.ProductID]; ok {
			lockedRows[i].requested += line.Quantity
			continue
		}
		p, _ := c.FindByID(line.ProductID)
		byID[line.ProductID] = len(lockedRows)
		lockedRows = append(lockedRows, locked{product: p, productID: line.ProductID, requested: line.Quantity})
	}

	for _, row := range lockedRows {
		available := 0
		name := ""
		if row.product != nil {
			available = row.product.Stock
			name = row.product.Name
		}
		if row.product == nil || row.requested < 0 || available < row.requested {
			res.Depleted = append(res.Depleted, DepletedLine{
				ProductID: row.productID,
				Name:      name,
				Requested: row.requested,
				Available: available,
			})
		}
	}

	if len(res.Depleted) > 0 {
		return res
	}

	for i, row := range lockedRows {
		if !c.ReduceStock(row.product, row.requested) {
			// Never partially reserve: put back what was already taken.
			for _, done := range lockedRows[:i] {
				c.IncreaseStock(done.product, done.requested)
			}
			return ReserveResult{Depleted: []DepletedLine{{
				ProductID: row.productID,
				Name:      row.product.Name,
				Requested: row.requested,
				Available: row.product.Stock,
			}}}
		}
		res.Reserved = append(res.Reserved, Line{ProductID: row.productID, Quantity: row.requested})
	}
	return res
}
