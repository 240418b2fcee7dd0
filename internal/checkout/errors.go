package checkout

import (
	"errors"
	"fmt"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/catalog"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrCancelled     = errors.New("checkout cancelled")
	ErrNotConfirming = errors.New("checkout was not started")
)

// InsufficientStockError aborts a checkout. Item names the first cart item
// that can no longer be fulfilled.
type InsufficientStockError struct {
	Item     string
	Depleted []catalog.DepletedLine
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock changed: cannot complete order for %s", e.Item)
}
