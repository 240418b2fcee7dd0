// Package console drives the interactive shop menu over a pair of streams.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/checkout"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/money"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/order"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/orderlog"
)

type Checkout interface {
	Begin() error
	Confirm(ctx context.Context, answer string) (*order.Order, error)
}

type History interface {
	Path() string
	ReadAll() ([]string, error)
}

type Controller struct {
	catalog  *catalog.Catalog
	cart     *cart.Cart
	checkout Checkout
	history  History
	prompt   *Prompter
	out      io.Writer
	logger   *zap.Logger
}

type Deps struct {
	Catalog  *catalog.Catalog
	Cart     *cart.Cart
	Checkout Checkout
	History  History
	Logger   *zap.Logger
}

func NewController(deps Deps, in io.Reader, out io.Writer) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		catalog:  deps.Catalog,
		cart:     deps.Cart,
		checkout: deps.Checkout,
		history:  deps.History,
		prompt:   NewPrompter(in, out),
		out:      out,
		logger:   logger,
	}
}

// Run shows the menu until the user exits, the input ends or ctx is done.
// End of input is treated like the exit command.
func (c *Controller) Run(ctx context.Context) error {
	c.println("=== Welcome to Mini E-Commerce ===")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()
		choice, err := c.prompt.ReadInt("Choose option: ")
		if err == nil {
			var exit bool
			exit, err = c.dispatch(ctx, choice)
			if exit {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			c.println()
			c.println("Thank you for visiting. Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Controller) dispatch(ctx context.Context, choice int) (exit bool, err error) {
	switch choice {
	case 1:
		c.browseProducts()
	case 2:
		err = c.addToCart()
	case 3:
		c.viewCart()
	case 4:
		err = c.removeFromCart()
	case 5:
		err = c.checkoutCart(ctx)
	case 6:
		c.viewOrders()
	case 0:
		c.println("Thank you for visiting. Goodbye!")
		return true, nil
	default:
		c.println("Invalid option. Try again.")
	}
	return false, err
}

func (c *Controller) printMenu() {
	c.println()
	c.println("Main Menu:")
	c.println("1. Browse products")
	c.println("2. Add product to cart")
	c.println("3. View cart")
	c.println("4. Remove item from cart")
	c.println("5. Checkout")
	c.println("6. View past orders (" + c.history.Path() + ")")
	c.println("0. Exit")
}

func (c *Controller) browseProducts() {
	c.println()
	c.println("Available Products:")
	for _, p := range c.catalog.Products() {
		c.printf("[%d] %s - %s (stock: %d) - %s\n", p.ID, p.Name, money.Format(p.Price), p.Stock, p.Description)
	}
}

func (c *Controller) addToCart() error {
	c.browseProducts()
	id, err := c.prompt.ReadInt("Enter product id to add: ")
	if err != nil {
		return err
	}
	p, err := c.catalog.FindByID(id)
	if errors.Is(err, catalog.ErrNotFound) {
		c.println("Product not found.")
		return nil
	}
	c.printf("Selected: %s (stock: %d)\n", p.Name, p.Stock)

	qty, err := c.prompt.ReadInt("Enter quantity: ")
	if err != nil {
		return err
	}
	if qty <= 0 {
		c.println("Quantity must be >= 1")
		return nil
	}
	// Only the requested quantity is checked here; checkout re-validates the
	// accumulated cart quantity.
	if qty > p.Stock {
		c.printf("Not enough stock. Available: %d\n", p.Stock)
		return nil
	}
	if err := c.cart.Add(p, qty); err != nil {
		c.println(err.Error())
		return nil
	}
	c.printf("%d x %s added to cart.\n", qty, p.Name)
	return nil
}

func (c *Controller) viewCart() {
	c.println()
	c.println("Your Cart:")
	if c.cart.IsEmpty() {
		c.println("Cart is empty.")
		return
	}
	for i, it := range c.cart.Items() {
		c.printf("%d. %s x %d = %s\n", i+1, it.Product.Name, it.Quantity, money.Format(it.Total()))
	}
	c.printf("Cart Total: %s\n", money.Format(c.cart.Total()))
}

func (c *Controller) removeFromCart() error {
	if c.cart.IsEmpty() {
		c.println("Cart is empty.")
		return nil
	}
	c.viewCart()
	pos, err := c.prompt.ReadInt("Enter item number to remove (1..): ")
	if err != nil {
		return err
	}
	removed, err := c.cart.RemoveAt(pos)
	if errors.Is(err, cart.ErrInvalidPosition) {
		c.println("Invalid item number.")
		return nil
	}
	c.println("Removed: " + removed.Product.Name)
	return nil
}

func (c *Controller) checkoutCart(ctx context.Context) error {
	if err := c.checkout.Begin(); errors.Is(err, checkout.ErrEmptyCart) {
		c.println("Cart is empty. Nothing to checkout.")
		return nil
	}
	c.println()
	c.println("Checkout Summary:")
	c.viewCart()

	answer, err := c.prompt.ReadLine("Confirm checkout? (yes/no): ")
	if err != nil {
		return err
	}

	o, err := c.checkout.Confirm(ctx, answer)
	var stockErr *checkout.InsufficientStockError
	switch {
	case errors.Is(err, checkout.ErrCancelled):
		c.println("Checkout cancelled.")
		return nil
	case errors.As(err, &stockErr):
		c.println("Stock changed. Cannot complete order for " + stockErr.Item)
		return nil
	case errors.Is(err, checkout.ErrEmptyCart):
		c.println("Cart is empty. Nothing to checkout.")
		return nil
	case o == nil && err != nil:
		c.logger.Error("checkout", zap.Error(err))
		c.println("Checkout failed: " + err.Error())
		return nil
	case err != nil:
		c.println("Failed to save order: " + causeOf(err))
	}

	c.println("Order placed successfully! Order ID: " + o.ID)
	return nil
}

func (c *Controller) viewOrders() {
	c.println()
	c.printf("Past Orders (from %s):\n", c.history.Path())

	lines, err := c.history.ReadAll()
	if errors.Is(err, orderlog.ErrNoHistory) {
		c.println("No orders yet.")
		return
	}
	if err != nil {
		c.logger.Warn("read order history", zap.Error(err))
		c.println("Unable to read orders file: " + causeOf(err))
		return
	}
	for _, line := range lines {
		c.println(line)
	}
}

// causeOf reports the underlying I/O failure of an order log error.
func causeOf(err error) string {
	var perr *orderlog.PersistenceError
	if errors.As(err, &perr) {
		return perr.Err.Error()
	}
	return err.Error()
}

func (c *Controller) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Controller) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
