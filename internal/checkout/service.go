// Package checkout turns the session cart into a placed order.
//
// A checkout runs Idle -> Confirming -> Validating -> Committed and falls back
// to Idle whenever a gate refuses. Stock is re-validated against the catalog
// at confirmation time and reserved for all lines or none.
package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/order"
)

// AcceptToken is the only answer, compared case-insensitively, that confirms
// a checkout.
const AcceptToken = "yes"

type OrderStore interface {
	Append(o *order.Order) error
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o *order.Order) error
}

type Options struct {
	Publisher EventPublisher
	Logger    *zap.Logger
	IDs       *order.IDGenerator
	Now       func() time.Time
}

type Service struct {
	catalog   *catalog.Catalog
	cart      *cart.Cart
	store     OrderStore
	publisher EventPublisher
	ids       *order.IDGenerator
	now       func() time.Time
	logger    *zap.Logger

	state State
}

func NewService(cat *catalog.Catalog, c *cart.Cart, store OrderStore, opts Options) *Service {
	s := &Service{
		catalog:   cat,
		cart:      c,
		store:     store,
		publisher: opts.Publisher,
		ids:       opts.IDs,
		now:       opts.Now,
		logger:    opts.Logger,
		state:     Idle,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.ids == nil {
		s.ids = order.NewIDGenerator(s.now)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

func (s *Service) State() State {
	return s.state
}

// Begin moves to Confirming. The caller shows the cart and asks the user to
// confirm.
func (s *Service) Begin() error {
	if s.cart.IsEmpty() {
		s.state = Idle
		return ErrEmptyCart
	}
	s.state = Confirming
	return nil
}

// Confirm completes a checkout started with Begin.
//
// A nil error means the order was placed and persisted. When the order log
// write fails the order is still returned, stock stays decremented and the
// cart is cleared; the error wraps the store failure.
func (s *Service) Confirm(ctx context.Context, answer string) (*order.Order, error) {
	if s.state != Confirming {
		return nil, ErrNotConfirming
	}
	if !strings.EqualFold(strings.TrimSpace(answer), AcceptToken) {
		s.state = Idle
		return nil, ErrCancelled
	}
	if s.cart.IsEmpty() {
		s.state = Idle
		return nil, ErrEmptyCart
	}

	s.state = Validating
	items := s.cart.Items()
	res := s.catalog.Reserve(s.cart.Lines())
	if !res.OK() {
		s.state = Idle
		stockErr := &InsufficientStockError{
			Item:     itemName(items, res.Depleted[0]),
			Depleted: res.Depleted,
		}
		s.logger.Info("checkout rejected",
			zap.String("product", stockErr.Item),
			zap.Int("requested", res.Depleted[0].Requested),
			zap.Int("available", res.Depleted[0].Available),
		)
		return nil, stockErr
	}

	s.state = Committed
	lines := make([]order.Item, 0, len(items))
	for _, it := range items {
		lines = append(lines, order.Item{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			Quantity:  it.Quantity,
		})
	}
	o := order.New(s.ids.Next(), lines, s.now())

	storeErr := s.store.Append(o)
	if storeErr != nil {
		s.logger.Error("persist order", zap.String("order_id", o.ID), zap.Error(storeErr))
	}
	s.cart.Clear()

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, o); err != nil {
			s.logger.Warn("publish OrderPlaced", zap.String("order_id", o.ID), zap.Error(err))
		}
	}

	s.logger.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int("items", len(o.Items)),
		zap.String("total", o.Total.StringFixed(2)),
	)
	s.state = Idle

	if storeErr != nil {
		return o, fmt.Errorf("save order %s: %w", o.ID, storeErr)
	}
	return o, nil
}

func itemName(items []cart.Item, d catalog.DepletedLine) string {
	for _, it := range items {
		if it.Product.ID == d.ProductID {
			return it.Product.Name
		}
	}
	return d.Name
}
