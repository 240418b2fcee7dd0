package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/order"
)

const (
	OrderPlacedEventName    = "OrderPlaced"
	OrderPlacedEventVersion = 1
	orderPlacedSchema       = "contracts/events/order/OrderPlaced.v1.payload.schema.json"
)

type OrderPlacedPayload struct {
	OrderID     string          `json:"orderId"`
	Items       []OrderLine     `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Timestamp   time.Time       `json:"timestamp"`
}

type OrderLine struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderPlacedEnvelope = EventEnvelope[OrderPlacedPayload]

// EventMeta carries the session context stamped on every event.
type EventMeta struct {
	CorrelationID string
	PartitionKey  string
}

func NewOrderPlacedEvent(o *order.Order, meta EventMeta, seq int64, producer string, occurredAt time.Time) OrderPlacedEnvelope {
	items := make([]OrderLine, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return OrderPlacedEnvelope{
		EventName:     OrderPlacedEventName,
		EventVersion:  OrderPlacedEventVersion,
		EventID:       uuid.NewString(),
		CorrelationID: meta.CorrelationID,
		Producer:      producer,
		PartitionKey:  meta.PartitionKey,
		Sequence:      seq,
		OccurredAt:    occurredAt,
		Schema:        orderPlacedSchema,
		Payload: OrderPlacedPayload{
			OrderID:     o.ID,
			Items:       items,
			TotalAmount: o.Total,
			Timestamp:   o.CreatedAt,
		},
	}
}
