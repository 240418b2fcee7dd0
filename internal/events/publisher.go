package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/order"
)

const publishTimeout = 3 * time.Second

// RabbitPublisher publishes OrderPlaced envelopes to the events exchange.
type RabbitPublisher struct {
	ch       *amqp.Channel
	seq      *Sequencer
	meta     EventMeta
	producer string
	now      func() time.Time
}

type PublisherOptions struct {
	Meta     EventMeta
	Producer string
}

func NewRabbitPublisher(conn *amqp.Connection, seq *Sequencer, opts PublisherOptions) (*RabbitPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareEventsExchange(ch); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare events exchange: %w", err)
	}

	producer := opts.Producer
	if producer == "" {
		producer = DefaultProducer
	}
	if seq == nil {
		seq = NewSequencer()
	}

	return &RabbitPublisher{
		ch:       ch,
		seq:      seq,
		meta:     opts.Meta,
		producer: producer,
		now:      time.Now,
	}, nil
}

func (p *RabbitPublisher) Close() error {
	return p.ch.Close()
}

func (p *RabbitPublisher) PublishOrderPlaced(ctx context.Context, o *order.Order) error {
	seq, err := p.seq.NextSequence(p.meta.PartitionKey)
	if err != nil {
		return fmt.Errorf("reserve sequence: %w", err)
	}

	env := NewOrderPlacedEvent(o, p.meta, seq, p.producer, p.now().UTC())
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal OrderPlaced envelope: %w", err)
	}

	return p.publishJSON(ctx, OrderPlacedRoutingKey, body)
}

func (p *RabbitPublisher) publishJSON(ctx context.Context, routingKey string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// NopPublisher discards events. Used when publishing is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, *order.Order) error { return nil }

func (NopPublisher) Close() error { return nil }
