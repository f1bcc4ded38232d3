// Package events publishes order-lifecycle events to Kafka. Publishing is
// post-commit and fire-and-forget: a broker outage must never fail or roll
// back the HTTP request that triggered the event.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"demo/ordermanager/internal/logger"
)

const (
	OrderCreated = "order.created"
	OrderUpdated = "order.updated"
	OrderDeleted = "order.deleted"
)

type Event struct {
	Type    string    `json:"type"`
	OrderID int64     `json:"order_id"`
	At      time.Time `json:"at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Publisher struct {
	w   messageWriter
	log *logger.Logger
}

func NewPublisher(brokers []string, topic string, log *logger.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
	return &Publisher{w: w, log: log}
}

// Publish emits one event keyed by order id. Errors are logged and
// swallowed.
func (p *Publisher) Publish(ctx context.Context, eventType string, orderID int64) {
	val, err := json.Marshal(Event{Type: eventType, OrderID: orderID, At: time.Now().UTC()})
	if err != nil {
		p.log.Error("marshal event", "type", eventType, "order_id", orderID, "error", err)
		return
	}
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(orderID, 10)),
		Value: val,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
	if err != nil {
		p.log.Error("publish event", "type", eventType, "order_id", orderID, "error", err)
		return
	}
	p.log.Debug("published event", "type", eventType, "order_id", orderID)
}

func (p *Publisher) Close() error {
	if c, ok := p.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
