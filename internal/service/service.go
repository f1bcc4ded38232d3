// Package service coordinates order writes: product-id validation happens
// before any transaction opens, the store runs the multi-statement write in
// one transaction, and the committed aggregate is re-read for the response.
package service

import (
	"context"
	"fmt"

	"demo/ordermanager/internal/apperr"
	"demo/ordermanager/internal/events"
	"demo/ordermanager/internal/logger"
	"demo/ordermanager/internal/model"
	"demo/ordermanager/internal/store"
)

// EventSink receives post-commit lifecycle notifications. Implementations
// must not fail the calling operation.
type EventSink interface {
	Publish(ctx context.Context, eventType string, orderID int64)
}

type Service struct {
	orders   store.OrderRepository
	products store.ProductRepository
	events   EventSink // nil disables publishing
	log      *logger.Logger
}

func New(orders store.OrderRepository, products store.ProductRepository, sink EventSink, log *logger.Logger) *Service {
	return &Service{orders: orders, products: products, events: sink, log: log}
}

func (s *Service) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders.List(ctx)
}

func (s *Service) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	o, ok, err := s.orders.Get(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	if !ok {
		return model.Order{}, apperr.NotFound("Order with id %d not found", id)
	}
	return o, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) CreateOrder(ctx context.Context, p model.CreateOrderParams) (model.Order, error) {
	// Reject unknown product ids before the transaction opens.
	if len(p.ProductIDs) > 0 {
		ok, err := s.products.AllExist(ctx, p.ProductIDs)
		if err != nil {
			return model.Order{}, err
		}
		if !ok {
			return model.Order{}, apperr.BadRequest("One or more product IDs are invalid")
		}
	}

	id, err := s.orders.Create(ctx, p.OrderDescription, p.ProductIDs)
	if err != nil {
		return model.Order{}, err
	}

	o, ok, err := s.orders.Get(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	if !ok {
		return model.Order{}, apperr.Internal(fmt.Errorf("order %d not readable after create", id))
	}

	s.emit(ctx, events.OrderCreated, id)
	return o, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id int64, p model.UpdateOrderParams) (model.Order, error) {
	exists, err := s.orders.Exists(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	if !exists {
		return model.Order{}, apperr.NotFound("Order with id %d not found", id)
	}

	// A provided empty list is a clear and needs no catalog lookup.
	if p.ProductIDs != nil && len(*p.ProductIDs) > 0 {
		ok, err := s.products.AllExist(ctx, *p.ProductIDs)
		if err != nil {
			return model.Order{}, err
		}
		if !ok {
			return model.Order{}, apperr.BadRequest("One or more product IDs are invalid")
		}
	}

	if err := s.orders.Update(ctx, id, p); err != nil {
		return model.Order{}, err
	}

	o, ok, err := s.orders.Get(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	if !ok {
		// Deleted by a concurrent caller between the write and the re-read.
		s.log.Warn("order removed during update", "order_id", id)
		return model.Order{}, apperr.NotFound("Order with id %d not found", id)
	}

	s.emit(ctx, events.OrderUpdated, id)
	return o, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	removed, err := s.orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("Order with id %d not found", id)
	}
	s.emit(ctx, events.OrderDeleted, id)
	return nil
}

func (s *Service) emit(ctx context.Context, eventType string, id int64) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, eventType, id)
}
