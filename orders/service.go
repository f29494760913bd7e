package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"horion-farms/api/apperr"
	"horion-farms/api/events"
	"horion-farms/api/models"
	"horion-farms/api/store"
)

type Service struct {
	store     store.Store
	publisher events.Publisher
	now       func() time.Time
}

// NewService returns an order service. A nil store makes every operation
// fail with apperr.ErrStorageUnavailable.
func NewService(st store.Store, pub events.Publisher) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{store: st, publisher: pub, now: time.Now}
}

// Create validates c and persists it as a pending order.
func (s *Service) Create(ctx context.Context, c models.OrderCreate) (models.OrderCreated, error) {
	if s.store == nil {
		return models.OrderCreated{}, apperr.ErrStorageUnavailable
	}
	if err := Validate(c); err != nil {
		return models.OrderCreated{}, err
	}

	now := s.now().UTC()
	order := models.Order{
		Items:       c.Items,
		Customer:    c.Customer,
		Subtotal:    c.Subtotal,
		DeliveryFee: c.DeliveryFee,
		Total:       c.Total,
		Currency:    models.DefaultCurrency,
		Status:      models.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.store.Insert(ctx, models.OrderCollection, order)
	if err != nil {
		return models.OrderCreated{}, fmt.Errorf("persist order: %w", err)
	}

	s.publish(ctx, events.Event{
		Name:    events.OrderCreated,
		OrderID: id,
		Fields: map[string]any{
			"total":    order.Total,
			"currency": order.Currency,
			"city":     order.Customer.City,
			"items":    len(order.Items),
		},
	})

	return models.OrderCreated{OrderID: id, Status: models.OrderStatusPending}, nil
}

func (s *Service) Get(ctx context.Context, id string) (models.Order, error) {
	if s.store == nil {
		return models.Order{}, apperr.ErrStorageUnavailable
	}
	var order models.Order
	if err := s.store.FindOne(ctx, models.OrderCollection, id, &order); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Order{}, apperr.ErrOrderNotFound
		}
		return models.Order{}, fmt.Errorf("load order %s: %w", id, err)
	}
	order.ID = id
	return order, nil
}

// UpdateStatus sets the order status, and the payment reference when one
// is given.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, reference string) (models.Order, error) {
	if s.store == nil {
		return models.Order{}, apperr.ErrStorageUnavailable
	}
	if !status.Valid() {
		return models.Order{}, apperr.Validation(fmt.Sprintf("unknown order status %q", status))
	}

	fields := map[string]any{
		"status":     status,
		"updated_at": s.now().UTC(),
	}
	if reference != "" {
		fields["payment_reference"] = reference
	}

	if err := s.store.UpdateFields(ctx, models.OrderCollection, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Order{}, apperr.ErrOrderNotFound
		}
		return models.Order{}, fmt.Errorf("update order %s: %w", id, err)
	}

	s.publish(ctx, events.Event{
		Name:      events.OrderStatusChanged,
		OrderID:   id,
		Reference: reference,
		Fields:    map[string]any{"status": status},
	})
	return s.Get(ctx, id)
}

func (s *Service) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		slog.Warn("event publish failed", "event", e.Name, "order_id", e.OrderID, "err", err)
	}
}
