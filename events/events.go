// Package events publishes order and payment lifecycle events.
//
// Publishing is best-effort: callers log failures and carry on.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

const (
	OrderCreated       = "order_created"
	OrderStatusChanged = "order_status_changed"
	PaymentInitialized = "payment_initialized"
	PaymentVerified    = "payment_verified"
)

type Event struct {
	Name      string         `json:"event"`
	OrderID   string         `json:"order_id,omitempty"`
	Reference string         `json:"reference,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
	Timestamp int64          `json:"timestamp"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

func encode(e Event) ([]byte, error) {
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().Unix()
	}
	return json.Marshal(e)
}

// Nop discards events.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Close() error {
	var errs []error
	for _, p := range m {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
