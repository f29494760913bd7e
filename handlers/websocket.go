package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"horion-farms/api/apperr"
	"horion-farms/api/models"
)

type trackingUpdate struct {
	OrderID          string             `json:"order_id"`
	Status           models.OrderStatus `json:"status"`
	PaymentReference *string            `json:"payment_reference"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func upgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// TrackOrder streams the status of ?order_id= to the client, once on
// connect and then on every tracking interval, until the client goes away.
func (s *Server) TrackOrder(c *websocket.Conn) {
	orderID := c.Query("order_id")
	if orderID == "" {
		c.WriteJSON(fiber.Map{"error": apperr.Message(apperr.ErrOrderIDRequired)})
		return
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	interval := s.cfg.Tracking.Interval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if !s.sendTrackingUpdate(c, orderID) {
			return
		}

		select {
		case <-closed:
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) sendTrackingUpdate(c *websocket.Conn, orderID string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		msg := apperr.Message(err)
		if apperr.Kind(err) == "internal" {
			msg = "internal error"
		}
		c.WriteJSON(fiber.Map{"error": msg})
		return false
	}

	update := trackingUpdate{
		OrderID:          orderID,
		Status:           order.Status,
		PaymentReference: order.PaymentReference,
		UpdatedAt:        order.UpdatedAt,
	}
	return c.WriteJSON(update) == nil
}
