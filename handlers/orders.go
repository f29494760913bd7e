package handlers

import (
	"github.com/gofiber/fiber/v2"

	"horion-farms/api/apperr"
	"horion-farms/api/models"
)

func (s *Server) CreateOrder(c *fiber.Ctx) error {
	var req models.OrderCreate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	created, err := s.orders.Create(c.UserContext(), req)
	if err != nil {
		return err
	}

	ordersCreated.Inc()
	return c.JSON(created)
}

func (s *Server) GetOrder(c *fiber.Ctx) error {
	order, err := s.orders.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

type statusUpdate struct {
	Status           models.OrderStatus `json:"status"`
	PaymentReference string             `json:"payment_reference"`
}

// UpdateOrderStatus lets operators record the outcome of payment
// verification or fulfilment on the stored order.
func (s *Server) UpdateOrderStatus(c *fiber.Ctx) error {
	var req statusUpdate
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	order, err := s.orders.UpdateStatus(c.UserContext(), c.Params("id"), req.Status, req.PaymentReference)
	if err != nil {
		return err
	}
	return c.JSON(order)
}
