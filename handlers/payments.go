package handlers

import (
	"github.com/gofiber/fiber/v2"

	"horion-farms/api/apperr"
	"horion-farms/api/models"
)

func (s *Server) InitPayment(c *fiber.Ctx) error {
	var req models.PaymentInitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	res, err := s.payments.Init(c.UserContext(), req.OrderID, req.PaymentMethod)
	if err != nil {
		return err
	}

	paymentsInitialized.WithLabelValues(string(res.Mode)).Inc()
	return c.JSON(res)
}

// VerifyPayment always answers 200; the outcome is in the body.
func (s *Server) VerifyPayment(c *fiber.Ctx) error {
	res := s.payments.Verify(c.UserContext(), c.Query("reference"))
	paymentsVerified.WithLabelValues(string(res.Status)).Inc()
	return c.JSON(res)
}
