package handlers

import (
	"github.com/gofiber/fiber/v2"

	"horion-farms/api/location"
)

// ETA estimates delivery time from a hub (default Lagos) to a city.
func (s *Server) ETA(c *fiber.Ctx) error {
	eta, err := location.EstimateETA(c.Query("city"), c.Query("hub", location.DefaultHub))
	if err != nil {
		return err
	}
	return c.JSON(eta)
}

func (s *Server) Hubs(c *fiber.Ctx) error {
	return c.JSON(location.Hubs())
}
