package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Horion Farms API running"})
}

type diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics reports Data Store connectivity. It never returns an error;
// failures are described in the body.
func (s *Server) Diagnostics(c *fiber.Ctx) error {
	resp := diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				resp.Database = "❌ Error: " + truncate(fmt.Sprint(r), 80)
			}
		}()
		s.probeStore(c.UserContext(), &resp)
	}()

	return c.JSON(resp)
}

func (s *Server) probeStore(ctx context.Context, resp *diagnostics) {
	if s.store == nil {
		resp.Database = "⚠️  Available but not initialized"
		return
	}

	resp.Database = "✅ Available"
	urlState := "❌ Not Set"
	if s.cfg.Database.URL != "" {
		urlState = "✅ Set"
	}
	name := s.cfg.Database.Name
	if name == "" {
		name = "❌ Not Set"
	}
	resp.DatabaseURL = &urlState
	resp.DatabaseName = &name

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collections, err := s.store.ListCollectionNames(ctx)
	if err != nil {
		resp.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 80)
		return
	}
	if len(collections) > 10 {
		collections = collections[:10]
	}
	if collections != nil {
		resp.Collections = collections
	}
	resp.Database = "✅ Connected & Working"
	resp.ConnectionStatus = "Connected"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
