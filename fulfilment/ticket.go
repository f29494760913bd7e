package main

import (
	"encoding/json"
	"fmt"

	"horion-farms/api/events"
	"horion-farms/api/location"
)

// Ticket is the packing instruction produced for a newly created order.
type Ticket struct {
	OrderID   string  `json:"order_id"`
	City      string  `json:"city"`
	Hub       string  `json:"hub"`
	Items     int     `json:"items"`
	Total     float64 `json:"total"`
	ETAHours  float64 `json:"eta_hours"`
	ColdChain bool    `json:"cold_chain"`
}

// planTicket decodes an order_created event and routes it through hub.
// Orders for cities outside the delivery table still get a ticket, without
// an ETA, so they can be handled by hand.
func planTicket(body []byte, hub string) (Ticket, error) {
	var e events.Event
	if err := json.Unmarshal(body, &e); err != nil {
		return Ticket{}, fmt.Errorf("decode event: %w", err)
	}
	if e.Name != events.OrderCreated {
		return Ticket{}, fmt.Errorf("unexpected event %q", e.Name)
	}
	if e.OrderID == "" {
		return Ticket{}, fmt.Errorf("event without order_id")
	}

	t := Ticket{OrderID: e.OrderID, Hub: hub}
	if city, ok := e.Fields["city"].(string); ok {
		t.City = city
	}
	if items, ok := e.Fields["items"].(float64); ok {
		t.Items = int(items)
	}
	if total, ok := e.Fields["total"].(float64); ok {
		t.Total = total
	}

	if eta, err := location.EstimateETA(t.City, hub); err == nil {
		t.ETAHours = eta.ETAHours
		t.ColdChain = eta.ColdChain
	}
	return t, nil
}
