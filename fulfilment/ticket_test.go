package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horion-farms/api/events"
)

func eventBody(t *testing.T, e events.Event) []byte {
	t.Helper()
	data, err := json.Marshal(e)
	require.NoError(t, err)
	return data
}

func TestPlanTicket(t *testing.T) {
	body := eventBody(t, events.Event{
		Name:    events.OrderCreated,
		OrderID: "64b7f0c2a1b2c3d4e5f60718",
		Fields:  map[string]any{"city": "Abuja", "items": 3, "total": 30.5, "currency": "NGN"},
	})

	ticket, err := planTicket(body, "Lagos")
	require.NoError(t, err)

	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", ticket.OrderID)
	assert.Equal(t, "Abuja", ticket.City)
	assert.Equal(t, 3, ticket.Items)
	assert.InDelta(t, 30.5, ticket.Total, 1e-9)
	assert.InDelta(t, 16.5, ticket.ETAHours, 1e-9)
}

func TestPlanTicket_UnknownCityHasNoETA(t *testing.T) {
	body := eventBody(t, events.Event{
		Name:    events.OrderCreated,
		OrderID: "abc",
		Fields:  map[string]any{"city": "Accra"},
	})

	ticket, err := planTicket(body, "Lagos")
	require.NoError(t, err)
	assert.Zero(t, ticket.ETAHours)
}

func TestPlanTicket_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "not json", body: []byte("HF-1")},
		{name: "wrong event", body: eventBody(t, events.Event{Name: events.PaymentVerified, OrderID: "abc"})},
		{name: "missing order id", body: eventBody(t, events.Event{Name: events.OrderCreated})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := planTicket(tt.body, "Lagos")
			assert.Error(t, err)
		})
	}
}
