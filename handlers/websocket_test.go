package handlers

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horion-farms/api/events"
	"horion-farms/api/models"
	"horion-farms/api/orders"
)

func serve(t *testing.T, st *mockStore) string {
	t.Helper()

	app := newTestApp(t, st)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go app.Listener(ln)
	t.Cleanup(func() { _ = app.Shutdown() })

	return "ws://" + ln.Addr().String()
}

func TestTrackOrder_StreamsStatus(t *testing.T) {
	st := newMockStore()
	svc := orders.NewService(st, events.Nop{})
	created, err := svc.Create(context.Background(), validOrder())
	require.NoError(t, err)

	base := serve(t, st)
	conn, _, err := websocket.DefaultDialer.Dial(base+"/track?order_id="+created.OrderID, nil)
	require.NoError(t, err)
	defer conn.Close()

	var first trackingUpdate
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, created.OrderID, first.OrderID)
	assert.Equal(t, models.OrderStatusPending, first.Status)
	assert.Nil(t, first.PaymentReference)

	_, err = svc.UpdateStatus(context.Background(), created.OrderID, models.OrderStatusPaid, "HF-"+created.OrderID)
	require.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for {
		require.NoError(t, conn.SetReadDeadline(deadline))
		var update trackingUpdate
		require.NoError(t, conn.ReadJSON(&update))
		if update.Status == models.OrderStatusPaid {
			require.NotNil(t, update.PaymentReference)
			assert.Equal(t, "HF-"+created.OrderID, *update.PaymentReference)
			return
		}
	}
}

func TestTrackOrder_UnknownOrder(t *testing.T) {
	base := serve(t, newMockStore())

	conn, _, err := websocket.DefaultDialer.Dial(base+"/track?order_id=missing", nil)
	require.NoError(t, err)
	defer conn.Close()

	var msg map[string]any
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "Order not found", msg["error"])
}

func TestTrackOrder_RequiresUpgrade(t *testing.T) {
	app := newTestApp(t, newMockStore())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/track?order_id=x", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}
