package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horion-farms/api/config"
	"horion-farms/api/models"
)

func fakePaystack(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestPaystack_Initialize(t *testing.T) {
	var got InitializeRequest
	srv := fakePaystack(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_1", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/x1","reference":"HF-1"}}`))
	})

	p := NewPaystack(srv.URL, "sk_test_1", time.Second)
	resp, err := p.Initialize(context.Background(), InitializeRequest{
		Email: "a@b.ng", Amount: 3000, Reference: "HF-1", Currency: "NGN",
	})
	require.NoError(t, err)

	assert.True(t, resp.Status)
	assert.Equal(t, "https://checkout.paystack.com/x1", resp.Data.AuthorizationURL)
	assert.Equal(t, int64(3000), got.Amount)
	assert.Equal(t, "NGN", got.Currency)
}

func TestPaystack_ExplicitFailureIsNotTransport(t *testing.T) {
	srv := fakePaystack(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
	})

	resp, err := NewPaystack(srv.URL, "bad", time.Second).Initialize(context.Background(), InitializeRequest{})
	require.NoError(t, err)
	assert.False(t, resp.Status)
	assert.Equal(t, "Invalid key", resp.Message)
}

func TestPaystack_Verify(t *testing.T) {
	srv := fakePaystack(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/HF-42", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":true,"data":{"status":"success","reference":"HF-42"}}`))
	})

	resp, err := NewPaystack(srv.URL, "sk", time.Second).Verify(context.Background(), "HF-42")
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Data.Status)
}

func TestPaystack_TransportFailures(t *testing.T) {
	html := fakePaystack(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})
	_, err := NewPaystack(html.URL, "sk", time.Second).Verify(context.Background(), "HF-1")
	assert.ErrorIs(t, err, ErrTransport)

	slow := fakePaystack(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"status":true}`))
	})
	_, err = NewPaystack(slow.URL, "sk", 50*time.Millisecond).Verify(context.Background(), "HF-1")
	assert.ErrorIs(t, err, ErrTransport)

	closed := httptest.NewServer(http.NotFoundHandler())
	closed.Close()
	_, err = NewPaystack(closed.URL, "sk", time.Second).Initialize(context.Background(), InitializeRequest{})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestOrchestrator_LiveOverHTTP(t *testing.T) {
	srv := fakePaystack(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/transaction/initialize":
			_, _ = w.Write([]byte(`{"status":true,"data":{"authorization_url":"https://checkout.paystack.com/live"}}`))
		default:
			_, _ = w.Write([]byte(`{"status":true,"data":{"status":"failed"}}`))
		}
	})

	cfg := paymentConfig()
	cfg.Mode = config.GatewayLive
	cfg.SecretKey = "sk_live"
	cfg.BaseURL = srv.URL
	cfg.Timeout = time.Second

	o := NewOrchestrator(cfg, seededStore(30, "ada@example.com"), NewGateway(cfg), nil)

	res, err := o.Init(context.Background(), orderID, models.PaymentMethodCard)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentModeLive, res.Mode)
	assert.Equal(t, "https://checkout.paystack.com/live", *res.AuthorizationURL)

	v := o.Verify(context.Background(), res.Reference)
	assert.False(t, v.Paid)
	assert.Equal(t, models.OrderStatusFailed, v.OrderStatus)
}
