package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DATABASE_URL", "DATABASE_NAME", "PAYSTACK_SECRET_KEY",
		"PAYSTACK_BASE_URL", "PAYSTACK_TIMEOUT", "PAYMENT_FALLBACK_ON_TRANSPORT_ERROR",
		"KAFKA_BROKERS", "RABBITMQ_URL", "JWT_SECRET_KEY", "TRACK_INTERVAL",
		"BANK_ACCOUNT_NUMBER", "BANK_ACCOUNT_NAME", "BANK_NAME",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.False(t, cfg.Database.Configured())
	assert.Equal(t, GatewaySimulated, cfg.Payment.Mode)
	assert.Equal(t, "https://api.paystack.co", cfg.Payment.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Payment.Timeout)
	assert.True(t, cfg.Payment.FallbackOnTransportError)
	assert.Equal(t, "orders@horionfarms.ng", cfg.Payment.FallbackEmail)
	assert.False(t, cfg.Payment.Bank.Configured())
	assert.Nil(t, cfg.Kafka.Brokers)
	assert.Equal(t, 10*time.Second, cfg.Tracking.Interval)
}

func TestLoadConfig_SecretSelectsLiveGateway(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_123")
	t.Setenv("PAYSTACK_BASE_URL", "http://localhost:9999/")
	t.Setenv("PAYMENT_FALLBACK_ON_TRANSPORT_ERROR", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GatewayLive, cfg.Payment.Mode)
	assert.Equal(t, "live", cfg.Payment.Mode.String())
	assert.Equal(t, "http://localhost:9999", cfg.Payment.BaseURL)
	assert.False(t, cfg.Payment.FallbackOnTransportError)
}

func TestLoadConfig_ParsesListsAndDurations(t *testing.T) {
	clearEnv(t)
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,,")
	t.Setenv("PAYSTACK_TIMEOUT", "3")
	t.Setenv("TRACK_INTERVAL", "250ms")
	t.Setenv("PORT", "9001")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, cfg.Payment.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Tracking.Interval)
	assert.Equal(t, "9001", cfg.Server.Port)
}
