package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// GatewayMode is resolved once at startup from the presence of a gateway key.
type GatewayMode int

const (
	GatewaySimulated GatewayMode = iota
	GatewayLive
)

func (m GatewayMode) String() string {
	if m == GatewayLive {
		return "live"
	}
	return "simulated"
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Payment  PaymentConfig
	Kafka    KafkaConfig
	RabbitMQ RabbitMQConfig
	JWT      JWTConfig
	Tracking TrackingConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	URL  string
	Name string
}

// Configured reports whether a Data Store URL was supplied.
func (d DatabaseConfig) Configured() bool { return d.URL != "" }

type PaymentConfig struct {
	Mode      GatewayMode
	SecretKey string
	BaseURL   string
	Timeout   time.Duration

	// FallbackOnTransportError downgrades live calls that fail in transport
	// to simulated mode instead of surfacing a gateway error.
	FallbackOnTransportError bool

	CheckoutBaseURL string
	FallbackEmail   string
	Currency        string
	Bank            BankTransferConfig
}

type BankTransferConfig struct {
	AccountNumber string
	AccountName   string
	BankName      string
}

// Configured reports whether manual bank transfer details are available.
func (b BankTransferConfig) Configured() bool {
	return b.AccountNumber != "" && b.AccountName != "" && b.BankName != ""
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type RabbitMQConfig struct {
	URL       string
	QueueName string
}

type JWTConfig struct {
	SecretKey string
}

type TrackingConfig struct {
	Interval time.Duration
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	secret := getEnv("PAYSTACK_SECRET_KEY", "")
	mode := GatewaySimulated
	if secret != "" {
		mode = GatewayLive
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8000"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			URL:  getEnv("DATABASE_URL", ""),
			Name: getEnv("DATABASE_NAME", ""),
		},
		Payment: PaymentConfig{
			Mode:                     mode,
			SecretKey:                secret,
			BaseURL:                  strings.TrimRight(getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"), "/"),
			Timeout:                  getDuration("PAYSTACK_TIMEOUT", 10*time.Second),
			FallbackOnTransportError: getBool("PAYMENT_FALLBACK_ON_TRANSPORT_ERROR", true),
			CheckoutBaseURL:          getEnv("PAYMENT_CHECKOUT_BASE_URL", "https://pay.horionfarms.ng/checkout/"),
			FallbackEmail:            getEnv("PAYMENT_FALLBACK_EMAIL", "orders@horionfarms.ng"),
			Currency:                 "NGN",
			Bank: BankTransferConfig{
				AccountNumber: getEnv("BANK_ACCOUNT_NUMBER", ""),
				AccountName:   getEnv("BANK_ACCOUNT_NAME", ""),
				BankName:      getEnv("BANK_NAME", ""),
			},
		},
		Kafka: KafkaConfig{
			Brokers: getList("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "horion_orders"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:       getEnv("RABBITMQ_URL", ""),
			QueueName: getEnv("RABBITMQ_QUEUE", "order-fulfilment"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", ""),
		},
		Tracking: TrackingConfig{
			Interval: getDuration("TRACK_INTERVAL", 10*time.Second),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration accepts Go durations ("750ms") or plain seconds ("10").
func getDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}

func getList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
