package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"horion-farms/api/config"
	"horion-farms/api/events"
	"horion-farms/api/handlers"
	"horion-farms/api/orders"
	"horion-farms/api/payment"
	"horion-farms/api/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	st := openStore(cfg)
	publisher := initPublishers(cfg)

	gateway := payment.NewGateway(cfg.Payment)
	slog.Info("payment gateway", "mode", cfg.Payment.Mode.String())

	server := handlers.NewServer(
		cfg,
		st,
		orders.NewService(st, publisher),
		payment.NewOrchestrator(cfg.Payment, st, gateway, publisher),
	)
	app := handlers.NewApp(server)

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("http shutdown", "err", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if st != nil {
		if err := st.Close(ctx); err != nil {
			slog.Error("close data store", "err", err)
		}
	}
	if err := publisher.Close(); err != nil {
		slog.Error("close publishers", "err", err)
	}
}

// openStore returns nil when no Data Store is configured or it cannot be
// reached; persistence endpoints then answer "Database not configured".
func openStore(cfg *config.Config) store.Store {
	if !cfg.Database.Configured() {
		slog.Warn("DATABASE_URL not set, running without a data store")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := store.Open(ctx, cfg.Database.URL, cfg.Database.Name)
	if err != nil {
		slog.Error("data store unavailable", "err", err)
		return nil
	}
	return st
}

func initPublishers(cfg *config.Config) events.Publisher {
	var pubs events.Multi

	if len(cfg.Kafka.Brokers) > 0 {
		k, err := events.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			slog.Error("kafka producer unavailable", "err", err)
		} else {
			pubs = append(pubs, k)
		}
	}

	if cfg.RabbitMQ.URL != "" {
		a, err := events.DialAMQP(cfg.RabbitMQ.URL, cfg.RabbitMQ.QueueName, 5)
		if err != nil {
			slog.Error("rabbitmq unavailable", "err", err)
		} else {
			pubs = append(pubs, a)
		}
	}

	if len(pubs) == 0 {
		return events.Nop{}
	}
	return pubs
}
