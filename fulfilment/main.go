// Command fulfilment consumes newly created orders from RabbitMQ and logs
// a packing ticket for each one.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"horion-farms/api/config"
	"horion-farms/api/location"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if cfg.RabbitMQ.URL == "" {
		log.Fatal("RABBITMQ_URL is required")
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("Failed to open channel:", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(cfg.RabbitMQ.QueueName, true, false, false, false, nil)
	if err != nil {
		log.Fatal("Failed to declare queue:", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQ.QueueName, "", false, false, false, false, nil)
	if err != nil {
		log.Fatal("Failed to register consumer:", err)
	}

	hub := getHub()
	go func() {
		for d := range msgs {
			ticket, err := planTicket(d.Body, hub)
			if err != nil {
				slog.Error("discarding message", "message_id", d.MessageId, "err", err)
				_ = d.Nack(false, false)
				continue
			}
			slog.Info("packing ticket",
				"order_id", ticket.OrderID,
				"city", ticket.City,
				"hub", ticket.Hub,
				"items", ticket.Items,
				"total", ticket.Total,
				"eta_hours", ticket.ETAHours,
				"cold_chain", ticket.ColdChain,
			)
			_ = d.Ack(false)
		}
	}()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Use(logger.New())

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "fulfilment",
			"hub":     hub,
		})
	})

	port := ":" + os.Getenv("FULFILMENT_PORT")
	if port == ":" {
		port = ":3000"
	}
	slog.Info("fulfilment service starting", "port", port, "queue", cfg.RabbitMQ.QueueName)
	if err := app.Listen(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getHub() string {
	hub := os.Getenv("FULFILMENT_HUB")
	if _, ok := location.LookupHub(hub); !ok {
		return location.DefaultHub
	}
	return hub
}
