package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

// AMQP hands newly created orders to the fulfilment queue. Other events
// are ignored.
type AMQP struct {
	conn  *amqp.Connection
	queue string

	mu sync.Mutex
	ch *amqp.Channel
}

// DialAMQP connects with a short retry loop and declares the durable queue.
func DialAMQP(url, queue string, attempts int) (*AMQP, error) {
	var conn *amqp.Connection
	var err error
	for i := 0; i < attempts; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		if i < attempts-1 {
			slog.Warn("rabbitmq dial failed, retrying", "attempt", i+1, "err", err)
			time.Sleep(2 * time.Second)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", attempts, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return &AMQP{conn: conn, queue: queue, ch: ch}, nil
}

func (a *AMQP) Publish(_ context.Context, e Event) error {
	if e.Name != OrderCreated {
		return nil
	}
	data, err := encode(e)
	if err != nil {
		return err
	}

	// amqp channels are not safe for concurrent publishers.
	a.mu.Lock()
	defer a.mu.Unlock()

	err = a.ch.Publish(
		"",      // exchange
		a.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.OrderID,
			Body:         data,
		},
	)
	if err != nil {
		return fmt.Errorf("amqp publish %s: %w", e.OrderID, err)
	}
	return nil
}

func (a *AMQP) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	_ = a.ch.Close()
	return a.conn.Close()
}
