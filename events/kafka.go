package events

import (
	"context"
	"fmt"

	"github.com/Shopify/sarama"
)

type Kafka struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafka(brokers []string, topic string) (*Kafka, error) {
	kafkaConfig := sarama.NewConfig()
	kafkaConfig.Producer.Return.Successes = true
	kafkaConfig.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := sarama.NewSyncProducer(brokers, kafkaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewKafkaWithProducer(producer, topic), nil
}

func NewKafkaWithProducer(producer sarama.SyncProducer, topic string) *Kafka {
	return &Kafka{producer: producer, topic: topic}
}

// Publish sends e keyed by order id so one order's events stay ordered.
func (k *Kafka) Publish(_ context.Context, e Event) error {
	data, err := encode(e)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Value: sarama.ByteEncoder(data),
	}
	if e.OrderID != "" {
		msg.Key = sarama.StringEncoder(e.OrderID)
	}

	if _, _, err := k.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("kafka publish %s: %w", e.Name, err)
	}
	return nil
}

func (k *Kafka) Close() error {
	return k.producer.Close()
}
