package events

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafka_PublishEncodesEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got Event
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.Name != OrderCreated || got.OrderID != "abc" {
			return errors.New("unexpected event " + string(val))
		}
		if got.Timestamp == 0 {
			return errors.New("missing timestamp")
		}
		return nil
	})

	k := NewKafkaWithProducer(producer, "horion_orders")
	require.NoError(t, k.Publish(context.Background(), Event{Name: OrderCreated, OrderID: "abc"}))
	require.NoError(t, k.Close())
}

func TestKafka_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	k := NewKafkaWithProducer(producer, "horion_orders")
	err := k.Publish(context.Background(), Event{Name: PaymentVerified, Reference: "HF-1"})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, k.Close())
}

type recordingPublisher struct {
	got []Event
	err error
}

func (r *recordingPublisher) Publish(_ context.Context, e Event) error {
	r.got = append(r.got, e)
	return r.err
}

func (r *recordingPublisher) Close() error { return r.err }

func TestMulti_FansOutAndJoinsErrors(t *testing.T) {
	ok := &recordingPublisher{}
	bad := &recordingPublisher{err: errors.New("down")}

	m := Multi{ok, bad, Nop{}}
	err := m.Publish(context.Background(), Event{Name: OrderCreated, OrderID: "1"})

	assert.EqualError(t, err, "down")
	assert.Len(t, ok.got, 1)
	assert.Len(t, bad.got, 1)
	assert.EqualError(t, m.Close(), "down")
}

func TestAMQP_PublishOrderCreated(t *testing.T) {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		t.Skip("RABBITMQ_URL not set")
	}

	a, err := DialAMQP(url, "order-fulfilment-test", 1)
	if err != nil {
		t.Skipf("RabbitMQ not available: %v", err)
	}
	defer a.Close()

	require.NoError(t, a.Publish(context.Background(), Event{Name: OrderCreated, OrderID: "o-1"}))
	require.NoError(t, a.Publish(context.Background(), Event{Name: PaymentVerified, Reference: "HF-o-1"}))
}
