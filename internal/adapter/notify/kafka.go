package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MikeRez0/ypmarket/internal/adapter/config"
	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const EventVendorNotification = "VendorNotification"

type envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// KafkaPublisher writes synchronously so a broker failure reaches the
// dispatcher and is retried.
type KafkaPublisher struct {
	w        *kafka.Writer
	producer string
}

func NewKafkaPublisher(cfg *config.Kafka, producer string) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		producer: producer,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, n *domain.Notification) error {
	value, err := encodeEnvelope(n, p.producer)
	if err != nil {
		return err
	}

	// Partition key is the recipient, so one user's notifications keep their order.
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.UserID),
		Value: value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(EventVendorNotification)},
			{Key: "x-event-version", Value: []byte("1")},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

func encodeEnvelope(n *domain.Notification, producer string) ([]byte, error) {
	payload, err := json.Marshal(toPayload(n))
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return json.Marshal(envelope{
		EventID:       uuid.NewString(),
		EventType:     EventVendorNotification,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		CorrelationID: n.ID,
		Payload:       payload,
	})
}
