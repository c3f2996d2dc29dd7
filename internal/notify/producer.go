package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/c4flow/studio-service/internal/errx"
	"github.com/c4flow/studio-service/internal/models"
)

type Config struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	ContactTopic string        `envconfig:"KAFKA_CONTACT_TOPIC" default:"contact.submitted"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher hands contact submissions to the email relay over Kafka.
type Publisher struct {
	w        messageWriter
	producer string
	email    EmailSettings
	timeout  time.Duration
}

func NewPublisher(cfg Config, producer string, email EmailSettings) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.ContactTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: cfg.WriteTimeout,
	}
	return newPublisher(w, producer, email, cfg.WriteTimeout)
}

func newPublisher(w messageWriter, producer string, email EmailSettings, timeout time.Duration) *Publisher {
	return &Publisher{w: w, producer: producer, email: email, timeout: timeout}
}

func (p *Publisher) PublishContactSubmitted(ctx context.Context, sub models.ContactSubmission, traceID string) error {
	payload, err := json.Marshal(BuildContactEmail(sub, p.email))
	if err != nil {
		return fmt.Errorf("marshal contact payload: %w", err)
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventContactSubmitted,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      p.producer,
		TraceID:       traceID,
		CorrelationID: sub.ID,
		Payload:       payload,
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(sub.ID),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(EventContactSubmitted)},
			{Key: "x-event-version", Value: []byte("1")},
		},
	})
	return errx.WrapKafka(err)
}

func (p *Publisher) Close() error {
	return p.w.Close()
}
