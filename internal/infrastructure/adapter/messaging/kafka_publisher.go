package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
)

// MessageWriter is the subset of *kafka.Writer used for publishing
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes funds-added events keyed by user ID, so one
// user's deposits stay ordered within a partition
type KafkaPublisher struct {
	writer       MessageWriter
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewKafkaWriter builds a writer for topic on brokers
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           10 * time.Second,
	}
}

// NewKafkaPublisher creates a publisher on writer
func NewKafkaPublisher(writer MessageWriter, timeProvider coreport.TimeProvider, logger coreport.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer:       writer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// PublishFundsAdded serializes event as JSON and writes it
func (p *KafkaPublisher) PublishFundsAdded(ctx context.Context, event entity.FundsAdded) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode funds added event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: value,
		Time:  p.timeProvider.Now(),
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("wallet.funds_added")},
			{Key: "idempotency-key", Value: []byte(event.IdempotencyKey)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish funds added for %s: %w", event.UserID, err)
	}

	p.logger.Debug("Published funds added event", map[string]any{
		"user_id":    event.UserID,
		"deposit_id": event.DepositID,
	})
	return nil
}

// Close flushes pending messages and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events when no brokers are configured
type NoopPublisher struct{}

func (NoopPublisher) PublishFundsAdded(context.Context, entity.FundsAdded) error { return nil }
func (NoopPublisher) Close() error                                              { return nil }
