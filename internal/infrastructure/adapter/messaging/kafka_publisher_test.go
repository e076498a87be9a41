package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/wager-profile/mocks/port/core"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_PublishFundsAdded(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(now).Once()

	writer := &recordingWriter{}
	publisher := NewKafkaPublisher(writer, clock, logger.NewNoopLogger())

	event := entity.FundsAdded{
		DepositID:      "dep-1",
		UserID:         "ada",
		IdempotencyKey: "key-1",
		Amount:         "50.00",
		NewBalance:     "150.00",
		OccurredAt:     now,
	}
	require.NoError(t, publisher.PublishFundsAdded(context.Background(), event))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "ada", string(msg.Key))
	assert.Equal(t, now, msg.Time)
	assert.Equal(t, []kafka.Header{
		{Key: "event-type", Value: []byte("wallet.funds_added")},
		{Key: "idempotency-key", Value: []byte("key-1")},
	}, msg.Headers)

	var decoded entity.FundsAdded
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.DepositID, decoded.DepositID)
	assert.Equal(t, event.NewBalance, decoded.NewBalance)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteFailure(t *testing.T) {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(time.Now()).Once()

	writer := &recordingWriter{err: errors.New("leader not available")}
	publisher := NewKafkaPublisher(writer, clock, logger.NewNoopLogger())

	err := publisher.PublishFundsAdded(context.Background(), entity.FundsAdded{UserID: "ada"})
	assert.ErrorContains(t, err, "leader not available")
}

func TestNewKafkaWriter(t *testing.T) {
	writer := NewKafkaWriter([]string{"localhost:9092"}, "wallet.funds-added")
	defer writer.Close()

	assert.Equal(t, "wallet.funds-added", writer.Topic)
	assert.IsType(t, &kafka.Hash{}, writer.Balancer)
}
