package kafka

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewProducer_Disabled(t *testing.T) {
	// Given: no brokers
	producer := NewProducer(discardLogger(), nil, "events")

	// Then: the producer is a no-op
	assert.False(t, producer.Enabled())
	producer.Publish(context.Background(), entity.Event{Type: entity.EventMove})
	assert.NoError(t, producer.Close())
}

func TestProducer_Publish(t *testing.T) {
	// Given: a producer over a fake writer
	writer := &fakeWriter{}
	producer := &Producer{logger: discardLogger(), writer: writer}

	// When: an event is published and the producer closed
	producer.Publish(context.Background(), entity.Event{
		Type:   entity.EventGameEnd,
		GameID: "game-1",
		Data:   entity.GameEndData{Winner: "Player 2", Moves: 12},
	})
	require.NoError(t, producer.Close())

	// Then: one message keyed by the game id was written
	require.Len(t, writer.messages, 1)
	assert.Equal(t, "game-1", string(writer.messages[0].Key))
	assert.True(t, writer.closed)

	var event map[string]any
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, entity.EventGameEnd, event["type"])
	assert.Equal(t, "Player 2", event["data"].(map[string]any)["winner"])
}
