package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const sendTimeout = 5 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes game events to a kafka topic. A producer without brokers drops every event.
type Producer struct {
	logger *slog.Logger
	writer messageWriter
	wg     sync.WaitGroup
}

func NewProducer(logger *slog.Logger, brokers []string, topic string) *Producer {
	log := logger.With("component", "kafka")

	if len(brokers) == 0 || brokers[0] == "" {
		log.Info("kafka disabled: no brokers configured")
		return &Producer{logger: log}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    1,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	log.Info("kafka producer initialized", "topic", topic)

	return &Producer{
		logger: log,
		writer: writer,
	}
}

func (that *Producer) Enabled() bool {
	return that.writer != nil
}

// Publish sends the event in the background, keyed by game id.
func (that *Producer) Publish(_ context.Context, event entity.Event) {
	if !that.Enabled() {
		return
	}

	log := that.logger.With("method", "Publish")

	data, err := json.Marshal(event)
	if err != nil {
		log.Error("failed to marshal event", "error", err)
		return
	}

	that.wg.Add(1)
	go func() {
		defer that.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		err := that.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event.GameID),
			Value: data,
		})
		if err != nil {
			log.Error("failed to send event", "type", event.Type, "error", err)
			return
		}

		log.Debug("event sent", "type", event.Type, "game_id", event.GameID)
	}()
}

// Close waits for pending events and closes the writer.
func (that *Producer) Close() error {
	if !that.Enabled() {
		return nil
	}

	that.wg.Wait()

	return that.writer.Close()
}
