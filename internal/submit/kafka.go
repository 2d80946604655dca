package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/order-desk/internal/config"
	"github.com/segmentio/kafka-go"
)

// KafkaSubmitter publishes orders keyed by draft id, so retries of the same
// draft land on the same partition.
type KafkaSubmitter struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaSubmitter(logger *slog.Logger, cfg config.Kafka) *KafkaSubmitter {
	return &KafkaSubmitter{
		logger: logger.With(slog.String("submitter", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (s *KafkaSubmitter) Submit(ctx context.Context, draftID string, order Order) error {
	value, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	// kafka-go already retries writes
	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(draftID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish order: %w", err)
	}

	s.logger.DebugContext(ctx, "order published", slog.String("draft_id", draftID), slog.String("topic", s.writer.Topic))
	return nil
}

func (s *KafkaSubmitter) Close() error {
	return s.writer.Close()
}
