// Package relay republishes hub messages to Kafka.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/tuanvumaihuynh/inventory-hub/internal/hub"
	"github.com/tuanvumaihuynh/inventory-hub/internal/storage/mq"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/msgctx"
)

const subscriberID = "kafka-relay"

const produceTimeout = 5 * time.Second

// Subscriber is the part of the hub the relay registers with.
type Subscriber interface {
	Subscribe(conn hub.Conn) error
	Unsubscribe(id string)
}

// Service is a hub subscriber that produces every message it receives to
// the changes topic, keyed by product id.
type Service struct {
	topic      string
	logger     *slog.Logger
	mqProducer mq.Producer
}

var _ hub.Conn = (*Service)(nil)

func NewService(topic string, logger *slog.Logger, mqProducer mq.Producer) *Service {
	return &Service{
		topic:      topic,
		logger:     logger.With(slog.String("service", "relay")),
		mqProducer: mqProducer,
	}
}

type CleanupFunc func()

// Run subscribes the relay to h. The returned cleanup unsubscribes it.
func (s *Service) Run(h Subscriber) (CleanupFunc, error) {
	if err := h.Subscribe(s); err != nil {
		return nil, fmt.Errorf("subscribe relay: %w", err)
	}

	return func() {
		h.Unsubscribe(subscriberID)
	}, nil
}

func (s *Service) ID() string {
	return subscriberID
}

// Send produces msg. Produce failures are logged and swallowed so the relay
// keeps its subscription across broker outages.
func (s *Service) Send(ctx context.Context, msg hub.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.ErrorContext(ctx, "error encoding hub message",
			slog.String("event", msg.Event),
			slog.Any("error", err),
		)
		return nil
	}

	produceMsg := mq.ProduceMsg{
		Topic:   s.topic,
		Headers: msgctx.BuildHeaders(ctx),
		Payload: payload,
	}
	produceMsg.Headers["event"] = msg.Event
	if msg.ProductID != "" {
		key := msg.ProductID
		produceMsg.PartitionKey = &key
	}

	ctx, cancel := context.WithTimeout(ctx, produceTimeout)
	defer cancel()

	if err := s.mqProducer.Produce(ctx, produceMsg); err != nil {
		s.logger.ErrorContext(ctx, "error producing message",
			slog.String("topic", s.topic),
			slog.String("event", msg.Event),
			slog.String("product_id", msg.ProductID),
			slog.Any("error", err),
		)
	}

	return nil
}

func (s *Service) Close() error {
	return nil
}
