package order_events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"grubdash/internal/entities"
	"grubdash/pkg/logger"
	retrierconfig "grubdash/pkg/retrier"
	"grubdash/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxAttempts     = 4
)

// OrderEventsGateway публикует события жизненного цикла заказа в Kafka.
type OrderEventsGateway struct {
	log      gatewayLogger
	producer producer
	topic    string
	retrier  retrierconfig.Retrier
}

func New(log gatewayLogger, producer producer, topic string) *OrderEventsGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxAttempts:     maxAttempts,
		ShouldRetry:     isRetryable,
	}

	return &OrderEventsGateway{
		log: log.With(
			logger.NewField("topic", topic),
		),
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

// PublishOrderEvent не возвращает ошибку: запрос клиента уже выполнен, сбой только логируется.
func (g *OrderEventsGateway) PublishOrderEvent(ctx context.Context, event entities.OrderEvent) {
	err := g.publish(ctx, event)
	if err != nil {
		g.log.With(
			logger.NewField("error", err),
			logger.NewField("event_type", event.Type.String()),
			logger.NewField("order_id", event.OrderID),
		).Error("failed to publish order event")
	}
}

func (g *OrderEventsGateway) Close() error {
	err := g.producer.Close()
	if err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}

func (g *OrderEventsGateway) publish(ctx context.Context, event entities.OrderEvent) error {
	msg, err := toMessage(g.topic, event)
	if err != nil {
		return err
	}

	var attempt uint64
	start := time.Now()

	err = g.retrier.ExecuteWithContext(ctx, func(context.Context) error {
		attempt++
		_, _, err := g.producer.SendMessage(msg)
		return err
	})

	result := "ok"
	if err != nil {
		result = "error"
	}
	PublishDuration.WithLabelValues(event.Type.String(), result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		PublishRetriesTotal.WithLabelValues(event.Type.String(), result).Inc()
	}

	if err != nil {
		return fmt.Errorf("gateway order events, send %s: %w", event.Type, err)
	}
	return nil
}

func isRetryable(err error) bool {
	if errors.Is(err, sarama.ErrOutOfBrokers) {
		return true
	}

	var kerr sarama.KError
	if errors.As(err, &kerr) {
		switch kerr {
		case sarama.ErrLeaderNotAvailable,
			sarama.ErrNotLeaderForPartition,
			sarama.ErrRequestTimedOut,
			sarama.ErrNotEnoughReplicas,
			sarama.ErrNotEnoughReplicasAfterAppend:
			return true
		}
	}
	return false
}

// NoopPublisher используется, когда Kafka выключена.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderEvent(context.Context, entities.OrderEvent) {}
