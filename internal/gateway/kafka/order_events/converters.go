package order_events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"grubdash/internal/entities"
)

const eventTypeHeader = "event_type"

type message struct {
	EventType string    `json:"event_type"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func toMessage(topic string, event entities.OrderEvent) (*sarama.ProducerMessage, error) {
	value, err := json.Marshal(message{
		EventType: event.Type.String(),
		OrderID:   event.OrderID,
		Status:    event.Status.String(),
		Timestamp: event.OccurredAt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal order event: %w", err)
	}

	return &sarama.ProducerMessage{
		Topic: topic,
		// ключ по заказу: события одного заказа попадают в одну партицию по порядку
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte(eventTypeHeader), Value: []byte(event.Type.String())},
		},
		Timestamp: event.OccurredAt,
	}, nil
}
