//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_events_test
package order_events

import (
	"github.com/IBM/sarama"
	"grubdash/pkg/logger"
)

type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (int32, int64, error)
	Close() error
}

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
