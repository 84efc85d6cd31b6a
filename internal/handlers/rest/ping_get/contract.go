//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ping_get_test
package ping_get

import (
	"grubdash/pkg/logger"
)

// handlerLogger ping ничего не пишет в лог, кроме ошибки записи ответа.
type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
