//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dish_put_test
package dish_put

import (
	"context"

	"grubdash/internal/entities"
	"grubdash/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateDish(ctx context.Context, id string, payload entities.Payload) (*entities.Dish, error)
}
