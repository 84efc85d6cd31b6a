//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dishes_get_test
package dishes_get

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
	GetDishes(ctx context.Context) ([]entities.Dish, error)
}
