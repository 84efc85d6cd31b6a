//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dish_get_test
package dish_get

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
	GetDish(ctx context.Context, id string) (*entities.Dish, error)
}
