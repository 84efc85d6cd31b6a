//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dish_test
package dish

import (
	"context"

	"grubdash/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, dish entities.Dish) error
	GetByID(ctx context.Context, id string) (*entities.Dish, error)
	GetAll(ctx context.Context) ([]entities.Dish, error)
	Update(ctx context.Context, dish entities.Dish) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type IDGenerator interface {
	NextID() string
}
