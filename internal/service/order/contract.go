//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"grubdash/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, order entities.Order) error
	Delete(ctx context.Context, id string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type IDGenerator interface {
	NextID() string
}

// EventPublisher доставляет события жизненного цикла заказа.
// Ошибки доставки публикатор логирует сам, на ответ клиенту они не влияют.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event entities.OrderEvent)
}
