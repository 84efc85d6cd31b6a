//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=store_stats_test
package store_stats

import (
	"context"

	"grubdash/internal/entities"
)

type DishCounter interface {
	Count(ctx context.Context) (int, error)
}

type OrderCounter interface {
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int, error)
}

type DishesGauge interface {
	Set(value float64)
}

type OrdersGauge interface {
	Set(status string, value float64)
}
