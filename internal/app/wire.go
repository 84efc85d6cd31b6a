//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"grubdash/internal/handlers/tasks/store_stats"
	"grubdash/internal/pkg/config"
	"grubdash/internal/pkg/factory/identifier"
	"grubdash/internal/pkg/metrics"
	dishRepo "grubdash/internal/repository/dish"
	orderRepo "grubdash/internal/repository/order"
	dishService "grubdash/internal/service/dish"
	orderService "grubdash/internal/service/order"
	"grubdash/pkg/background"
	"grubdash/pkg/logger"
	"grubdash/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
	publisher orderService.EventPublisher,
) (*Application, error) {
	wire.Build(
		tx.New,
		identifier.New,
		dishRepo.New,
		orderRepo.New,

		provideServiceDish,
		provideServiceOrder,

		provideStoreStatsInterval,
		provideStoreStatsTask,
		metrics.NewSystemCollector,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDish), new(*dishService.Dish)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(dishService.Repository), new(*dishRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(dishService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dishService.IDGenerator), new(*identifier.IDFactory)),
		wire.Bind(new(orderService.IDGenerator), new(*identifier.IDFactory)),

		wire.Bind(new(store_stats.DishCounter), new(*dishRepo.Repository)),
		wire.Bind(new(store_stats.OrderCounter), new(*orderRepo.Repository)),
	)
	return &Application{}, nil
}
