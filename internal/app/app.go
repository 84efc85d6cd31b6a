package app

import (
	"context"
	"time"

	"grubdash/internal/handlers/rest/dish_get"
	"grubdash/internal/handlers/rest/dish_post"
	"grubdash/internal/handlers/rest/dish_put"
	"grubdash/internal/handlers/rest/dishes_get"
	"grubdash/internal/handlers/rest/order_delete"
	"grubdash/internal/handlers/rest/order_get"
	"grubdash/internal/handlers/rest/order_post"
	"grubdash/internal/handlers/rest/order_put"
	"grubdash/internal/handlers/rest/orders_get"
	"grubdash/internal/handlers/tasks/store_stats"
	"grubdash/internal/pkg/config"
	"grubdash/internal/pkg/metrics"
	dishService "grubdash/internal/service/dish"
	orderService "grubdash/internal/service/order"
	"grubdash/pkg/background"
	"grubdash/pkg/logger"
)

type StoreStatsInterval time.Duration

type Application struct {
	ServiceDish       ServiceDish
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceDish interface {
	dishes_get.Service
	dish_post.Service
	dish_get.Service
	dish_put.Service
}

type ServiceOrder interface {
	orders_get.Service
	order_post.Service
	order_get.Service
	order_put.Service
	order_delete.Service
}

func provideServiceDish(
	repository dishService.Repository,
	txManager dishService.TxManager,
	idGenerator dishService.IDGenerator,
) *dishService.Dish {
	return dishService.New(repository, txManager, idGenerator)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
	idGenerator orderService.IDGenerator,
	publisher orderService.EventPublisher,
) *orderService.Service {
	return orderService.New(repository, txManager, idGenerator, publisher)
}

func provideStoreStatsInterval(cfg *config.Config) StoreStatsInterval {
	return StoreStatsInterval(cfg.Tasks.StoreStatsInterval)
}

func provideStoreStatsTask(
	dishes store_stats.DishCounter,
	orders store_stats.OrderCounter,
	interval StoreStatsInterval,
) *store_stats.StoreStats {
	return store_stats.NewStoreStats(
		dishes,
		orders,
		metrics.DishesTotal,
		metrics.OrdersGauge{},
		time.Duration(interval),
	)
}

func provideTaskList(
	storeStatsTask *store_stats.StoreStats,
	systemCollector *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		storeStatsTask,
		systemCollector,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
