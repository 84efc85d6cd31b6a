package store_stats

import (
	"context"
	"fmt"
	"slices"
	"time"

	"grubdash/internal/entities"
)

// статусы выставляются всегда, чтобы серия обнулялась, когда заказов в статусе не осталось
var knownStatuses = []entities.OrderStatusType{
	entities.OrderPending,
	entities.OrderPreparing,
	entities.OrderOutForDelivery,
	entities.OrderDelivered,
}

// otherStatus метка для заказов без статуса и со статусом вне списка, набор меток остается конечным
const otherStatus = "other"

type StoreStats struct {
	dishes      DishCounter
	orders      OrderCounter
	dishesGauge DishesGauge
	ordersGauge OrdersGauge
	interval    time.Duration
}

func NewStoreStats(
	dishes DishCounter,
	orders OrderCounter,
	dishesGauge DishesGauge,
	ordersGauge OrdersGauge,
	interval time.Duration,
) *StoreStats {
	return &StoreStats{
		dishes:      dishes,
		orders:      orders,
		dishesGauge: dishesGauge,
		ordersGauge: ordersGauge,
		interval:    interval,
	}
}

func (s *StoreStats) TTL() time.Duration {
	return s.interval
}

func (s *StoreStats) Do(ctx context.Context) error {
	dishes, err := s.dishes.Count(ctx)
	if err != nil {
		return fmt.Errorf("count dishes: %w", err)
	}

	orders, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return fmt.Errorf("count orders: %w", err)
	}

	s.dishesGauge.Set(float64(dishes))
	var other int
	for status, count := range orders {
		if !slices.Contains(knownStatuses, status) {
			other += count
		}
	}
	for _, status := range knownStatuses {
		s.ordersGauge.Set(status.String(), float64(orders[status]))
	}
	s.ordersGauge.Set(otherStatus, float64(other))

	return nil
}

func (s *StoreStats) Info() string {
	return "store stats"
}
