package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DishesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dishes_total",
			Help: "Number of dishes in the menu",
		},
	)

	OrdersTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "orders_total",
			Help: "Number of stored orders by status, unknown statuses are grouped under other",
		},
		[]string{"status"},
	)
)

// OrdersGauge выставляет orders_total для одного статуса.
type OrdersGauge struct{}

func (OrdersGauge) Set(status string, value float64) {
	OrdersTotal.WithLabelValues(status).Set(value)
}
