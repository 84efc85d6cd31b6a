package app

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"grubdash/internal/handlers/rest/dish_get"
	"grubdash/internal/handlers/rest/dish_post"
	"grubdash/internal/handlers/rest/dish_put"
	"grubdash/internal/handlers/rest/dishes_get"
	"grubdash/internal/handlers/rest/fallback"
	"grubdash/internal/handlers/rest/healthcheck_head"
	"grubdash/internal/handlers/rest/order_delete"
	"grubdash/internal/handlers/rest/order_get"
	"grubdash/internal/handlers/rest/order_post"
	"grubdash/internal/handlers/rest/order_put"
	"grubdash/internal/handlers/rest/orders_get"
	"grubdash/internal/handlers/rest/ping_get"
	"grubdash/internal/pkg/config"
	"grubdash/internal/pkg/middlewares/graceful_shutdown"
	"grubdash/internal/pkg/middlewares/metrics"
	"grubdash/internal/pkg/middlewares/rate_limiter"
	"grubdash/internal/pkg/middlewares/timeout"
	"grubdash/pkg/logger"
	"grubdash/pkg/token_bucket"
)

func NewRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	middlewares := []mux.MiddlewareFunc{
		graceful_shutdown.Middleware(isShuttingDown, ongoingCtx),
		timeout.Middleware(cfg.RequestTimeout),
		metrics.Middleware(log),
		rate_limiter.Middleware(
			log,
			cfg.RateLimiterQPS,
			token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS)),
		),
	}
	router.Use(middlewares...)

	// mux не применяет Use к обработчикам 404/405, цепочка с тем же лимитером навешивается явно
	router.NotFoundHandler = chain(fallback.NewNotFound(log), middlewares)
	router.MethodNotAllowedHandler = chain(fallback.NewMethodNotAllowed(log), middlewares)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	router.Handle("/dishes", dishes_get.New(log, app.ServiceDish)).Methods(http.MethodGet)
	router.Handle("/dishes", dish_post.New(log, app.ServiceDish)).Methods(http.MethodPost)
	router.Handle("/dishes/{dishId}", dish_get.New(log, app.ServiceDish)).Methods(http.MethodGet)
	router.Handle("/dishes/{dishId}", dish_put.New(log, app.ServiceDish)).Methods(http.MethodPut)

	router.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	router.Handle("/orders", order_post.New(log, app.ServiceOrder)).Methods(http.MethodPost)
	router.Handle("/orders/{orderId}", order_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	router.Handle("/orders/{orderId}", order_put.New(log, app.ServiceOrder)).Methods(http.MethodPut)
	router.Handle("/orders/{orderId}", order_delete.New(log, app.ServiceOrder)).Methods(http.MethodDelete)

	return router
}

// chain первый middleware оказывается внешним, как у router.Use.
func chain(h http.Handler, middlewares []mux.MiddlewareFunc) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func NewPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
