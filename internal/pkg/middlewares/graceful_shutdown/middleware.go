package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"grubdash/internal/handlers/rest/envelope"
)

const ShuttingDownMessage = "Service is shutting down"

func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					_ = envelope.WriteMessage(w, http.StatusServiceUnavailable, ShuttingDownMessage)
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
