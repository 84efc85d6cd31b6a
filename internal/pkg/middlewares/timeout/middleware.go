package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает контекст запроса, который уходит в сервисы и хранилища.
// Нулевой или отрицательный timeout отключает ограничение.
func Middleware(requestTimeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if requestTimeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() наследуется от ongoingCtx (BaseContext сервера)
			ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
