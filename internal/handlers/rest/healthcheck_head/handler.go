package healthcheck_head

import (
	"net/http"
)

// Handler readiness-проба: после сигнала остановки балансировщик должен увидеть 503
// раньше, чем сервер перестанет принимать соединения.
type Handler struct {
	shuttingDown ShutdownFlag
}

func New(shuttingDown ShutdownFlag) *Handler {
	return &Handler{
		shuttingDown: shuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	if h.shuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
