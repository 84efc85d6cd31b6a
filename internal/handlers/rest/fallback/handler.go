// Package fallback отвечает на запросы, для которых роутер не нашёл маршрут.
package fallback

import (
	"fmt"
	"net/http"

	"grubdash/internal/handlers/rest/envelope"
	"grubdash/pkg/logger"
)

// NotFoundHandler неизвестный путь.
type NotFoundHandler struct {
	log handlerLogger
}

func NewNotFound(log handlerLogger) *NotFoundHandler {
	return &NotFoundHandler{
		log: log.With(),
	}
}

func (h *NotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond(h.log, w, http.StatusNotFound, fmt.Sprintf("Path not found: %s", r.URL.Path))
}

// MethodNotAllowedHandler путь известен, но метод для него не зарегистрирован.
type MethodNotAllowedHandler struct {
	log handlerLogger
}

func NewMethodNotAllowed(log handlerLogger) *MethodNotAllowedHandler {
	return &MethodNotAllowedHandler{
		log: log.With(),
	}
}

func (h *MethodNotAllowedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond(h.log, w, http.StatusMethodNotAllowed, fmt.Sprintf("%s not allowed for %s", r.Method, r.URL.Path))
}

func respond(log handlerLogger, w http.ResponseWriter, status int, message string) {
	err := envelope.WriteMessage(w, status, message)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
