package dishes_get

import (
	"net/http"

	"grubdash/internal/generated/dto"
	"grubdash/internal/handlers/rest/envelope"
	"grubdash/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.service.GetDishes(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list dishes")
		h.respond(w, http.StatusInternalServerError, dto.ErrorResponse{Message: envelope.InternalErrorMessage})
		return
	}

	h.respond(w, http.StatusOK, dto.DishListResponse{Data: envelope.Dishes(dishes)})
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	err := envelope.WriteJSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
