package dish_post

import (
	"errors"
	"net/http"

	"grubdash/internal/generated/dto"
	"grubdash/internal/handlers/rest/envelope"
	"grubdash/internal/service/dish"
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
	payload, err := envelope.DecodeData(r)
	if err != nil {
		h.respond(w, http.StatusBadRequest, dto.ErrorResponse{Message: envelope.MalformedJSONMessage})
		return
	}

	dishEntity, err := h.service.CreateDish(r.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, dish.ErrInvalidDish):
			h.respond(w, http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create dish")
			h.respond(w, http.StatusInternalServerError, dto.ErrorResponse{Message: envelope.InternalErrorMessage})
		}
		return
	}

	h.respond(w, http.StatusCreated, dto.DishResponse{Data: envelope.Dish(*dishEntity)})
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	err := envelope.WriteJSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
