package order_put

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"grubdash/internal/generated/dto"
	"grubdash/internal/handlers/rest/envelope"
	"grubdash/internal/service/order"
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
	orderID := mux.Vars(r)["orderId"]

	payload, err := envelope.DecodeData(r)
	if err != nil {
		h.respond(w, http.StatusBadRequest, dto.ErrorResponse{Message: envelope.MalformedJSONMessage})
		return
	}

	orderEntity, err := h.service.UpdateOrder(r.Context(), orderID, payload)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			h.respond(w, http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, order.ErrInvalidOrder):
			h.respond(w, http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update order")
			h.respond(w, http.StatusInternalServerError, dto.ErrorResponse{Message: envelope.InternalErrorMessage})
		}
		return
	}

	h.respond(w, http.StatusOK, dto.OrderResponse{Data: envelope.Order(*orderEntity)})
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	err := envelope.WriteJSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
