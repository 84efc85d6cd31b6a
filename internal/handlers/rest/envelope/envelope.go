// Package envelope читает обертку запроса {"data": ...} и пишет общие для
// REST-обработчиков ответы вида {"data": ...} и {"message": ...}.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"grubdash/internal/entities"
	"grubdash/internal/generated/dto"
)

const (
	MalformedJSONMessage = "Request body must be valid JSON"
	InternalErrorMessage = "Internal server error"
)

var ErrMalformedJSON = errors.New("malformed JSON body")

// DecodeData возвращает поле data из тела запроса. Пустое тело, отсутствие data
// или data не-объект дают пустой payload.
func DecodeData(r *http.Request) (entities.Payload, error) {
	var body dto.DataEnvelope
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	data, ok := body.Data.(map[string]any)
	if !ok {
		return entities.Payload{}, nil
	}

	return entities.Payload(data), nil
}

func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, dto.ErrorResponse{Message: message})
}

func Dish(d entities.Dish) dto.Dish {
	return dto.Dish{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
	}
}

func Dishes(dishes []entities.Dish) []dto.Dish {
	result := make([]dto.Dish, 0, len(dishes))
	for _, d := range dishes {
		result = append(result, Dish(d))
	}
	return result
}

// Order статус отдается в том виде, в каком был сохранен: как прислан при
// создании либо строкой после обновления.
func Order(o entities.Order) dto.Order {
	result := dto.Order{
		ID:           o.ID,
		DeliverTo:    o.DeliverTo,
		MobileNumber: o.MobileNumber,
		Dishes:       make([]dto.OrderDish, 0, len(o.Dishes)),
	}

	switch {
	case o.RawStatus != nil:
		result.Status = entities.CloneValue(o.RawStatus)
	case o.Status != "":
		result.Status = string(o.Status)
	}

	for _, d := range o.Dishes {
		result.Dishes = append(result.Dishes, orderDish(d))
	}

	return result
}

func Orders(orders []entities.Order) []dto.Order {
	result := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, Order(o))
	}
	return result
}

// orderDish позиция отдается без изменений; без атрибутов остается только количество.
func orderDish(d entities.OrderDish) dto.OrderDish {
	if d.Attributes == nil {
		return dto.OrderDish{"quantity": d.Quantity}
	}
	return dto.OrderDish(d.Attributes.Clone())
}
