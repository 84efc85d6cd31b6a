package dish

import (
	"context"
	"errors"
	"fmt"

	"grubdash/internal/entities"
	"grubdash/pkg/pipeline"
)

type request struct {
	routeID string
	payload entities.Payload
	dish    *entities.Dish
}

func (s *Dish) dishExists(ctx context.Context, req *request) error {
	found, err := s.repository.GetByID(ctx, req.routeID)
	if err != nil {
		if errors.Is(err, ErrDishNotFound) {
			return pipeline.Fail(ErrDishNotFound, "Dish does not exist: %s", req.routeID)
		}
		return fmt.Errorf("find dish: %w", err)
	}

	req.dish = found
	return nil
}

// bodyDataHas проверяет истинность поля; текстовые поля дополнительно обязаны быть строками.
func bodyDataHas(field string, text bool) pipeline.Step[request] {
	return func(_ context.Context, req *request) error {
		if !req.payload.Has(field) {
			return pipeline.Fail(ErrInvalidDish, "Dish must include a %s", field)
		}
		if _, ok := req.payload.String(field); text && !ok {
			return pipeline.Fail(ErrInvalidDish, "Dish must include a %s", field)
		}
		return nil
	}
}

func priceIsValidNumber(_ context.Context, req *request) error {
	price, ok := req.payload.Integer("price")
	if !ok || price <= 0 {
		return pipeline.Fail(ErrInvalidDish, "Dish must have a price that is an integer greater than 0")
	}
	return nil
}

func idInBodyMatchesRouteID(_ context.Context, req *request) error {
	idInBody := req.payload["id"]
	if !entities.Truthy(idInBody) {
		return nil
	}
	if id, ok := idInBody.(string); ok && id == req.routeID {
		return nil
	}
	return pipeline.Fail(ErrInvalidDish,
		"Dish id does not match route id. Dish: %s, Route: %s",
		entities.FormatValue(idInBody), req.routeID,
	)
}

// порядок важен: в ответ уходит только первая ошибка
func fieldSteps() []pipeline.Step[request] {
	return []pipeline.Step[request]{
		bodyDataHas("name", true),
		bodyDataHas("description", true),
		bodyDataHas("price", false),
		bodyDataHas("image_url", true),
		priceIsValidNumber,
	}
}
