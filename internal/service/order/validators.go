package order

import (
	"context"
	"errors"
	"fmt"

	"grubdash/internal/entities"
	"grubdash/pkg/pipeline"
)

const invalidStatusMessage = "Order must have a status of pending, preparing, out-for-delivery, delivered"

type request struct {
	routeID string
	payload entities.Payload
	order   *entities.Order
	dishes  []entities.OrderDish
}

func (s *Service) orderExists(ctx context.Context, req *request) error {
	found, err := s.repository.GetByID(ctx, req.routeID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return pipeline.Fail(ErrOrderNotFound, "Order does not exist: %s", req.routeID)
		}
		return fmt.Errorf("find order: %w", err)
	}

	req.order = found
	return nil
}

func bodyDataHas(field string) pipeline.Step[request] {
	return func(_ context.Context, req *request) error {
		if !req.payload.Has(field) {
			return pipeline.Fail(ErrInvalidOrder, "Order must include a %s", field)
		}
		if _, ok := req.payload.String(field); !ok {
			return pipeline.Fail(ErrInvalidOrder, "Order must include a %s", field)
		}
		return nil
	}
}

func validateDishes(_ context.Context, req *request) error {
	raw := req.payload["dishes"]
	if !entities.Truthy(raw) {
		return pipeline.Fail(ErrInvalidOrder, "Order must include a dish")
	}

	list, ok := raw.([]any)
	if !ok || len(list) == 0 {
		return pipeline.Fail(ErrInvalidOrder, "Order must include at least one dish")
	}
	return nil
}

// validateDishQuantity ожидает, что validateDishes уже отработал.
func validateDishQuantity(_ context.Context, req *request) error {
	list, _ := req.payload["dishes"].([]any)

	dishes := make([]entities.OrderDish, 0, len(list))
	for i, item := range list {
		entry, _ := item.(map[string]any)

		quantity, ok := entities.AsInteger(entry["quantity"])
		if !ok || quantity < 1 {
			return pipeline.Fail(ErrInvalidOrder, "Dish %d must have a quantity that is an integer greater than 0", i)
		}
		dishes = append(dishes, entities.OrderDish{
			Attributes: entities.Payload(entry).Clone(),
			Quantity:   quantity,
		})
	}

	req.dishes = dishes
	return nil
}

func validateStatus(_ context.Context, req *request) error {
	status := req.payload["status"]

	if req.order.Status == entities.OrderDelivered || status == entities.OrderDelivered.String() {
		return pipeline.Fail(ErrInvalidOrder, "A delivered order cannot be changed")
	}

	s, _ := status.(string)
	switch entities.OrderStatusType(s) {
	case entities.OrderPending, entities.OrderPreparing, entities.OrderOutForDelivery:
		return nil
	default:
		return pipeline.Fail(ErrInvalidOrder, invalidStatusMessage)
	}
}

func idInBodyMatchesRouteID(_ context.Context, req *request) error {
	idInBody := req.payload["id"]
	if !entities.Truthy(idInBody) {
		return nil
	}
	if id, ok := idInBody.(string); ok && id == req.routeID {
		return nil
	}
	return pipeline.Fail(ErrInvalidOrder,
		"Order id does not match route id. Order: %s, Route: %s",
		entities.FormatValue(idInBody), req.routeID,
	)
}

func validatePending(_ context.Context, req *request) error {
	if req.order.Status != entities.OrderPending {
		return pipeline.Fail(ErrInvalidOrder, "An order cannot be deleted unless it is pending")
	}
	return nil
}
