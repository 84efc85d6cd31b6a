package order

import (
	"context"
	"fmt"
	"time"

	"grubdash/internal/entities"
	"grubdash/pkg/pipeline"
)

type Service struct {
	repository  Repository
	txManager   TxManager
	idGenerator IDGenerator
	publisher   EventPublisher
	now         func() time.Time
}

func New(repository Repository, txManager TxManager, idGenerator IDGenerator, publisher EventPublisher) *Service {
	return &Service{
		repository:  repository,
		txManager:   txManager,
		idGenerator: idGenerator,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *Service) CreateOrder(ctx context.Context, payload entities.Payload) (*entities.Order, error) {
	var created *entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		req := &request{payload: payload}
		err := pipeline.Run(ctx, req,
			validateDishes,
			validateDishQuantity,
			bodyDataHas("deliverTo"),
			bodyDataHas("mobileNumber"),
		)
		if err != nil {
			return err
		}

		order := fromPayload(s.idGenerator.NextID(), req)
		if err := s.repository.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		created = &order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.OrderCreatedEvent, created)
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	req := &request{routeID: id}
	if err := pipeline.Run(ctx, req, s.orderExists); err != nil {
		return nil, err
	}

	return req.order, nil
}

func (s *Service) GetOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id string, payload entities.Payload) (*entities.Order, error) {
	var updated *entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		req := &request{routeID: id, payload: payload}
		err := pipeline.Run(ctx, req,
			s.orderExists,
			validateStatus,
			idInBodyMatchesRouteID,
			validateDishes,
			validateDishQuantity,
			bodyDataHas("deliverTo"),
			bodyDataHas("mobileNumber"),
		)
		if err != nil {
			return err
		}

		order := fromPayload(req.order.ID, req)
		if err := s.repository.Update(ctx, order); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}

		updated = &order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.OrderUpdatedEvent, updated)
	return updated, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	var deleted *entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		req := &request{routeID: id}
		if err := pipeline.Run(ctx, req, s.orderExists, validatePending); err != nil {
			return err
		}

		if err := s.repository.Delete(ctx, req.order.ID); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}

		deleted = req.order
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, entities.OrderDeletedEvent, deleted)
	return nil
}

func (s *Service) publish(ctx context.Context, eventType entities.OrderEventType, order *entities.Order) {
	s.publisher.PublishOrderEvent(ctx, entities.OrderEvent{
		Type:       eventType,
		OrderID:    order.ID,
		Status:     order.Status,
		OccurredAt: s.now().UTC(),
	})
}

func fromPayload(id string, req *request) entities.Order {
	deliverTo, _ := req.payload.String("deliverTo")
	mobileNumber, _ := req.payload.String("mobileNumber")
	status, _ := req.payload.String("status")

	// при создании статус сохраняется как прислан, без проверки по списку
	return entities.Order{
		ID:           id,
		DeliverTo:    deliverTo,
		MobileNumber: mobileNumber,
		Status:       entities.OrderStatusType(status),
		RawStatus:    entities.CloneValue(req.payload["status"]),
		Dishes:       req.dishes,
	}
}
