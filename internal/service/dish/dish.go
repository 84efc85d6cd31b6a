package dish

import (
	"context"
	"fmt"

	"grubdash/internal/entities"
	"grubdash/pkg/pipeline"
)

type Dish struct {
	repository  Repository
	txManager   TxManager
	idGenerator IDGenerator
}

func New(repository Repository, txManager TxManager, idGenerator IDGenerator) *Dish {
	return &Dish{
		repository:  repository,
		txManager:   txManager,
		idGenerator: idGenerator,
	}
}

func (s *Dish) CreateDish(ctx context.Context, payload entities.Payload) (*entities.Dish, error) {
	var created *entities.Dish

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		req := &request{payload: payload}
		if err := pipeline.Run(ctx, req, fieldSteps()...); err != nil {
			return err
		}

		dish := fromPayload(s.idGenerator.NextID(), payload)
		if err := s.repository.Create(ctx, dish); err != nil {
			return fmt.Errorf("create dish: %w", err)
		}

		created = &dish
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Dish) GetDish(ctx context.Context, id string) (*entities.Dish, error) {
	req := &request{routeID: id}
	if err := pipeline.Run(ctx, req, s.dishExists); err != nil {
		return nil, err
	}

	return req.dish, nil
}

func (s *Dish) GetDishes(ctx context.Context) ([]entities.Dish, error) {
	dishes, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dishes: %w", err)
	}

	return dishes, nil
}

func (s *Dish) UpdateDish(ctx context.Context, id string, payload entities.Payload) (*entities.Dish, error) {
	var updated *entities.Dish

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		req := &request{routeID: id, payload: payload}

		steps := append([]pipeline.Step[request]{
			s.dishExists,
			idInBodyMatchesRouteID,
		}, fieldSteps()...)
		if err := pipeline.Run(ctx, req, steps...); err != nil {
			return err
		}

		// id берём из хранилища, тело запроса его не меняет
		dish := fromPayload(req.dish.ID, payload)
		if err := s.repository.Update(ctx, dish); err != nil {
			return fmt.Errorf("failed to update dish: %w", err)
		}

		updated = &dish
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func fromPayload(id string, payload entities.Payload) entities.Dish {
	name, _ := payload.String("name")
	description, _ := payload.String("description")
	price, _ := payload.Number("price")
	imageURL, _ := payload.String("image_url")

	return entities.Dish{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
	}
}
