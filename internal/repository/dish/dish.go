package dish

import (
	"context"
	"fmt"
	"sync"

	"grubdash/internal/entities"
	"grubdash/internal/repository"
	"grubdash/internal/service/dish"
)

// Repository in-memory хранилище блюд: упорядоченный слайс плюс индекс id -> позиция.
type Repository struct {
	mu     sync.RWMutex
	dishes []entities.Dish
	index  map[string]int
}

func New() *Repository {
	return &Repository{
		dishes: make([]entities.Dish, 0, 8),
		index:  make(map[string]int),
	}
}

func (r *Repository) Create(_ context.Context, dishEntity entities.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[dishEntity.ID]; exists {
		return fmt.Errorf("dish %s: %w", dishEntity.ID, repository.ErrDuplicateID)
	}

	r.index[dishEntity.ID] = len(r.dishes)
	r.dishes = append(r.dishes, dishEntity)
	return nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*entities.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, dish.ErrDishNotFound
	}

	found := r.dishes[pos]
	return &found, nil
}

func (r *Repository) GetAll(_ context.Context) ([]entities.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Dish, len(r.dishes))
	copy(result, r.dishes)
	return result, nil
}

func (r *Repository) Update(_ context.Context, dishEntity entities.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[dishEntity.ID]
	if !ok {
		return dish.ErrDishNotFound
	}

	r.dishes[pos] = dishEntity
	return nil
}

func (r *Repository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.dishes), nil
}
