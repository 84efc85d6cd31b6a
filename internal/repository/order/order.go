package order

import (
	"context"
	"fmt"
	"sync"

	"grubdash/internal/entities"
	"grubdash/internal/repository"
	"grubdash/internal/service/order"
)

// Repository in-memory хранилище заказов. Наружу отдаются только копии.
type Repository struct {
	mu     sync.RWMutex
	orders []entities.Order
	index  map[string]int
}

func New() *Repository {
	return &Repository{
		orders: make([]entities.Order, 0, 8),
		index:  make(map[string]int),
	}
}

func (r *Repository) Create(_ context.Context, orderEntity entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[orderEntity.ID]; exists {
		return fmt.Errorf("order %s: %w", orderEntity.ID, repository.ErrDuplicateID)
	}

	r.index[orderEntity.ID] = len(r.orders)
	r.orders = append(r.orders, orderEntity.Clone())
	return nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}

	found := r.orders[pos].Clone()
	return &found, nil
}

func (r *Repository) GetAll(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Order, len(r.orders))
	for i, o := range r.orders {
		result[i] = o.Clone()
	}
	return result, nil
}

func (r *Repository) Update(_ context.Context, orderEntity entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[orderEntity.ID]
	if !ok {
		return order.ErrOrderNotFound
	}

	r.orders[pos] = orderEntity.Clone()
	return nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return order.ErrOrderNotFound
	}

	r.orders = append(r.orders[:pos], r.orders[pos+1:]...)
	delete(r.index, id)
	for i := pos; i < len(r.orders); i++ {
		r.index[r.orders[i].ID] = i
	}
	return nil
}

func (r *Repository) CountByStatus(_ context.Context) (map[entities.OrderStatusType]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[entities.OrderStatusType]int)
	for _, o := range r.orders {
		counts[o.Status]++
	}
	return counts, nil
}
