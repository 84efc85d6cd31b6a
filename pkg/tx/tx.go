package tx

import (
	"context"
	"sync"
)

// Manager сериализует изменяющие операции над in-memory хранилищами:
// в каждый момент времени выполняется не более одной fn.
type Manager struct {
	mu sync.Mutex
}

// New создаёт новый менеджер транзакций.
func New() *Manager {
	return &Manager{}
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}
