package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// MemoryTodoGateway keeps todos in process memory, in insertion order.
type MemoryTodoGateway struct {
	todos map[string]entity.Todo
	order []string
	mutex sync.RWMutex
}

var (
	_ TodoGateway     = (*MemoryTodoGateway)(nil)
	_ HealthDBGateway = (*MemoryTodoGateway)(nil)
)

func NewMemoryTodoGateway() *MemoryTodoGateway {
	return &MemoryTodoGateway{
		todos: make(map[string]entity.Todo),
	}
}

func (gateway *MemoryTodoGateway) FindAll(_ context.Context) ([]entity.Todo, error) {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	results := make([]entity.Todo, 0, len(gateway.order))
	for _, id := range gateway.order {
		results = append(results, gateway.todos[id])
	}
	return results, nil
}

func (gateway *MemoryTodoGateway) FindByID(_ context.Context, id string) (*entity.Todo, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}

	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	todo, ok := gateway.todos[id]
	if !ok {
		return nil, nil
	}
	return &todo, nil
}

func (gateway *MemoryTodoGateway) Create(_ context.Context, todo entity.Todo) (*entity.Todo, error) {
	now := time.Now().UTC()
	todo.ID = uuid.NewString()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	gateway.todos[todo.ID] = todo
	gateway.order = append(gateway.order, todo.ID)
	return &todo, nil
}

func (gateway *MemoryTodoGateway) UpdateByID(_ context.Context, id string, updated entity.Todo) (*entity.Todo, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}

	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	todo, ok := gateway.todos[id]
	if !ok {
		return nil, nil
	}

	todo.Title = updated.Title
	todo.Description = updated.Description
	todo.UpdatedAt = time.Now().UTC()
	gateway.todos[id] = todo
	return &todo, nil
}

func (gateway *MemoryTodoGateway) DeleteByID(_ context.Context, id string) (*entity.Todo, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}

	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	todo, ok := gateway.todos[id]
	if !ok {
		return nil, nil
	}

	delete(gateway.todos, id)
	for i, existing := range gateway.order {
		if existing == id {
			gateway.order = append(gateway.order[:i], gateway.order[i+1:]...)
			break
		}
	}
	return &todo, nil
}

func (gateway *MemoryTodoGateway) Health(_ context.Context) model.ComponentHealthStatus {
	return model.NewComponentHealthStatus(model.StatusUp, "memory")
}

// validateUUID rejects ids that the uuid keyed backends could never have generated
func validateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", model.ErrInvalidTodoID, id)
	}
	return nil
}
