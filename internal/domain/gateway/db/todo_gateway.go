package db

import (
	"context"

	"todo-api/internal/domain/entity"
)

// TodoGateway is the storage boundary of the todo collection.
// A missing todo is reported as (nil, nil); a malformed id as model.ErrInvalidTodoID.
type TodoGateway interface {
	FindAll(ctx context.Context) ([]entity.Todo, error)
	FindByID(ctx context.Context, id string) (*entity.Todo, error)

	Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error)
	UpdateByID(ctx context.Context, id string, updated entity.Todo) (*entity.Todo, error)

	DeleteByID(ctx context.Context, id string) (*entity.Todo, error)
}
