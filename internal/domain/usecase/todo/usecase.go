package todo

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAll(ctx context.Context) ([]entity.Todo, error)
	FindByID(ctx context.Context, id string) (*entity.Todo, error)
	Create(ctx context.Context, dto model.CreateTodoDTO) (*entity.Todo, error)
	UpdateByID(ctx context.Context, id string, dto model.UpdateTodoDTO) (*entity.Todo, error)
	DeleteByID(ctx context.Context, id string) (*entity.Todo, error)
}
