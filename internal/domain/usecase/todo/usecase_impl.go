package todo

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type todoUseCase struct {
	gateway   db.TodoGateway
	publisher queue.TodoEventPublisher
	now       func() time.Time
}

// NewTodoUseCase builds the todo use case. publisher may be nil, in which case no events are published.
func NewTodoUseCase(gateway db.TodoGateway, publisher queue.TodoEventPublisher) UseCase {
	return &todoUseCase{
		gateway:   gateway,
		publisher: publisher,
		now:       time.Now,
	}
}

func (uc *todoUseCase) FindAll(ctx context.Context) ([]entity.Todo, error) {
	todos, err := uc.gateway.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find all todos: %w", err)
	}
	if todos == nil {
		todos = []entity.Todo{}
	}
	return todos, nil
}

func (uc *todoUseCase) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	todo, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find todo %s: %w", id, err)
	}
	if todo == nil {
		return nil, model.ErrTodoNotFound
	}
	return todo, nil
}

func (uc *todoUseCase) Create(ctx context.Context, dto model.CreateTodoDTO) (*entity.Todo, error) {
	if err := validate(dto.Title, dto.Description); err != nil {
		return nil, err
	}

	created, err := uc.gateway.Create(ctx, entity.Todo{
		Title:       dto.Title,
		Description: dto.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	uc.publish(ctx, model.TodoCreated, *created)
	return created, nil
}

func (uc *todoUseCase) UpdateByID(ctx context.Context, id string, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	if err := validate(dto.Title, dto.Description); err != nil {
		return nil, err
	}

	updated, err := uc.gateway.UpdateByID(ctx, id, entity.Todo{
		Title:       dto.Title,
		Description: dto.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("update todo %s: %w", id, err)
	}
	if updated == nil {
		return nil, model.ErrTodoNotFound
	}

	uc.publish(ctx, model.TodoUpdated, *updated)
	return updated, nil
}

func (uc *todoUseCase) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	deleted, err := uc.gateway.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete todo %s: %w", id, err)
	}
	if deleted == nil {
		return nil, model.ErrTodoNotFound
	}

	uc.publish(ctx, model.TodoDeleted, *deleted)
	return deleted, nil
}

// publish is best effort: the write already happened, so a failure is only logged
func (uc *todoUseCase) publish(ctx context.Context, eventType model.TodoEventType, todo entity.Todo) {
	if uc.publisher == nil {
		return
	}

	event := model.TodoEvent{
		Type:       eventType,
		Todo:       todo,
		OccurredAt: uc.now().UTC(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		log.Error(msg.GetMessage("events.publish-failed", string(eventType), todo.ID, err),
			zap.String("todo_id", todo.ID),
			zap.Error(err),
		)
	}
}

func validate(title, description string) error {
	if title == "" {
		return fmt.Errorf("%w: %s", model.ErrInvalidTodo, msg.GetMessage("todo.validation.title-required"))
	}
	if description == "" {
		return fmt.Errorf("%w: %s", model.ErrInvalidTodo, msg.GetMessage("todo.validation.description-required"))
	}
	return nil
}
