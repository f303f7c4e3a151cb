package db

import (
	"context"

	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// TodoCache is the subset of pkg/redis.Cache used to cache todos by id.
type TodoCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// CachedTodoGateway serves FindByID from a cache and keeps it in step with writes.
// Cache failures are logged and fall through to the delegate.
type CachedTodoGateway struct {
	delegate TodoGateway
	cache    TodoCache
}

var _ TodoGateway = (*CachedTodoGateway)(nil)

func NewCachedTodoGateway(delegate TodoGateway, cache TodoCache) *CachedTodoGateway {
	return &CachedTodoGateway{delegate: delegate, cache: cache}
}

func (gateway *CachedTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	return gateway.delegate.FindAll(ctx)
}

func (gateway *CachedTodoGateway) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	var cached entity.Todo
	found, err := gateway.cache.Get(ctx, id, &cached)
	if err != nil {
		log.Warn(msg.GetMessage("cache.read-failed", id, err), zap.Error(err))
	}
	if found {
		return &cached, nil
	}

	todo, err := gateway.delegate.FindByID(ctx, id)
	if err != nil || todo == nil {
		return todo, err
	}

	gateway.store(ctx, todo)
	return todo, nil
}

func (gateway *CachedTodoGateway) Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error) {
	created, err := gateway.delegate.Create(ctx, todo)
	if err != nil {
		return nil, err
	}

	gateway.store(ctx, created)
	return created, nil
}

func (gateway *CachedTodoGateway) UpdateByID(ctx context.Context, id string, updated entity.Todo) (*entity.Todo, error) {
	todo, err := gateway.delegate.UpdateByID(ctx, id, updated)
	gateway.evict(ctx, id)
	return todo, err
}

func (gateway *CachedTodoGateway) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	todo, err := gateway.delegate.DeleteByID(ctx, id)
	gateway.evict(ctx, id)
	return todo, err
}

func (gateway *CachedTodoGateway) store(ctx context.Context, todo *entity.Todo) {
	if err := gateway.cache.Set(ctx, todo.ID, todo); err != nil {
		log.Warn(msg.GetMessage("cache.write-failed", todo.ID, err), zap.Error(err))
	}
}

func (gateway *CachedTodoGateway) evict(ctx context.Context, id string) {
	if err := gateway.cache.Delete(ctx, id); err != nil {
		log.Warn(msg.GetMessage("cache.evict-failed", id, err), zap.Error(err))
	}
}
