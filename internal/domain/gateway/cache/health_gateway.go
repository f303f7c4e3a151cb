package cache

import (
	"context"

	"todo-api/internal/domain/model"
	"todo-api/pkg/redis"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

type RedisHealthGateway struct {
	checker *redis.HealthChecker
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(checker *redis.HealthChecker) *RedisHealthGateway {
	return &RedisHealthGateway{checker: checker}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.checker.HealthCheck(ctx)

	status := model.StatusDown
	if check.Up {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{
		Status:  status,
		Details: check.Details,
	}
}
