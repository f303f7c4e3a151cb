package queue

import (
	"context"

	"todo-api/internal/domain/model"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// QueueHealthGateway reports the queue as UP while the broker can resolve its URL
type QueueHealthGateway struct {
	resolver  QueueURLResolver
	queueName string
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway(resolver QueueURLResolver, queueName string) *QueueHealthGateway {
	return &QueueHealthGateway{resolver: resolver, queueName: queueName}
}

func (gateway *QueueHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	queueURL, err := gateway.resolver.LookupQueueURL(ctx, gateway.queueName)
	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"queue":   gateway.queueName,
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"queue":   gateway.queueName,
			"url":     queueURL,
			"message": string(model.StatusUp),
		},
	}
}
