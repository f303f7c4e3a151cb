package health

import (
	"context"

	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.HealthGateway
	queueGateway queue.HealthGateway
}

// NewHealthUseCase aggregates component health. cacheGateway and queueGateway may be nil when the component is disabled.
func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)

	cacheHealth := disabled()
	if useCase.cacheGateway != nil {
		cacheHealth = useCase.cacheGateway.Health(ctx)
	}

	queueHealth := disabled()
	if useCase.queueGateway != nil {
		queueHealth = useCase.queueGateway.Health(ctx)
	}

	overallStatus := model.StatusUp
	for _, component := range []model.ComponentHealthStatus{dbHealth, cacheHealth, queueHealth} {
		if component.Status == model.StatusDown {
			overallStatus = model.StatusDown
		}
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
		Queue:    queueHealth,
	}
}

func disabled() model.ComponentHealthStatus {
	return model.NewComponentHealthStatus(model.StatusUnknown, "disabled")
}
