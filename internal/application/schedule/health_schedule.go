package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/health"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

const (
	ComponentDatabase = "database"
	ComponentCache    = "cache"
	ComponentQueue    = "queue"
)

// HealthScheduler probes the backing components on a cron schedule and logs every status change.
type HealthScheduler struct {
	cron     *cron.Cron
	useCase  health.UseCase
	timeout  time.Duration
	statuses map[string]model.HealthStatus
	mutex    sync.Mutex
}

func NewHealthScheduler(useCase health.UseCase, timeout time.Duration) *HealthScheduler {
	return &HealthScheduler{
		cron:     cron.New(),
		useCase:  useCase,
		timeout:  timeout,
		statuses: make(map[string]model.HealthStatus),
	}
}

// InitHealthScheduleTasks registers the health check and runs a first probe right away
func (scheduler *HealthScheduler) InitHealthScheduleTasks(cronExpression string) error {
	if _, err := scheduler.cron.AddFunc(cronExpression, scheduler.CheckHealth); err != nil {
		return err
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("health.cron-started", cronExpression))

	go scheduler.CheckHealth()
	return nil
}

func (scheduler *HealthScheduler) CheckHealth() {
	ctx, cancel := context.WithTimeout(context.Background(), scheduler.timeout)
	defer cancel()

	response := scheduler.useCase.CheckHealth(ctx)

	scheduler.record(ComponentDatabase, response.Database)
	scheduler.record(ComponentCache, response.Cache)
	scheduler.record(ComponentQueue, response.Queue)
}

// Status returns the last observed status of a component, UNKNOWN before the first probe
func (scheduler *HealthScheduler) Status(component string) model.HealthStatus {
	scheduler.mutex.Lock()
	defer scheduler.mutex.Unlock()

	status, ok := scheduler.statuses[component]
	if !ok {
		return model.StatusUnknown
	}
	return status
}

// Stop halts the schedule and waits for a running probe to finish
func (scheduler *HealthScheduler) Stop() {
	<-scheduler.cron.Stop().Done()
}

func (scheduler *HealthScheduler) record(component string, current model.ComponentHealthStatus) {
	scheduler.mutex.Lock()
	previous, seen := scheduler.statuses[component]
	scheduler.statuses[component] = current.Status
	scheduler.mutex.Unlock()

	if seen && previous == current.Status {
		return
	}

	message := current.Details["message"]
	switch current.Status {
	case model.StatusUp:
		log.Info(msg.GetMessage("health.component-up", component))
	case model.StatusDown:
		log.Warn(msg.GetMessage("health.component-down", component, message))
	default:
		log.Debug(msg.GetMessage("health.component-unknown", component, message))
	}
}
