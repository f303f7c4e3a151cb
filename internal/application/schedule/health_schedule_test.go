package schedule

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"todo-api/configs"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

func TestMain(m *testing.M) {
	if err := msg.Load(configs.MessagesYAML); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeHealthUseCase struct {
	mutex    sync.Mutex
	database model.HealthStatus
	calls    int
}

func (f *fakeHealthUseCase) CheckHealth(context.Context) model.HealthResponse {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.calls++
	return model.HealthResponse{
		Status:   f.database,
		Database: model.NewComponentHealthStatus(f.database, "mongo"),
		Cache:    model.NewComponentHealthStatus(model.StatusUnknown, "disabled"),
		Queue:    model.NewComponentHealthStatus(model.StatusUnknown, "disabled"),
	}
}

func (f *fakeHealthUseCase) setDatabase(status model.HealthStatus) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.database = status
}

func (f *fakeHealthUseCase) callCount() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.calls
}

func TestCheckHealthTracksStatus(t *testing.T) {
	useCase := &fakeHealthUseCase{database: model.StatusDown}
	scheduler := NewHealthScheduler(useCase, time.Second)

	if got := scheduler.Status(ComponentDatabase); got != model.StatusUnknown {
		t.Fatalf("before probe=%s want=%s", got, model.StatusUnknown)
	}

	scheduler.CheckHealth()
	if got := scheduler.Status(ComponentDatabase); got != model.StatusDown {
		t.Fatalf("database=%s want=%s", got, model.StatusDown)
	}
	if got := scheduler.Status(ComponentCache); got != model.StatusUnknown {
		t.Fatalf("cache=%s want=%s", got, model.StatusUnknown)
	}

	useCase.setDatabase(model.StatusUp)
	scheduler.CheckHealth()
	if got := scheduler.Status(ComponentDatabase); got != model.StatusUp {
		t.Fatalf("database=%s want=%s", got, model.StatusUp)
	}
}

func TestInitHealthScheduleTasks(t *testing.T) {
	useCase := &fakeHealthUseCase{database: model.StatusUp}
	scheduler := NewHealthScheduler(useCase, time.Second)

	if err := scheduler.InitHealthScheduleTasks("@every 1h"); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer scheduler.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for useCase.callCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("initial health probe did not run")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestInitHealthScheduleTasksInvalidExpression(t *testing.T) {
	scheduler := NewHealthScheduler(&fakeHealthUseCase{}, time.Second)

	if err := scheduler.InitHealthScheduleTasks("not a cron"); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
}
