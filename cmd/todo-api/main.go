package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"todo-api/configs"
	"todo-api/internal/application/router"
	"todo-api/internal/application/schedule"
	cachegateway "todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	awsinfra "todo-api/internal/infra/aws"
	"todo-api/internal/infra/cache"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
	"todo-api/pkg/sqs"
)

func main() {
	defer log.Sync()

	// Init config
	env := configs.LoadEnv()
	if err := loadConfig(env); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	if err := log.SetLevel(resource.GetString("app.log.level")); err != nil {
		log.Warn("Invalid log level, keeping info", zap.Error(err))
	}

	appName := resource.GetString("app.name")
	if appName == "" {
		appName = env.ApplicationName
	}
	log.Info(msg.GetMessage("app.start", appName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init storage
	driver := resource.GetString("app.db.driver")
	log.Info(msg.GetMessage("db.opening", storageTarget(driver)))
	store, err := openStorage(ctx, driver)
	if err != nil {
		log.Fatal(msg.GetMessage("db.open-failed", storageTarget(driver), err))
	}

	var todoGateway db.TodoGateway = store.todoGateway

	// Init cache
	var cacheHealth cachegateway.HealthGateway
	var redisClient *redis.Client
	if resource.GetBool("app.cache.enabled") {
		redisClient, err = cache.NewRedisClient()
		if err != nil {
			log.Fatal("Failed to create redis client", zap.Error(err))
		}
		todoCache := cache.NewTodoCache(redisClient)
		todoGateway = db.NewCachedTodoGateway(todoGateway, todoCache)
		cacheHealth = cachegateway.NewRedisHealthGateway(redis.NewHealthChecker(redisClient))
		log.Info(msg.GetMessage("cache.enabled", todoCache.Name(), redisClient.GetConfig().Addr()))
	}

	// Init events
	var publisher queue.TodoEventPublisher
	var queueHealth queue.HealthGateway
	if resource.GetBool("app.events.enabled") {
		awsConfig, err := awsinfra.LoadConfig(ctx)
		if err != nil {
			log.Fatal("Failed to load AWS configuration", zap.Error(err))
		}
		queueName := resource.GetString("app.events.queue-name")
		sender := sqs.NewSender(awsinfra.NewSqsClient(awsConfig))
		publisher = queue.NewSenderTodoEventPublisher(sender, queueName)
		queueHealth = queue.NewQueueHealthGateway(sender, queueName)
		log.Info(msg.GetMessage("events.enabled", queueName))
	}

	// Init UseCase
	todoUseCase := todo.NewTodoUseCase(todoGateway, publisher)
	healthUseCase := health.NewHealthUseCase(store.healthGateway, cacheHealth, queueHealth)

	// Init Schedule
	healthScheduler := schedule.NewHealthScheduler(healthUseCase, resource.GetDuration("app.health.timeout"))
	if err := healthScheduler.InitHealthScheduleTasks(resource.GetString("app.health.cron")); err != nil {
		log.Fatal("Invalid health cron expression", zap.Error(err))
	}

	// Init Routes
	e := router.New(router.Config{
		ContextPath:    resource.GetString("app.server.context-path"),
		SwaggerEnabled: resource.GetBool("app.swagger.enabled"),
	}, todoUseCase)

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping", appName))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	healthScheduler.Stop()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn(msg.GetMessage("db.disconnect-failed", "redis", err))
		}
	}
	if err := store.close(shutdownCtx); err != nil {
		log.Warn(msg.GetMessage("db.disconnect-failed", storageTarget(driver), err))
	}

	log.Info(msg.GetMessage("app.stopped", appName))
}

// loadConfig reads the files named by the environment, falling back to the embedded defaults
func loadConfig(env *configs.EnvConfig) error {
	var err error
	if env.PropertiesFilePath != "" {
		err = resource.Init(env.PropertiesFilePath)
	} else {
		err = resource.Load(configs.ApplicationYAML)
	}
	if err != nil {
		return err
	}

	if env.MessagesFilePath != "" {
		return msg.Init(env.MessagesFilePath)
	}
	return msg.Load(configs.MessagesYAML)
}
