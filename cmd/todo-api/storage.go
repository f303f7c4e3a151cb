package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"todo-api/internal/domain/gateway/db"
	gormdb "todo-api/internal/infra/database/gorm"
	"todo-api/internal/infra/database/mongodb"
	"todo-api/internal/infra/database/sqlc"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

const (
	driverMongo  = "mongo"
	driverGorm   = "gorm"
	driverSQLC   = "sqlc"
	driverMemory = "memory"
)

// storage bundles the todo gateway selected by app.db.driver with its health probe and release hook
type storage struct {
	todoGateway   db.TodoGateway
	healthGateway db.HealthDBGateway
	close         func(ctx context.Context) error
}

func openStorage(ctx context.Context, driver string) (*storage, error) {
	switch driver {
	case driverMongo:
		client, err := mongodb.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		return &storage{
			todoGateway:   db.NewMongoTodoGateway(mongodb.Collection(client)),
			healthGateway: db.NewMongoHealthDBGateway(client),
			close:         client.Disconnect,
		}, nil

	case driverGorm:
		gormDB, err := gormdb.Open()
		if err != nil {
			return nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, err
		}
		return &storage{
			todoGateway:   db.NewGormTodoGateway(gormDB),
			healthGateway: db.NewGormHealthDBGateway(gormDB),
			close:         func(context.Context) error { return sqlDB.Close() },
		}, nil

	case driverSQLC:
		sqlDB, err := sqlc.Open()
		if err != nil {
			return nil, err
		}
		return &storage{
			todoGateway:   db.NewSQLCTodoGateway(sqlDB),
			healthGateway: db.NewSQLCHealthDBGateway(sqlDB),
			close:         func(context.Context) error { return sqlDB.Close() },
		}, nil

	case driverMemory:
		gateway := db.NewMemoryTodoGateway()
		return &storage{
			todoGateway:   gateway,
			healthGateway: gateway,
			close:         func(context.Context) error { return nil },
		}, nil
	}

	return nil, errors.New(msg.GetMessage("app.config.invalid-driver", driver))
}

// storageTarget names the configured backend for logs, without credentials
func storageTarget(driver string) string {
	switch driver {
	case driverMongo:
		return redactURI(resource.GetString("app.db.mongo.uri"))
	case driverGorm, driverSQLC:
		return fmt.Sprintf("postgres %s:%s/%s",
			resource.GetString("app.db.postgres.host"),
			resource.GetString("app.db.postgres.port"),
			resource.GetString("app.db.postgres.database"))
	}
	return driver
}

// redactURI drops the user info of a connection string. Unparsable values are not echoed.
func redactURI(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid uri>"
	}
	u.User = nil
	return u.String()
}
