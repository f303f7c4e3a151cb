package db

import (
	"context"
	"database/sql"

	"todo-api/internal/domain/model"
)

type SQLCHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db}
}

func (gateway *SQLCHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if err := gateway.DB.PingContext(ctx); err != nil {
		return model.NewComponentHealthStatus(model.StatusDown, err.Error())
	}
	return model.NewComponentHealthStatus(model.StatusUp, string(model.StatusUp))
}
