package db

import (
	"context"

	"gorm.io/gorm"

	"todo-api/internal/domain/model"
)

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return model.NewComponentHealthStatus(model.StatusDown, err.Error())
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		return model.NewComponentHealthStatus(model.StatusDown, err.Error())
	}

	return model.NewComponentHealthStatus(model.StatusUp, string(model.StatusUp))
}
