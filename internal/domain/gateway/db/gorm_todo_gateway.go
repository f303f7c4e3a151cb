package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-api/internal/domain/entity"
)

type gormTodoRecord struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (gormTodoRecord) TableName() string {
	return "todos"
}

func (record gormTodoRecord) toEntity() *entity.Todo {
	return &entity.Todo{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	var records []gormTodoRecord
	if err := gateway.DB.WithContext(ctx).Order("created_at, id").Find(&records).Error; err != nil {
		return nil, err
	}

	results := make([]entity.Todo, 0, len(records))
	for _, record := range records {
		results = append(results, *record.toEntity())
	}
	return results, nil
}

func (gateway *GormTodoGateway) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}

	var record gormTodoRecord
	err := gateway.DB.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.toEntity(), nil
}

func (gateway *GormTodoGateway) Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	record := gormTodoRecord{
		ID:          uuid.NewString(),
		Title:       todo.Title,
		Description: todo.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := gateway.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toEntity(), nil
}

func (gateway *GormTodoGateway) UpdateByID(ctx context.Context, id string, updated entity.Todo) (*entity.Todo, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}

	var record gormTodoRecord
	result := gateway.DB.WithContext(ctx).
		Model(&record).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       updated.Title,
			"description": updated.Description,
			"updated_at":  time.Now().UTC().Truncate(time.Microsecond),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return record.toEntity(), nil
}

func (gateway *GormTodoGateway) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}

	var record gormTodoRecord
	result := gateway.DB.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&record)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return record.toEntity(), nil
}
