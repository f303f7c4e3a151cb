package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"todo-api/internal/domain/entity"
)

const todoColumns = `id, title, description, created_at, updated_at`

type SQLCTodoGateway struct {
	DB *sql.DB
}

var _ TodoGateway = (*SQLCTodoGateway)(nil)

func NewSQLCTodoGateway(db *sql.DB) *SQLCTodoGateway {
	return &SQLCTodoGateway{DB: db}
}

func (gateway *SQLCTodoGateway) FindAll(ctx context.Context) (results []entity.Todo, err error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results = make([]entity.Todo, 0)
	for rows.Next() {
		var t entity.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *SQLCTodoGateway) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}

	row := gateway.DB.QueryRowContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1`, id)
	return scanTodo(row)
}

func (gateway *SQLCTodoGateway) Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error) {
	todo.ID = uuid.NewString()
	now := time.Now().UTC().Truncate(time.Microsecond)
	todo.CreatedAt = now
	todo.UpdatedAt = now

	_, err := gateway.DB.ExecContext(ctx, `
		INSERT INTO todos (`+todoColumns+`)
		VALUES ($1, $2, $3, $4, $5)`,
		todo.ID, todo.Title, todo.Description, todo.CreatedAt, todo.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &todo, nil
}

func (gateway *SQLCTodoGateway) UpdateByID(ctx context.Context, id string, updated entity.Todo) (*entity.Todo, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}

	row := gateway.DB.QueryRowContext(ctx, `
		UPDATE todos
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4
		RETURNING `+todoColumns,
		updated.Title, updated.Description, time.Now().UTC().Truncate(time.Microsecond), id)
	return scanTodo(row)
}

func (gateway *SQLCTodoGateway) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}

	row := gateway.DB.QueryRowContext(ctx, `
		DELETE FROM todos
		WHERE id = $1
		RETURNING `+todoColumns, id)
	return scanTodo(row)
}

func scanTodo(row *sql.Row) (*entity.Todo, error) {
	var t entity.Todo
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
