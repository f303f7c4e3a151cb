package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"todo-api/internal/domain/model"
)

var todoRowColumns = []string{"id", "title", "description", "created_at", "updated_at"}

func newSQLCTestGateway(t *testing.T) (*SQLCTodoGateway, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		_ = sqlDB.Close()
	})
	return NewSQLCTodoGateway(sqlDB), mock
}

func TestSQLCTodoGatewayFindAll(t *testing.T) {
	gateway, mock := newSQLCTestGateway(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	first, second := uuid.NewString(), uuid.NewString()

	mock.ExpectQuery(`SELECT id, title, description, created_at, updated_at\s+FROM todos\s+ORDER BY created_at, id`).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).
			AddRow(first, "Buy milk", "2%", at, at).
			AddRow(second, "Walk dog", "park", at.Add(time.Minute), at.Add(time.Minute)))

	todos, err := gateway.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(todos) != 2 || todos[0].ID != first || todos[1].Title != "Walk dog" {
		t.Fatalf("todos=%+v", todos)
	}
}

func TestSQLCTodoGatewayFindAllEmptyAndError(t *testing.T) {
	gateway, mock := newSQLCTestGateway(t)

	mock.ExpectQuery(`FROM todos`).WillReturnRows(sqlmock.NewRows(todoRowColumns))
	todos, err := gateway.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if todos == nil || len(todos) != 0 {
		t.Fatalf("todos=%v want empty non-nil slice", todos)
	}

	dbErr := errors.New("connection refused")
	mock.ExpectQuery(`FROM todos`).WillReturnError(dbErr)
	if _, err := gateway.FindAll(context.Background()); !errors.Is(err, dbErr) {
		t.Fatalf("err=%v want=%v", err, dbErr)
	}
}

func TestSQLCTodoGatewayFindByID(t *testing.T) {
	gateway, mock := newSQLCTestGateway(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	id := uuid.NewString()

	mock.ExpectQuery(`FROM todos\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(id, "Buy milk", "2%", at, at))

	found, err := gateway.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.ID != id || found.Title != "Buy milk" || !found.CreatedAt.Equal(at) {
		t.Fatalf("found=%+v", found)
	}

	missing := uuid.NewString()
	mock.ExpectQuery(`FROM todos\s+WHERE id = \$1`).
		WithArgs(missing).
		WillReturnRows(sqlmock.NewRows(todoRowColumns))

	if found, err := gateway.FindByID(context.Background(), missing); err != nil || found != nil {
		t.Fatalf("missing found=%+v err=%v", found, err)
	}
}

func TestSQLCTodoGatewayCreate(t *testing.T) {
	gateway, mock := newSQLCTestGateway(t)

	mock.ExpectExec(`INSERT INTO todos \(id, title, description, created_at, updated_at\)\s+VALUES \(\$1, \$2, \$3, \$4, \$5\)`).
		WithArgs(sqlmock.AnyArg(), "Buy milk", "2%", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := gateway.Create(context.Background(), todoWith("Buy milk", "2%"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Fatalf("id=%q is not a uuid: %v", created.ID, err)
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("createdAt=%v updatedAt=%v", created.CreatedAt, created.UpdatedAt)
	}

	dbErr := errors.New("duplicate key")
	mock.ExpectExec(`INSERT INTO todos`).WillReturnError(dbErr)
	if _, err := gateway.Create(context.Background(), todoWith("a", "b")); !errors.Is(err, dbErr) {
		t.Fatalf("err=%v want=%v", err, dbErr)
	}
}

func TestSQLCTodoGatewayUpdateByID(t *testing.T) {
	gateway, mock := newSQLCTestGateway(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	updatedAt := created.Add(time.Hour)
	id := uuid.NewString()

	mock.ExpectQuery(`UPDATE todos\s+SET title = \$1, description = \$2, updated_at = \$3\s+WHERE id = \$4\s+RETURNING id, title, description, created_at, updated_at`).
		WithArgs("Buy oat milk", "1l", sqlmock.AnyArg(), id).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(id, "Buy oat milk", "1l", created, updatedAt))

	updated, err := gateway.UpdateByID(context.Background(), id, todoWith("Buy oat milk", "1l"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil || updated.Title != "Buy oat milk" || !updated.CreatedAt.Equal(created) || !updated.UpdatedAt.Equal(updatedAt) {
		t.Fatalf("updated=%+v", updated)
	}

	missing := uuid.NewString()
	mock.ExpectQuery(`UPDATE todos`).
		WithArgs("a", "b", sqlmock.AnyArg(), missing).
		WillReturnRows(sqlmock.NewRows(todoRowColumns))

	if updated, err := gateway.UpdateByID(context.Background(), missing, todoWith("a", "b")); err != nil || updated != nil {
		t.Fatalf("missing updated=%+v err=%v", updated, err)
	}
}

func TestSQLCTodoGatewayDeleteByID(t *testing.T) {
	gateway, mock := newSQLCTestGateway(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	id := uuid.NewString()

	mock.ExpectQuery(`DELETE FROM todos\s+WHERE id = \$1\s+RETURNING id, title, description, created_at, updated_at`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(id, "Buy milk", "2%", at, at))

	deleted, err := gateway.DeleteByID(context.Background(), id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted == nil || deleted.ID != id || deleted.Title != "Buy milk" {
		t.Fatalf("deleted=%+v", deleted)
	}

	mock.ExpectQuery(`DELETE FROM todos`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(todoRowColumns))

	if again, err := gateway.DeleteByID(context.Background(), id); err != nil || again != nil {
		t.Fatalf("second delete=%+v err=%v", again, err)
	}

	dbErr := errors.New("connection reset")
	mock.ExpectQuery(`DELETE FROM todos`).
		WithArgs(id).
		WillReturnError(dbErr)

	if _, err := gateway.DeleteByID(context.Background(), id); !errors.Is(err, dbErr) {
		t.Fatalf("err=%v want=%v", err, dbErr)
	}
}

func TestSQLCTodoGatewayMalformedID(t *testing.T) {
	gateway, _ := newSQLCTestGateway(t)
	ctx := context.Background()

	if _, err := gateway.FindByID(ctx, "not-a-uuid"); !errors.Is(err, model.ErrInvalidTodoID) {
		t.Fatalf("find err=%v want=%v", err, model.ErrInvalidTodoID)
	}
	if _, err := gateway.UpdateByID(ctx, "not-a-uuid", todoWith("a", "b")); !errors.Is(err, model.ErrInvalidTodoID) {
		t.Fatalf("update err=%v want=%v", err, model.ErrInvalidTodoID)
	}
	if _, err := gateway.DeleteByID(ctx, "not-a-uuid"); !errors.Is(err, model.ErrInvalidTodoID) {
		t.Fatalf("delete err=%v want=%v", err, model.ErrInvalidTodoID)
	}
}
