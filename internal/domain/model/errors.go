package model

import "errors"

var (
	// ErrTodoNotFound is returned when no todo matches the requested id.
	ErrTodoNotFound = errors.New("todo not found")
	// ErrInvalidTodoID is returned when an id cannot be a storage identifier, e.g. a non hex ObjectID.
	ErrInvalidTodoID = errors.New("invalid todo id")
	// ErrInvalidTodo is returned when a todo is missing a required field.
	ErrInvalidTodo = errors.New("invalid todo")
)
