package model

import (
	"time"

	"todo-api/internal/domain/entity"
)

// TodoEventType names the write that produced a TodoEvent
type TodoEventType string

const (
	TodoCreated TodoEventType = "created"
	TodoUpdated TodoEventType = "updated"
	TodoDeleted TodoEventType = "deleted"
)

// TodoEvent is published after every successful write
type TodoEvent struct {
	Type       TodoEventType `json:"type"`
	Todo       entity.Todo   `json:"todo"`
	OccurredAt time.Time     `json:"occurredAt"`
}
