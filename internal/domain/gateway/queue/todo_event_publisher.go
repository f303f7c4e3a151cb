package queue

import (
	"context"

	"todo-api/internal/domain/model"
)

type TodoEventPublisher interface {
	Publish(ctx context.Context, event model.TodoEvent) error
}

// SenderTodoEventPublisher publishes todo events to a single queue
type SenderTodoEventPublisher struct {
	sender    Sender
	queueName string
}

var _ TodoEventPublisher = (*SenderTodoEventPublisher)(nil)

func NewSenderTodoEventPublisher(sender Sender, queueName string) *SenderTodoEventPublisher {
	return &SenderTodoEventPublisher{sender: sender, queueName: queueName}
}

func (publisher *SenderTodoEventPublisher) Publish(ctx context.Context, event model.TodoEvent) error {
	return publisher.sender.SendMessage(ctx, publisher.queueName, event)
}
