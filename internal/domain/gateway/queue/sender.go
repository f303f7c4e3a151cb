package queue

import "context"

// Sender delivers a JSON serializable body to a named queue. pkg/sqs.Sender implements it.
type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any) error
}

// QueueURLResolver asks the broker for the address of a named queue on every call. pkg/sqs.Sender implements it.
type QueueURLResolver interface {
	LookupQueueURL(ctx context.Context, queueName string) (string, error)
}
