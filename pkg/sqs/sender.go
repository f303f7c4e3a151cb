package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSClient defines the interface for SQS operations
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Sender handles sending messages to SQS queues
type Sender struct {
	sqsClient SQSClient
	queueURLs map[string]string
	mutex     sync.RWMutex
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
		queueURLs: make(map[string]string),
	}
}

// SendMessage serializes the provided body to JSON and sends it to the specified queue
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any) error {
	queueURL, err := s.QueueURL(ctx, queueName)
	if err != nil {
		return err
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	_, err = s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &queueURL,
		MessageBody: &messageBody,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}

	return nil
}

// QueueURL resolves the URL for the specified queue name, remembering successful lookups
func (s *Sender) QueueURL(ctx context.Context, queueName string) (string, error) {
	s.mutex.RLock()
	queueURL, ok := s.queueURLs[queueName]
	s.mutex.RUnlock()
	if ok {
		return queueURL, nil
	}

	return s.LookupQueueURL(ctx, queueName)
}

// LookupQueueURL always asks SQS for the queue URL and refreshes the remembered value
func (s *Sender) LookupQueueURL(ctx context.Context, queueName string) (string, error) {
	result, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}
	if result.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queueName)
	}

	s.mutex.Lock()
	s.queueURLs[queueName] = *result.QueueUrl
	s.mutex.Unlock()
	return *result.QueueUrl, nil
}
