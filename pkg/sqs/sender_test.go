package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQSClient struct {
	queueURL      string
	getURLErr     error
	sendErr       error
	getURLCalls   int
	sentQueueURLs []string
	sentBodies    []string
}

func (f *fakeSQSClient) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.getURLCalls++
	if f.getURLErr != nil {
		return nil, f.getURLErr
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String(f.queueURL + "/" + *params.QueueName)}, nil
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sentQueueURLs = append(f.sentQueueURLs, *params.QueueUrl)
	f.sentBodies = append(f.sentBodies, *params.MessageBody)
	return &sqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil
}

func TestSendMessageSerializesBody(t *testing.T) {
	client := &fakeSQSClient{queueURL: "http://localhost:4566/000000000000"}
	sender := NewSender(client)

	body := map[string]string{"type": "created", "id": "abc"}
	if err := sender.SendMessage(context.Background(), "todo-events", body); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := sender.SendMessage(context.Background(), "todo-events", body); err != nil {
		t.Fatalf("send: %v", err)
	}

	if client.getURLCalls != 1 {
		t.Fatalf("GetQueueUrl calls=%d want=1", client.getURLCalls)
	}
	if len(client.sentBodies) != 2 {
		t.Fatalf("sent=%d want=2", len(client.sentBodies))
	}
	if client.sentQueueURLs[0] != "http://localhost:4566/000000000000/todo-events" {
		t.Fatalf("queue url=%s", client.sentQueueURLs[0])
	}

	var decoded map[string]string
	if err := json.Unmarshal([]byte(client.sentBodies[0]), &decoded); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if decoded["id"] != "abc" || decoded["type"] != "created" {
		t.Fatalf("decoded=%v", decoded)
	}
}

func TestSendMessageQueueLookupFailure(t *testing.T) {
	lookupErr := errors.New("queue does not exist")
	client := &fakeSQSClient{getURLErr: lookupErr}
	sender := NewSender(client)

	err := sender.SendMessage(context.Background(), "todo-events", "x")
	if !errors.Is(err, lookupErr) {
		t.Fatalf("err=%v want wrapped %v", err, lookupErr)
	}
	if len(client.sentBodies) != 0 {
		t.Fatalf("nothing should be sent")
	}
}

func TestSendMessageSendFailure(t *testing.T) {
	sendErr := errors.New("throttled")
	client := &fakeSQSClient{queueURL: "http://q", sendErr: sendErr}
	sender := NewSender(client)

	if err := sender.SendMessage(context.Background(), "todo-events", "x"); !errors.Is(err, sendErr) {
		t.Fatalf("err=%v want wrapped %v", err, sendErr)
	}
}

func TestSendMessageRejectsUnserializableBody(t *testing.T) {
	client := &fakeSQSClient{queueURL: "http://q"}
	sender := NewSender(client)

	if err := sender.SendMessage(context.Background(), "todo-events", make(chan int)); err == nil {
		t.Fatalf("expected serialization error")
	}
}

func TestLookupQueueURLBypassesRememberedURL(t *testing.T) {
	client := &fakeSQSClient{queueURL: "http://q"}
	sender := NewSender(client)
	ctx := context.Background()

	if _, err := sender.QueueURL(ctx, "todo-events"); err != nil {
		t.Fatalf("queue url: %v", err)
	}
	if _, err := sender.QueueURL(ctx, "todo-events"); err != nil {
		t.Fatalf("queue url: %v", err)
	}
	if client.getURLCalls != 1 {
		t.Fatalf("getURLCalls=%d want=1", client.getURLCalls)
	}

	client.getURLErr = errors.New("connection refused")
	if _, err := sender.LookupQueueURL(ctx, "todo-events"); !errors.Is(err, client.getURLErr) {
		t.Fatalf("err=%v want=%v", err, client.getURLErr)
	}
	if client.getURLCalls != 2 {
		t.Fatalf("getURLCalls=%d want=2", client.getURLCalls)
	}
}
