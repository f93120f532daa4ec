package sqs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// PublisherAPI defines the interface for SQS operations used by Publisher.
type PublisherAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Publisher handles publishing messages to AWS SQS.
type Publisher struct {
	client   PublisherAPI
	queueURL string
}

// NewPublisher creates a new SQS Publisher with the given client and queue URL.
func NewPublisher(client PublisherAPI, queueURL string) *Publisher {
	return &Publisher{
		client:   client,
		queueURL: queueURL,
	}
}

// ActionCheckout is the action of every CheckoutMessage.
const ActionCheckout = "checkout"

// CheckoutMessage represents a completed checkout. Total is a decimal string in Currency.
type CheckoutMessage struct {
	Action        string `json:"action"`
	SessionID     string `json:"session_id"`
	PaymentMethod string `json:"payment_method"`
	Total         string `json:"total"`
	Currency      string `json:"currency"`
	Items         int    `json:"items"`
}

// PublishCheckoutMessage publishes a checkout message to the SQS queue.
func (p *Publisher) PublishCheckoutMessage(ctx context.Context, msg CheckoutMessage) error {
	messageBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(messageBody)),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
