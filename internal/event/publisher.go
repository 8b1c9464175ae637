// Package event publishes catalog change notifications to AWS SQS so that
// downstream consumers (search indexers, cache warmers) can react to catalog
// mutations. Publishing is best-effort: a failed publish is logged and never
// fails the originating request.
package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// sqsAPI is the subset of the SQS client used by the publisher.
type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Publisher handles publishing catalog messages to AWS SQS.
type Publisher struct {
	client   sqsAPI
	queueURL string
}

// NewPublisher creates a new Publisher with the given client and queue URL.
func NewPublisher(client *sqs.Client, queueURL string) *Publisher {
	return &Publisher{
		client:   client,
		queueURL: queueURL,
	}
}

// CatalogMessage represents a message about a catalog change.
type CatalogMessage struct {
	Action string `json:"action"` // created, updated, deleted
	Entity string `json:"entity"` // product, category
	ID     string `json:"id"`
	Name   string `json:"name"`
}

// PublishCatalogMessage publishes a catalog message to the SQS queue.
func (p *Publisher) PublishCatalogMessage(ctx context.Context, msg CatalogMessage) error {
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
