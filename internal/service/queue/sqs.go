package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/kingrain94/account-api/internal/config"
	"github.com/kingrain94/account-api/internal/domain"
)

type MessageType string

const (
	MessageTypeAccountCreated MessageType = "ACCOUNT_CREATED"
)

type Message struct {
	Type      MessageType     `json:"type"`
	AccountID string          `json:"accountId"`
	Account   *domain.Account `json:"account"`
	Timestamp time.Time       `json:"timestamp"`
}

// SendMessageAPI is the part of *sqs.Client the publisher needs.
type SendMessageAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type SQSService struct {
	client   SendMessageAPI
	queueURL string
	now      func() time.Time
}

func NewSQSService(client SendMessageAPI, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:   client,
		queueURL: config.AccountEventsQueueURL,
		now:      time.Now,
	}
}

func (s *SQSService) PublishAccountCreated(ctx context.Context, account *domain.Account) error {
	msg := Message{
		Type:      MessageTypeAccountCreated,
		AccountID: account.AccountID,
		Account:   account,
		Timestamp: s.now().UTC(),
	}

	return s.sendMessage(ctx, msg)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(s.queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
