package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type SQSConfig struct {
	Region                string
	Endpoint              string
	AccessKeyID           string
	SecretAccessKey       string
	AccountEventsQueueURL string
}

func DefaultSQSConfig() *SQSConfig {
	return &SQSConfig{
		Region:                getEnvOrDefault("AWS_REGION", "us-east-1"),
		Endpoint:              getEnvOrDefault("AWS_SQS_ENDPOINT", ""),
		AccessKeyID:           getEnvOrDefault("AWS_ACCESS_KEY_ID", "dummy"),
		SecretAccessKey:       getEnvOrDefault("AWS_SECRET_ACCESS_KEY", "dummy"),
		AccountEventsQueueURL: getEnvOrDefault("AWS_SQS_ACCOUNT_EVENTS_QUEUE_URL", ""),
	}
}

// Enabled reports whether account events should be published at all.
func (c *SQSConfig) Enabled() bool {
	return c.AccountEventsQueueURL != ""
}

func (c *SQSConfig) GetClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := loadAWSConfig(ctx, c.Region, c.Endpoint, c.AccessKeyID, c.SecretAccessKey)
	if err != nil {
		return nil, err
	}

	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}
