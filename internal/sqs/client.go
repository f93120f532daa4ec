package sqs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/iyhunko/storefront-search/internal/config"
)

// clientMaxAttempts caps the attempts of a single SQS call.
const clientMaxAttempts = 3

// NewClient creates the SQS client shared by the checkout publisher and the notification consumer.
// A non-empty Endpoint (LocalStack) overrides the regional SQS endpoint.
func NewClient(ctx context.Context, conf config.AWSConfig) (*sqs.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(conf.Region),
		awsconfig.WithRetryMaxAttempts(clientMaxAttempts),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		}
	})
	slog.Debug("sqs client ready", slog.String("region", conf.Region), slog.String("endpoint", conf.Endpoint))
	return client, nil
}
