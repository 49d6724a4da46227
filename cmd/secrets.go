package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// getStripeSecretKey prefers the environment variable; when only an
// SSM parameter name is configured the key is fetched from Parameter
// Store instead. Returns an empty key, not an error, when neither is
// set.
func getStripeSecretKey(ctx context.Context, settings ServerSettings) (string, error) {
	if settings.StripeSecretKey != "" {
		return settings.StripeSecretKey, nil
	}

	if settings.StripeSecretKeyParam == "" {
		return "", nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get aws config: %w", err)
	}

	ssmClient := ssm.NewFromConfig(cfg)

	out, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(settings.StripeSecretKeyParam),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch stripe secret key from ssm: %w", err)
	}

	return aws.ToString(out.Parameter.Value), nil
}
