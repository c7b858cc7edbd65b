package helpers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/logs"
)

// GetAWSCfg loads the shared AWS configuration. Empty region or profile fall back to the SDK's
// default resolution chain.
func GetAWSCfg(ctx context.Context, region, profile string, logger *slog.Logger) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithLogger(logs.AwsLogger(logger)),
		config.WithClientLogMode(aws.LogRetries),
		config.WithRetryMode(aws.RetryModeAdaptive),
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		return aws.Config{}, fmt.Errorf("no AWS region configured; pass --region or set one on the profile")
	}
	return cfg, nil
}

// NewEntityResolutionClient builds the client every handler shares.
func NewEntityResolutionClient(cfg aws.Config) *entityresolution.Client {
	return entityresolution.NewFromConfig(cfg)
}

// CallerIdentityAPI is the STS call used to resolve the account and partition.
type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Identity is where the caller's credentials live.
type Identity struct {
	AccountID string
	Partition string
}

// GetCallerIdentity asks STS who the credentials belong to. The partition comes from the
// caller ARN.
func GetCallerIdentity(ctx context.Context, client CallerIdentityAPI) (Identity, error) {
	out, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, fmt.Errorf("failed to get caller identity: %w", err)
	}

	callerArn, err := arn.Parse(aws.ToString(out.Arn))
	if err != nil {
		return Identity{}, fmt.Errorf("unexpected caller ARN %q: %w", aws.ToString(out.Arn), err)
	}

	return Identity{
		AccountID: aws.ToString(out.Account),
		Partition: callerArn.Partition,
	}, nil
}
