package factory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	sar "github.com/aws/aws-sdk-go-v2/service/serverlessapplicationrepository"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/smithy-go/logging"
	"github.com/go-logr/logr"

	"github.com/aws-samples/eks-notifier/internal/config"
	"github.com/aws-samples/eks-notifier/internal/log"
)

// LoadAWSConfig uses static credentials when both keys are set, the default chain otherwise.
// SDK calls are attempted once.
func LoadAWSConfig(ctx context.Context, region string, creds config.AWSCreds) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithLogger(AWSLogger{log.Logger()}),
		awsconfig.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}),
	}

	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	if creds.AccessKeyID != "" && creds.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, "")))
	}

	ret, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to create aws config: %w", err)
	}

	return ret, nil
}

func CreateEKSClient(awsConfig aws.Config) *eks.Client {
	return eks.NewFromConfig(awsConfig)
}

func CreateSNSClient(awsConfig aws.Config) *sns.Client {
	return sns.NewFromConfig(awsConfig)
}

func CreateSARClient(awsConfig aws.Config) *sar.Client {
	return sar.NewFromConfig(awsConfig)
}

type AWSLogger struct {
	logger logr.Logger
}

func (a AWSLogger) Logf(classification logging.Classification, format string, v ...interface{}) {
	level := 0

	switch classification {
	case logging.Debug:
		level = 3
	case logging.Warn:
		level = 0
	default:
		return
	}

	msg := fmt.Sprintf(format, v...)

	a.logger.V(level).Info(msg, "source", "aws-sdk")
}
