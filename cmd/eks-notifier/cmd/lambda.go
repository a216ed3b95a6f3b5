package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aws-samples/eks-notifier/internal/common"
	"github.com/aws-samples/eks-notifier/internal/config"
	"github.com/aws-samples/eks-notifier/internal/factory"
	"github.com/aws-samples/eks-notifier/internal/log"
	"github.com/aws-samples/eks-notifier/internal/trigger"
	"github.com/aws-samples/eks-notifier/pkg/pipeline"
)

// lambdaCmd represents the lambda command
var lambdaCmd = &cobra.Command{
	Use:     "lambda",
	Short:   "Process triggers as an AWS Lambda function",
	PreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Set max memory from the function configuration
		err := common.SetMemLimit()
		if err != nil {
			return err
		}

		main, err := factory.CreateMain(cmd.Context(), *conf)
		if err != nil {
			return fmt.Errorf("failed to create router: %w", err)
		}

		registry := prometheus.NewRegistry()

		processing, err := factory.DecorateProcessing(main, registry)
		if err != nil {
			return fmt.Errorf("failed to decorate router: %w", err)
		}

		// Never returns
		lambda.Start(newLambdaHandler(processing, registry, conf.Metrics, log.Logger()))

		return nil
	},
}

type lambdaHandler func(ctx context.Context, raw json.RawMessage) error

// newLambdaHandler maps one Lambda invocation to one trigger.
// A payload that is not JSON is processed as a scheduled trigger.
func newLambdaHandler(processing pipeline.Processing[trigger.Event], gatherer prometheus.Gatherer, metrics config.Metrics, logger logr.Logger) lambdaHandler {
	return func(ctx context.Context, raw json.RawMessage) error {
		invocationID := uuid.NewString()
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			invocationID = lc.AwsRequestID
		}

		logger := log.WithInvocation(logger, invocationID)

		event, err := trigger.Decode(raw)
		if err != nil {
			logger.Error(err, "Invalid trigger, running the scheduled checks", "payload", string(raw))
		}

		err = processing.Process(logr.NewContext(ctx, logger), event)
		if err != nil {
			logger.Error(err, "Processing failed")
		}

		pushErr := factory.PushMetrics(metrics, gatherer, map[string]string{"invocation": invocationID})
		if pushErr != nil {
			logger.Error(pushErr, "Failed to push metrics")
		}

		return err
	}
}

func init() {
	rootCmd.AddCommand(lambdaCmd)
}
