package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aws-samples/eks-notifier/internal/common"
	"github.com/aws-samples/eks-notifier/internal/factory"
	"github.com/aws-samples/eks-notifier/internal/log"
	"github.com/aws-samples/eks-notifier/internal/trigger"
)

var eventFile string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Process a single trigger and exit",
	Long:    "Process a single trigger read from a file, or from stdin with '-'. Without --event, run the scheduled checks.",
	PreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		invocationID := uuid.NewString()
		logger := log.WithInvocation(log.Logger(), invocationID)

		event, err := readEvent(eventFile)
		if err != nil {
			return err
		}

		// Listen to sigterm and interrupt signals
		ctx := common.SetupSignalHandler(cmd.Context())

		main, err := factory.CreateMain(ctx, *conf)
		if err != nil {
			return fmt.Errorf("failed to create router: %w", err)
		}

		registry := prometheus.NewRegistry()

		processing, err := factory.DecorateProcessing(main, registry)
		if err != nil {
			return fmt.Errorf("failed to decorate router: %w", err)
		}

		err = processing.Process(logr.NewContext(ctx, logger), event)
		if err != nil {
			logger.Error(err, "Processing failed")
		}

		pushErr := factory.PushMetrics(conf.Metrics, registry, map[string]string{"invocation": invocationID})
		if pushErr != nil {
			logger.Error(pushErr, "Failed to push metrics")
		}

		logger.V(2).Info("Processing done")

		return err
	},
}

func readEvent(path string) (trigger.Event, error) {
	if path == "" {
		return trigger.Scheduled(), nil
	}

	var raw []byte
	var err error

	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}

	if err != nil {
		return trigger.Event{}, fmt.Errorf("failed to read event %s: %w", path, err)
	}

	ret, err := trigger.Decode(raw)
	if err != nil {
		return trigger.Event{}, fmt.Errorf("failed to decode event %s: %w", path, err)
	}

	return ret, nil
}

func init() {
	runCmd.Flags().StringVar(&eventFile, "event", "", "trigger event file, '-' for stdin")

	rootCmd.AddCommand(runCmd)
}
