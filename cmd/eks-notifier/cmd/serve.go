package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/aws-samples/eks-notifier/internal/common"
	"github.com/aws-samples/eks-notifier/internal/factory"
	"github.com/aws-samples/eks-notifier/internal/log"
	"github.com/aws-samples/eks-notifier/internal/processing"
	"github.com/aws-samples/eks-notifier/internal/trigger"
	"github.com/aws-samples/eks-notifier/pkg/pipeline"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Consume triggers from kafka until stopped",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		err := setup(cmd, args)
		if err != nil {
			return err
		}

		if conf.Kafka.Broker.URLs == "" || conf.Kafka.Consumer.Topic == "" || conf.Kafka.Consumer.Group == "" {
			return errors.New("kafka broker urls, topic and group are required to serve")
		}

		if conf.DeadLetterQueue.Bucket == "" {
			return errors.New("a dead letter queue bucket is required to serve")
		}

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.Logger()

		// Set max procs based on cpu limits
		err := common.SetMaxProcs()
		if err != nil {
			logger.Error(err, "failed to set max procs")

			return
		}

		// Set max memory
		err = common.SetMemLimit()
		if err != nil {
			logger.Error(err, "failed to set mem limit")

			return
		}

		// Listen to sigterm and interrupt signals
		ctx := common.SetupSignalHandler(cmd.Context())

		// Metrics
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		server := factory.CreatePrometheusServer(conf.Metrics, registry)

		go func() {
			logger.V(1).Info("Starting metrics server", "addr", server.Addr)

			err := server.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(err, "Metrics server stopped")
			}
		}()

		defer shutdown(server)

		// Create pipeline
		runner, closeConsumer, err := createRunner(ctx, registry)
		if err != nil {
			logger.Error(err, "failed to create pipeline")

			return
		}

		defer closeConsumer()

		// Start pipeline
		err = runner.Start(ctx)
		if err != nil {
			logger.Error(err, "Pipeline stopped")
		}

		logger.V(2).Info("Processing stopped")
	},
}

func createRunner(ctx context.Context, registry *prometheus.Registry) (pipeline.Runner[trigger.Event], func(), error) {
	logger := log.Logger()

	main, err := factory.CreateMain(ctx, *conf)
	if err != nil {
		return pipeline.Runner[trigger.Event]{}, nil, fmt.Errorf("failed to create router: %w", err)
	}

	mainProcessing, err := factory.DecorateProcessing(main, registry)
	if err != nil {
		return pipeline.Runner[trigger.Event]{}, nil, fmt.Errorf("failed to decorate router: %w", err)
	}

	writer, err := factory.CreateDeadLetterWriter(ctx, conf.DeadLetterQueue)
	if err != nil {
		return pipeline.Runner[trigger.Event]{}, nil, err
	}

	errorProcessing, err := factory.DecorateErrorProcessing(processing.NewDeadLetter(writer), registry)
	if err != nil {
		return pipeline.Runner[trigger.Event]{}, nil, fmt.Errorf("failed to decorate dead letter queue: %w", err)
	}

	consumer, err := factory.CreateKafkaConsumer(conf.Kafka)
	if err != nil {
		return pipeline.Runner[trigger.Event]{}, nil, err
	}

	closeConsumer := func() {
		err := consumer.Close()
		if err != nil {
			logger.Error(err, "Failed to close kafka consumer")
		}
	}

	ret := pipeline.NewRunner(consumer, []string{conf.Kafka.Consumer.Topic}, mainProcessing, errorProcessing).WithLogger(logger)

	return ret, closeConsumer, nil
}

func shutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.GracefulDuration)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		log.Logger().Error(err, "Failed to stop metrics server")
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
