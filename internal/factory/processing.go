package factory

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aws-samples/eks-notifier/internal/alert"
	"github.com/aws-samples/eks-notifier/internal/config"
	"github.com/aws-samples/eks-notifier/internal/domain/repo/notification"
	"github.com/aws-samples/eks-notifier/internal/domain/repo/registry"
	"github.com/aws-samples/eks-notifier/internal/log"
	"github.com/aws-samples/eks-notifier/internal/processing"
	"github.com/aws-samples/eks-notifier/internal/trigger"
	"github.com/aws-samples/eks-notifier/pkg/pipeline"
)

// CreateMain builds the router with every client it needs, from the deployment configuration.
func CreateMain(ctx context.Context, conf config.Config) (processing.Main, error) {
	awsConfig, err := LoadAWSConfig(ctx, conf.Region, config.AWSCreds{})
	if err != nil {
		return processing.Main{}, err
	}

	composer, err := alert.NewComposer(alert.Settings{
		Region:         conf.Region,
		Locale:         alert.Locale(conf.Notification.Locale),
		AppName:        conf.AppName(),
		TopicARN:       conf.Notification.TopicARN,
		ApplicationID:  conf.ApplicationID(),
		StackID:        conf.Stack.ID,
		CurrentVersion: conf.Version,
	})
	if err != nil {
		return processing.Main{}, fmt.Errorf("failed to create alert composer: %w", err)
	}

	supportWindows, err := CreateSupportWindowSource(ctx, conf.SupportWindow)
	if err != nil {
		return processing.Main{}, err
	}

	inventory, err := CreateClusterInventory(conf.Inventory, awsConfig)
	if err != nil {
		return processing.Main{}, err
	}

	versionRegistry := registry.NewSARRegistry(CreateSARClient(awsConfig), conf.ApplicationID())
	notifier := notification.NewSNSPublisher(CreateSNSClient(awsConfig), conf.Notification.TopicARN)

	ret := processing.NewMain(composer, supportWindows, inventory, versionRegistry, notifier, conf.Version).
		WithConcurrency(conf.Inventory.Concurrency).
		WithLogger(log.Logger())

	return ret, nil
}

/*
 * DecorateProcessing decorates the processing as follow:
 *
 * panic --> duration --> count --> main (router)
 */
func DecorateProcessing(mainProcessing pipeline.Processing[trigger.Event], registry prometheus.Registerer) (pipeline.Processing[trigger.Event], error) {
	metricsConfig := pipeline.MetricsConfig{Namespace: "main"}

	ret, err := processing.NewCountTrigger(mainProcessing, registry, metricsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create trigger count processor: %w", err)
	}

	ret, err = pipeline.NewDurationMetricsDecoratorProcessing(ret, registry, clockwork.NewRealClock(), metricsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration metrics processor: %w", err)
	}

	ret = pipeline.NewPanicHandlerProcessing(ret)

	return ret, nil
}

/*
 * DecorateErrorProcessing decorates the error processing as follow:
 *
 *										---> main (dlq)
 *	panic --> duration --> parallel ---|
 *										---> error count
 */
func DecorateErrorProcessing(mainProcessing pipeline.ErrorProcessing, registry prometheus.Registerer) (pipeline.ErrorProcessing, error) {
	errorCount, err := pipeline.NewErrorCountProcessing(registry, pipeline.MetricsConfig{Namespace: "error"})
	if err != nil {
		return nil, fmt.Errorf("failed to create error count processing: %w", err)
	}

	ret := pipeline.NewParallelProcessing(mainProcessing, errorCount)

	ret, err = pipeline.NewDurationMetricsDecoratorProcessing(ret, registry, clockwork.NewRealClock(), pipeline.MetricsConfig{Namespace: "error"})
	if err != nil {
		return nil, fmt.Errorf("failed to create duration metrics processor: %w", err)
	}

	ret = pipeline.NewPanicHandlerProcessing(ret)

	return ret, nil
}
