package processing

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aws-samples/eks-notifier/internal/trigger"
	"github.com/aws-samples/eks-notifier/pkg/pipeline"
)

type CountTrigger struct {
	counter *prometheus.CounterVec
	inner   pipeline.Processing[trigger.Event]
}

func NewCountTrigger(p pipeline.Processing[trigger.Event], registry prometheus.Registerer, config pipeline.MetricsConfig) (pipeline.Processing[trigger.Event], error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Name:      "trigger_total",
		Help:      "Trigger counter by kind.",
	}, []string{"kind"})

	err := registry.Register(counter)
	if err != nil {
		return nil, fmt.Errorf("failed to register metric: %w", err)
	}

	ret := CountTrigger{
		counter: counter,
		inner:   p,
	}

	return ret, nil
}

func (p CountTrigger) Process(ctx context.Context, event trigger.Event) error {
	defer p.counter.WithLabelValues(event.MetricLabel()).Inc()

	return p.inner.Process(ctx, event)
}
