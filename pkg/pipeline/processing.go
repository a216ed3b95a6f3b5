package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// Parallel Processing

type parallel[Payload any] struct {
	procs []Processing[Payload]
}

// NewParallelProcessing hands the same payload to every processing, e.g. the dead letter and the error count.
func NewParallelProcessing[Payload any](p ...Processing[Payload]) Processing[Payload] {
	return parallel[Payload]{
		procs: p,
	}
}

// Process waits for every processing, none is cancelled by a failing sibling.
// The error returned is the one of the first failing processing in declaration order.
func (p parallel[Payload]) Process(ctx context.Context, payload Payload) error {
	errs := make([]error, len(p.procs))

	var group errgroup.Group

	for i, proc := range p.procs {
		group.Go(func() error {
			errs[i] = proc.Process(ctx, payload)

			return nil
		})
	}

	_ = group.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// Panic handler Processing

type panicHandler[Payload any] struct {
	processing Processing[Payload]
}

func NewPanicHandlerProcessing[Payload any](p Processing[Payload]) Processing[Payload] {
	return panicHandler[Payload]{
		processing: p,
	}
}

// Process turns a panic into a panic category error carrying the stack and the payload.
func (p panicHandler[Payload]) Process(ctx context.Context, payload Payload) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		err = NewErrProcessingError(
			fmt.Errorf("panic while processing %s: %v", labelOf(payload), r),
			PanicCategory,
			[]Input{
				{Source: "runtime", Key: "stack", Value: debug.Stack()},
				{Source: "runtime", Key: "payload", Value: []byte(fmt.Sprintf("%+v", payload))},
			},
		).WithTrigger(labelOf(payload))
	}()

	return p.processing.Process(ctx, payload)
}

// Duration Metric Processing

type MetricsConfig struct {
	Namespace string
	Buckets   []float64
}

var defaultBuckets = []float64{10, 50, 100, 500, 1000, 2000, 5000, 10000, 30000}

type durationDecorator[Payload any] struct {
	processing Processing[Payload]
	histogram  *prometheus.HistogramVec
	clock      clockwork.Clock
}

// NewDurationMetricsDecoratorProcessing observes processing durations by payload label and outcome.
// A fleet check describes every cluster, the default buckets go up to 30s.
func NewDurationMetricsDecoratorProcessing[Payload any](p Processing[Payload], registry prometheus.Registerer, clock clockwork.Clock, config MetricsConfig) (Processing[Payload], error) {
	buckets := config.Buckets
	if len(buckets) == 0 {
		buckets = defaultBuckets
	}

	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: config.Namespace,
		Name:      "processing_duration_milliseconds",
		Help:      "Time taken to process a payload, by trigger kind or failure category.",
		Buckets:   buckets,
	}, []string{"kind", "failed"})

	err := registry.Register(histogram)
	if err != nil {
		return nil, fmt.Errorf("failed to register metric: %w", err)
	}

	return durationDecorator[Payload]{
		processing: p,
		histogram:  histogram,
		clock:      clock,
	}, nil
}

func (p durationDecorator[Payload]) Process(ctx context.Context, payload Payload) error {
	start := p.clock.Now()

	err := p.processing.Process(ctx, payload)

	elapsed := float64(p.clock.Since(start)) / float64(time.Millisecond)

	p.histogram.WithLabelValues(labelOf(payload), fmt.Sprintf("%v", err != nil)).Observe(elapsed)

	return err
}

// Error Metric Processing

const emptyCategory = "empty_category"

type errorCountProcessing struct {
	counter *prometheus.CounterVec
}

// NewErrorCountProcessing counts failures by category and by the kind of trigger that failed.
func NewErrorCountProcessing(registry prometheus.Registerer, config MetricsConfig) (Processing[ErrProcessingError], error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Name:      "processing_error_total",
		Help:      "Error counter by category and trigger kind.",
	}, []string{"category", "trigger"})

	err := registry.Register(counter)
	if err != nil {
		return nil, fmt.Errorf("failed to register metric: %w", err)
	}

	return errorCountProcessing{counter: counter}, nil
}

func (p errorCountProcessing) Process(_ context.Context, pErr ErrProcessingError) error {
	category := pErr.Category
	if category == "" {
		category = emptyCategory
	}

	kind := pErr.Trigger
	if kind == "" {
		kind = noLabel
	}

	p.counter.WithLabelValues(category, kind).Inc()

	return nil
}

// categorize keeps the category of a processing error, anything else is unknown.
func categorize(err error) ErrProcessingError {
	ret := ErrProcessingError{}
	if errors.As(err, &ret) {
		return ret
	}

	return NewErrProcessingError(err, UnknownCategory, nil)
}
