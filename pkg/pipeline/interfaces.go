package pipeline

import "context"

//go:generate mockgen -source=interfaces.go -package=mock -destination=./mock/mock_pipeline.go

// Processing handles one decoded payload, the decorators of this package wrap it.
type Processing[Payload any] interface {
	Process(context.Context, Payload) error
}

// ErrorProcessing receives what a Processing failed on.
type ErrorProcessing Processing[ErrProcessingError]

// Labeled payloads name the metric series they are observed in, a trigger kind or a failure category.
type Labeled interface {
	MetricLabel() string
}

const noLabel = "none"

func labelOf[Payload any](payload Payload) string {
	labeled, ok := any(payload).(Labeled)
	if !ok || labeled.MetricLabel() == "" {
		return noLabel
	}

	return labeled.MetricLabel()
}
