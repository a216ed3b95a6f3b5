package pipeline

import (
	"github.com/IBM/sarama"
)

// ErrProcessingError is a failed trigger on its way to the error processing.
type ErrProcessingError struct {
	error
	Category         string
	Trigger          string
	Event            *sarama.ConsumerMessage
	AdditionalInputs []Input
}

type Input struct {
	Source string
	Key    string
	Value  []byte
}

const (
	UnknownCategory        = "unknown"
	UnmarshalErrorCategory = "unmarshal"
	PanicCategory          = "panic"
)

func NewErrProcessingError(err error, category string, additionalInputs []Input) ErrProcessingError {
	return ErrProcessingError{
		error:            err,
		Category:         category,
		AdditionalInputs: additionalInputs,
	}
}

func (e ErrProcessingError) Unwrap() error {
	return e.error
}

// MetricLabel observes failures by category.
func (e ErrProcessingError) MetricLabel() string {
	return e.Category
}

// WithEvent attaches the kafka message that triggered the failure.
func (e ErrProcessingError) WithEvent(msg *sarama.ConsumerMessage) ErrProcessingError {
	e.Event = msg

	return e
}

// WithTrigger records the kind of trigger that failed, when the payload could be decoded.
func (e ErrProcessingError) WithTrigger(kind string) ErrProcessingError {
	if e.Trigger == "" {
		e.Trigger = kind
	}

	return e
}
