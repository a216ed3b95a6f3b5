package processingerror

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/common/version"

	"github.com/aws-samples/eks-notifier/internal/log"
	"github.com/aws-samples/eks-notifier/pkg/pipeline"
)

const (
	unknownHostname = "<unknown>"

	keyTemplate = "<prefix>/<year>/<month>/<day>/<category>/<topic>-<partition>-<offset>.json"
)

var (
	ErrNilEvent = errors.New("nil event")
)

type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Writer stores failed triggers as JSON objects, one object per kafka message.
type S3Writer struct {
	s3client S3PutObjectAPI
	clock    clockwork.Clock

	bucket string
	prefix string

	hostname string
}

func NewS3Writer(s3client S3PutObjectAPI, bucket string, prefix string) S3Writer {
	hostname, err := os.Hostname()
	if err != nil {
		log.Logger().Error(err, "failed to get hostname, falling backing to "+unknownHostname)

		hostname = unknownHostname
	}

	return S3Writer{
		s3client: s3client,
		clock:    clockwork.NewRealClock(),
		bucket:   bucket,
		prefix:   strings.TrimSuffix(prefix, "/"),
		hostname: hostname,
	}
}

func (r S3Writer) WithClock(clock clockwork.Clock) S3Writer {
	r.clock = clock

	return r
}

func (r S3Writer) WriteProcessingError(ctx context.Context, pErr pipeline.ErrProcessingError) error {
	obj, err := r.createFailedTrigger(pErr)
	if err != nil {
		return fmt.Errorf("failed to create dead letter: %w", err)
	}

	b, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal dead letter: %w", err)
	}

	key, err := r.computeObjectKey(pErr)
	if err != nil {
		return fmt.Errorf("failed to compute object key: %w", err)
	}

	contentType := "application/json"

	params := &s3.PutObjectInput{
		Bucket:      &r.bucket,
		Key:         &key,
		Body:        bytes.NewReader(b),
		ContentType: &contentType,
	}

	_, err = r.s3client.PutObject(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to write in s3: %w", err)
	}

	return nil
}

func (r S3Writer) createFailedTrigger(pErr pipeline.ErrProcessingError) (FailedTrigger, error) {
	if pErr.Event == nil {
		return FailedTrigger{}, ErrNilEvent
	}

	ret := FailedTrigger{
		Context: FailureContext{
			Component: Component{
				Version:  version.Version,
				Branch:   version.Branch,
				Revision: version.Revision,
			},
			Time: r.clock.Now(),
			Host: r.hostname,
		},
		Trigger: Trigger{
			Kind:      pErr.Trigger,
			Topic:     pErr.Event.Topic,
			Partition: pErr.Event.Partition,
			Offset:    pErr.Event.Offset,
			Payload:   pErr.Event.Value,
		},
		Inputs: make([]KeyValue, 0, len(pErr.AdditionalInputs)),
		Reason: Reason{
			Category: pErr.Category,
			Error:    pErr.Error(),
		},
	}

	for _, input := range pErr.AdditionalInputs {
		ret.Inputs = append(ret.Inputs, KeyValue{
			Source: input.Source,
			Key:    input.Key,
			Value:  input.Value,
		})
	}

	return ret, nil
}

// Objects are partitioned by the day the trigger was produced, falling back to the day it failed.
func (r S3Writer) computeObjectKey(pErr pipeline.ErrProcessingError) (string, error) {
	if pErr.Event == nil {
		return "", ErrNilEvent
	}

	ts := pErr.Event.Timestamp
	if ts.IsZero() {
		ts = r.clock.Now()
	}

	ts = ts.UTC()

	category := pErr.Category
	if category == "" {
		category = pipeline.UnknownCategory
	}

	template := strings.NewReplacer(
		"<prefix>", r.prefix,
		"<year>", fmt.Sprintf("%04d", ts.Year()),
		"<month>", fmt.Sprintf("%02d", ts.Month()),
		"<day>", fmt.Sprintf("%02d", ts.Day()),
		"<category>", category,
		"<topic>", pErr.Event.Topic,
		"<partition>", fmt.Sprintf("%d", pErr.Event.Partition),
		"<offset>", fmt.Sprintf("%d", pErr.Event.Offset),
	)

	return template.Replace(keyTemplate), nil
}
