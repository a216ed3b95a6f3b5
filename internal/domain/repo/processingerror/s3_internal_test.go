package processingerror

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aws-samples/eks-notifier/pkg/pipeline"
)

type fakeS3 struct {
	key  string
	body []byte
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.key = *params.Key

	b, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}

	f.body = b

	return &s3.PutObjectOutput{}, nil
}

func TestComputeObjectKey(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	repo := S3Writer{prefix: "dlq", clock: clockwork.NewFakeClockAt(now)}

	testcases := []struct {
		name       string
		pErr       pipeline.ErrProcessingError
		shouldFail bool
		expect     string
	}{
		{
			name: "message timestamp",
			pErr: pipeline.ErrProcessingError{
				Category: "cluster_inventory",
				Event:    &sarama.ConsumerMessage{Topic: "triggers", Partition: 2, Offset: 1337, Timestamp: time.Unix(1741014594, 0)},
			},
			expect: "dlq/2025/03/03/cluster_inventory/triggers-2-1337.json",
		},
		{
			name: "no timestamp nor category",
			pErr: pipeline.ErrProcessingError{
				Event: &sarama.ConsumerMessage{Topic: "triggers", Partition: 0, Offset: 7},
			},
			expect: "dlq/2025/03/04/unknown/triggers-0-7.json",
		},
		{
			name:       "no event",
			pErr:       pipeline.ErrProcessingError{Category: "panic"},
			shouldFail: true,
		},
	}

	for i := range testcases {
		tc := testcases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			key, err := repo.computeObjectKey(tc.pErr)
			if tc.shouldFail {
				assert.ErrorIs(t, err, ErrNilEvent)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expect, key)
		})
	}
}

func TestWriteProcessingError(t *testing.T) {
	client := &fakeS3{}
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	repo := NewS3Writer(client, "bucket", "dlq/").WithClock(clockwork.NewFakeClockAt(now))

	pErr := pipeline.NewErrProcessingError(errors.New("boom"), "cluster_inventory", []pipeline.Input{{Source: "runtime", Key: "stack", Value: []byte("trace")}}).
		WithEvent(&sarama.ConsumerMessage{Topic: "triggers", Offset: 3, Value: []byte(`{"source":"aws.events"}`)}).
		WithTrigger("scheduled")

	err := repo.WriteProcessingError(context.Background(), pErr)
	require.NoError(t, err)

	assert.Equal(t, "dlq/2025/03/04/cluster_inventory/triggers-0-3.json", client.key)

	record := FailedTrigger{}
	require.NoError(t, json.Unmarshal(client.body, &record))
	assert.Equal(t, "boom", record.Reason.Error)
	assert.Equal(t, []byte(`{"source":"aws.events"}`), record.Trigger.Payload)
	assert.Equal(t, "scheduled", record.Trigger.Kind)
	assert.Equal(t, now, record.Context.Time)
	require.Len(t, record.Inputs, 1)
	assert.Equal(t, "stack", record.Inputs[0].Key)
}
