package supportwindow

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/aws-samples/eks-notifier/internal/domain/entity"
)

type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads the document from a private bucket.
type S3Source struct {
	client S3GetObjectAPI

	bucket  string
	key     string
	timeout time.Duration
}

func NewS3Source(client S3GetObjectAPI, bucket string, key string) S3Source {
	return S3Source{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

// WithTimeout bounds the whole read of the document, zero means no bound.
func (s S3Source) WithTimeout(timeout time.Duration) S3Source {
	s.timeout = timeout

	return s
}

func (s S3Source) LoadSupportWindows(ctx context.Context) (entity.SupportWindowTable, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &s.key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", s.bucket, s.key, err)
	}

	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", s.bucket, s.key, err)
	}

	return Decode(data)
}
