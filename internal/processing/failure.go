package processing

import (
	"context"
	"fmt"

	"github.com/aws-samples/eks-notifier/internal/domain/repo"
	"github.com/aws-samples/eks-notifier/pkg/pipeline"
)

// DeadLetter keeps the triggers the router failed on.
type DeadLetter struct {
	writer repo.ProcessingErrorWriter
}

func NewDeadLetter(writer repo.ProcessingErrorWriter) DeadLetter {
	return DeadLetter{
		writer: writer,
	}
}

func (d DeadLetter) Process(ctx context.Context, pErr pipeline.ErrProcessingError) error {
	err := d.writer.WriteProcessingError(ctx, pErr)
	if err != nil {
		return fmt.Errorf("failed to write dead letter: %w", err)
	}

	return nil
}
