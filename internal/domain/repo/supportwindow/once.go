package supportwindow

import (
	"context"
	"sync"

	"github.com/go-logr/logr"

	"github.com/aws-samples/eks-notifier/internal/domain/entity"
	"github.com/aws-samples/eks-notifier/internal/domain/repo"
)

// Once memoizes a source for the duration of one invocation.
// A failed load is remembered as well: the table stays absent until the next invocation.
type Once struct {
	source repo.SupportWindowSource
	logger logr.Logger

	once  sync.Once
	table entity.SupportWindowTable
}

func NewOnce(source repo.SupportWindowSource, logger logr.Logger) *Once {
	return &Once{
		source: source,
		logger: logger,
	}
}

// Table returns the loaded table, or false when the document could not be loaded.
func (o *Once) Table(ctx context.Context) (entity.SupportWindowTable, bool) {
	o.once.Do(func() {
		table, err := o.source.LoadSupportWindows(ctx)
		if err != nil {
			o.logger.Error(err, "Failed to load support windows, skipping evaluation")

			return
		}

		o.logger.V(2).Info("Support windows loaded", "versions", len(table))

		o.table = table
	})

	return o.table, o.table != nil
}
