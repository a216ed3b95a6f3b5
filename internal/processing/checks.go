package processing

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aws-samples/eks-notifier/internal/alert"
	"github.com/aws-samples/eks-notifier/internal/common"
	"github.com/aws-samples/eks-notifier/internal/domain/entity"
	"github.com/aws-samples/eks-notifier/internal/support"
	"github.com/aws-samples/eks-notifier/internal/trigger"
)

func (i invocation) checkSelf(ctx context.Context) {
	latest, ok := i.registry.LatestVersion(ctx)
	if !ok {
		return
	}

	message, ok := i.composer.UpgradeAlert(i.currentVersion, latest)
	if !ok {
		i.logger.V(2).Info("Up to date", "current", i.currentVersion, "latest", latest)

		return
	}

	i.publish(ctx, message)
}

func (i invocation) checkCreatedCluster(ctx context.Context, event trigger.Event) {
	if event.RequestedVersion == "" {
		i.logger.V(1).Info("No requested version, skipping evaluation", "cluster", event.ClusterName)

		return
	}

	table, ok := i.windows.Table(ctx)
	if !ok {
		return
	}

	result, found := support.Evaluate(event.ClusterName, event.RequestedVersion, table, i.today)
	if !found {
		i.logger.V(1).Info("Unknown version, skipping evaluation", "cluster", event.ClusterName, "version", event.RequestedVersion)

		return
	}

	message, ok := i.composer.ClusterAlert(alert.ClusterAlertCreate, []entity.EvaluationResult{result})
	if !ok {
		return
	}

	i.publish(ctx, message)
}

// checkFleet evaluates every cluster of the inventory and sends a single alert.
func (i invocation) checkFleet(ctx context.Context) error {
	table, ok := i.windows.Table(ctx)
	if !ok {
		return nil
	}

	names, err := i.inventory.ListClusters(ctx)
	if err != nil {
		return common.NewErrProcessingError(err, categoryErrClusterInventory, nil, "failed to list clusters")
	}

	// One slot per cluster keeps the listing order whatever the completion order
	slots := make([]*entity.EvaluationResult, len(names))

	var group errgroup.Group
	if i.concurrency > 0 {
		group.SetLimit(i.concurrency)
	}

	for idx, name := range names {
		group.Go(func() error {
			slots[idx] = i.evaluateCluster(ctx, table, name)

			return nil
		})
	}

	_ = group.Wait() // evaluateCluster never fails

	results := make([]entity.EvaluationResult, 0, len(slots))

	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}

	i.logger.V(1).Info("Fleet evaluated", "clusters", len(names), "evaluated", len(results))

	message, ok := i.composer.ClusterAlert(alert.ClusterAlertFleet, results)
	if !ok {
		return nil
	}

	i.publish(ctx, message)

	return nil
}

func (i invocation) evaluateCluster(ctx context.Context, table entity.SupportWindowTable, name string) *entity.EvaluationResult {
	version, err := i.inventory.ClusterVersion(ctx, name)
	if err != nil {
		i.logger.Error(err, "Failed to get cluster version, skipping", "cluster", name)

		return nil
	}

	result, found := support.Evaluate(name, version, table, i.today)
	if !found {
		i.logger.V(1).Info("Unknown version, skipping evaluation", "cluster", name, "version", version)

		return nil
	}

	return &result
}
