package cluster

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/eks"
	"golang.org/x/time/rate"
)

var ErrMissingVersion = errors.New("cluster has no version")

type EKSAPI interface {
	eks.ListClustersAPIClient
	DescribeCluster(ctx context.Context, params *eks.DescribeClusterInput, optFns ...func(*eks.Options)) (*eks.DescribeClusterOutput, error)
}

// EKSInventory lists the clusters of the configured region.
type EKSInventory struct {
	client  EKSAPI
	limiter *rate.Limiter
}

func NewEKSInventory(client EKSAPI) EKSInventory {
	return EKSInventory{
		client: client,
	}
}

// WithDescribeRate throttles DescribeCluster calls to perSecond. Zero disables throttling.
func (e EKSInventory) WithDescribeRate(perSecond float64) EKSInventory {
	if perSecond <= 0 {
		e.limiter = nil

		return e
	}

	e.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)

	return e
}

func (e EKSInventory) ListClusters(ctx context.Context) ([]string, error) {
	ret := []string{}

	paginator := eks.NewListClustersPaginator(e.client, &eks.ListClustersInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list clusters: %w", err)
		}

		ret = append(ret, page.Clusters...)
	}

	return ret, nil
}

func (e EKSInventory) ClusterVersion(ctx context.Context, name string) (string, error) {
	if e.limiter != nil {
		err := e.limiter.Wait(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to wait for describe slot: %w", err)
		}
	}

	out, err := e.client.DescribeCluster(ctx, &eks.DescribeClusterInput{Name: &name})
	if err != nil {
		return "", fmt.Errorf("failed to describe cluster %s: %w", name, err)
	}

	if out.Cluster == nil || out.Cluster.Version == nil || *out.Cluster.Version == "" {
		return "", fmt.Errorf("%s: %w", name, ErrMissingVersion)
	}

	return *out.Cluster.Version, nil
}
