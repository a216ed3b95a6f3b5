package factory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/aws-samples/eks-notifier/internal/config"
	"github.com/aws-samples/eks-notifier/internal/domain/repo"
	"github.com/aws-samples/eks-notifier/internal/domain/repo/cluster"
	"github.com/aws-samples/eks-notifier/internal/domain/repo/processingerror"
	"github.com/aws-samples/eks-notifier/internal/domain/repo/supportwindow"
)

func CreateSupportWindowSource(ctx context.Context, conf config.SupportWindow) (repo.SupportWindowSource, error) {
	switch conf.Source {
	case config.SupportWindowSourceStatic:
		return supportwindow.NewStaticSource(), nil
	case config.SupportWindowSourceHTTP:
		return supportwindow.NewHTTPSource(conf.URL, conf.Timeout), nil
	case config.SupportWindowSourceS3:
		client, err := CreateS3Client(ctx, conf.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to create support window s3 client: %w", err)
		}

		return supportwindow.NewS3Source(client, conf.S3.Bucket, conf.Key).WithTimeout(conf.Timeout), nil
	default:
		return nil, fmt.Errorf("unexpected support window source %q", conf.Source)
	}
}

func CreateClusterInventory(conf config.Inventory, awsConfig aws.Config) (repo.ClusterInventory, error) {
	switch conf.Source {
	case config.InventorySourceEKS:
		return cluster.NewEKSInventory(CreateEKSClient(awsConfig)).WithDescribeRate(conf.DescribeRate), nil
	case config.InventorySourceKubeconfig:
		ret, err := cluster.NewKubeconfigInventory(conf.Kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create kubeconfig inventory: %w", err)
		}

		return ret, nil
	default:
		return nil, fmt.Errorf("unexpected inventory source %q", conf.Source)
	}
}

func CreateDeadLetterWriter(ctx context.Context, conf config.S3) (repo.ProcessingErrorWriter, error) {
	client, err := CreateS3Client(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create dead letter s3 client: %w", err)
	}

	return processingerror.NewS3Writer(client, conf.Bucket, conf.KeyPrefix), nil
}
