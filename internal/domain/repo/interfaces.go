package repo

import (
	"context"

	"github.com/aws-samples/eks-notifier/internal/domain/entity"
	"github.com/aws-samples/eks-notifier/pkg/pipeline"
)

//go:generate mockgen -source=interfaces.go -package=mock -destination=./mock/mock_repo.go

type ProcessingErrorWriter interface {
	WriteProcessingError(ctx context.Context, pErr pipeline.ErrProcessingError) error
}

// SupportWindowSource loads the support window document.
type SupportWindowSource interface {
	LoadSupportWindows(ctx context.Context) (entity.SupportWindowTable, error)
}

type ClusterLister interface {
	ListClusters(ctx context.Context) ([]string, error)
}

type ClusterDescriber interface {
	ClusterVersion(ctx context.Context, name string) (string, error)
}

type ClusterInventory interface {
	ClusterLister
	ClusterDescriber
}

// VersionRegistry resolves the latest published version of this application.
// Implementations report any failure as ok == false.
type VersionRegistry interface {
	LatestVersion(ctx context.Context) (version string, ok bool)
}

type Notifier interface {
	Publish(ctx context.Context, message string) (messageID string, err error)
}
