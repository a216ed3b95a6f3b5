package registry

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/serverlessapplicationrepository"
	"github.com/go-logr/logr"
)

var errNoVersion = errors.New("application has no published version")

type ListApplicationVersionsAPI interface {
	ListApplicationVersions(ctx context.Context, params *serverlessapplicationrepository.ListApplicationVersionsInput, optFns ...func(*serverlessapplicationrepository.Options)) (*serverlessapplicationrepository.ListApplicationVersionsOutput, error)
}

// SARRegistry reads the published versions of this application from the Serverless Application Repository.
type SARRegistry struct {
	client        ListApplicationVersionsAPI
	applicationID string
}

func NewSARRegistry(client ListApplicationVersionsAPI, applicationID string) SARRegistry {
	return SARRegistry{
		client:        client,
		applicationID: applicationID,
	}
}

// LatestVersion returns the semantic version of the most recently published version.
// Failures are logged with the logger found in ctx.
func (r SARRegistry) LatestVersion(ctx context.Context) (string, bool) {
	logger := logr.FromContextOrDiscard(ctx).WithValues("applicationId", r.applicationID)

	latest := ""

	var token *string

	for {
		page, err := r.client.ListApplicationVersions(ctx, &serverlessapplicationrepository.ListApplicationVersionsInput{
			ApplicationId: &r.applicationID,
			NextToken:     token,
		})
		if err != nil {
			logger.Error(err, "Failed to list application versions")

			return "", false
		}

		for _, v := range page.Versions {
			if v.SemanticVersion != nil {
				latest = *v.SemanticVersion
			}
		}

		if page.NextToken == nil || *page.NextToken == "" {
			break
		}

		token = page.NextToken
	}

	if latest == "" {
		logger.Error(errNoVersion, "Failed to get latest version")

		return "", false
	}

	logger.V(1).Info("Latest version", "version", latest)

	return latest, true
}
