package console_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aws-samples/eks-notifier/internal/console"
)

const (
	applicationID = "arn:aws:serverlessrepo:us-east-1:123456789012:applications/eks-notifier"
	stackID       = "arn:aws:cloudformation:us-east-1:123456789012:stack/serverlessrepo-eks-notifier/abc"
)

func TestLinks(t *testing.T) {
	type testCase struct {
		region   string
		clusters string
		upgrade  string
		stack    string
	}

	cases := []testCase{
		{
			region:   "us-east-1",
			clusters: "https://us-east-1.console.aws.amazon.com/eks/home?region=us-east-1#/clusters",
			upgrade:  "https://us-east-1.console.aws.amazon.com/lambda/home?region=us-east-1#/create/app?applicationId=" + applicationID,
			stack:    "https://us-east-1.console.aws.amazon.com/cloudformation/home?region=us-east-1#/stacks/events?filteringText=&filteringStatus=active&viewNested=true&stackId=" + stackID,
		},
		{
			region:   "cn-north-1",
			clusters: "https://cn-north-1.console.amazonaws.cn/eks/home?region=cn-north-1#/clusters",
			upgrade:  "https://console.amazonaws.cn/lambda/home?region=cn-north-1#/create/app?applicationId=" + applicationID,
			stack:    "https://cn-north-1.console.amazonaws.cn/cloudformation/home?region=cn-north-1#/stacks/events?stackId=" + stackID + "&filteringText=&filteringStatus=active&viewNested=true",
		},
		{
			region:   "cn-northwest-1",
			clusters: "https://cn-northwest-1.console.amazonaws.cn/eks/home?region=cn-northwest-1#/clusters",
			upgrade:  "https://console.amazonaws.cn/lambda/home?region=cn-northwest-1#/create/app?applicationId=" + applicationID,
			stack:    "https://cn-northwest-1.console.amazonaws.cn/cloudformation/home?region=cn-northwest-1#/stacks/events?stackId=" + stackID + "&filteringText=&filteringStatus=active&viewNested=true",
		},
	}

	for i := range cases {
		c := cases[i]

		t.Run(c.region, func(t *testing.T) {
			t.Parallel()

			links := console.NewLinks(c.region)

			assert.Equal(t, c.clusters, links.Clusters())
			assert.Equal(t, c.upgrade, links.Upgrade(applicationID))
			assert.Equal(t, c.stack, links.Stack(stackID))
		})
	}
}
