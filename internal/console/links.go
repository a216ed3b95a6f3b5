// Package console builds AWS console links for the region's partition.
package console

import (
	"fmt"
	"strings"
)

const chinaPrefix = "cn-"

// Links builds console links for a single region.
type Links struct {
	region string
}

func NewLinks(region string) Links {
	return Links{region: region}
}

func (l Links) china() bool {
	return strings.HasPrefix(l.region, chinaPrefix)
}

// Clusters is the EKS cluster list of the region.
func (l Links) Clusters() string {
	if l.china() {
		return fmt.Sprintf("https://%[1]s.console.amazonaws.cn/eks/home?region=%[1]s#/clusters", l.region)
	}

	return fmt.Sprintf("https://%[1]s.console.aws.amazon.com/eks/home?region=%[1]s#/clusters", l.region)
}

// Upgrade opens the deployment page of a registry application.
func (l Links) Upgrade(applicationID string) string {
	if l.china() {
		return fmt.Sprintf("https://console.amazonaws.cn/lambda/home?region=%s#/create/app?applicationId=%s", l.region, applicationID)
	}

	return fmt.Sprintf("https://%[1]s.console.aws.amazon.com/lambda/home?region=%[1]s#/create/app?applicationId=%[2]s", l.region, applicationID)
}

// Stack opens the event list of a CloudFormation stack.
func (l Links) Stack(stackID string) string {
	if l.china() {
		return fmt.Sprintf("https://%[1]s.console.amazonaws.cn/cloudformation/home?region=%[1]s#/stacks/events?stackId=%[2]s&filteringText=&filteringStatus=active&viewNested=true", l.region, stackID)
	}

	return fmt.Sprintf("https://%[1]s.console.aws.amazon.com/cloudformation/home?region=%[1]s#/stacks/events?filteringText=&filteringStatus=active&viewNested=true&stackId=%[2]s", l.region, stackID)
}
