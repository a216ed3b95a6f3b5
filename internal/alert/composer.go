// Package alert turns evaluation results and lifecycle events into notification messages.
package alert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws-samples/eks-notifier/internal/console"
	"github.com/aws-samples/eks-notifier/internal/domain/entity"
	"github.com/aws-samples/eks-notifier/internal/support"
)

type ClusterAlertKind string

const (
	// ClusterAlertFleet reports on every cluster of the region.
	ClusterAlertFleet ClusterAlertKind = "fleet"
	// ClusterAlertCreate reports on a cluster being created.
	ClusterAlertCreate ClusterAlertKind = "create"
)

type LifecycleKind string

const (
	LifecycleClusterDeleting LifecycleKind = "cluster_deleting"
	LifecycleStackUpdating   LifecycleKind = "stack_updating"
	LifecycleStackUpdated    LifecycleKind = "stack_updated"
	LifecycleStackDeleting   LifecycleKind = "stack_deleting"
	LifecycleStackCreated    LifecycleKind = "stack_created"
)

type LifecycleDetails struct {
	ClusterName string
}

// Message is a notification ready to be rendered. Links lists the console links found in Lines.
type Message struct {
	Title  string
	Lines  []string
	Region string
	Links  []string

	regionLine string
}

// Render formats the message as sent to the notification channel.
func (m Message) Render() string {
	regionLine := m.regionLine
	if regionLine == "" {
		regionLine = fmt.Sprintf(locales[LocaleEN].region, m.Region)
	}

	lines := make([]string, 0, len(m.Lines)+3)
	lines = append(lines, "【"+m.Title+"】", separator, regionLine)
	lines = append(lines, m.Lines...)

	return strings.Join(lines, "\n")
}

// Settings describes the deployment the messages are about.
type Settings struct {
	Region         string
	Locale         Locale
	AppName        string
	TopicARN       string
	ApplicationID  string
	StackID        string
	CurrentVersion string
}

type Composer struct {
	settings  Settings
	templates templates
	links     console.Links
}

func NewComposer(settings Settings) (Composer, error) {
	if settings.Locale == "" {
		settings.Locale = LocaleEN
	}

	t, ok := locales[settings.Locale]
	if !ok {
		return Composer{}, fmt.Errorf("unsupported locale %q", settings.Locale)
	}

	return Composer{
		settings:  settings,
		templates: t,
		links:     console.NewLinks(settings.Region),
	}, nil
}

// ClusterAlert keeps the results needing attention, in input order.
// It returns false when none does.
func (c Composer) ClusterAlert(kind ClusterAlertKind, results []entity.EvaluationResult) (Message, bool) {
	title, expired, expiring := c.templates.fleetTitle, c.templates.fleetExpired, c.templates.fleetExpiring
	if kind == ClusterAlertCreate {
		title, expired, expiring = c.templates.createTitle, c.templates.createExpired, c.templates.createExpiring
	}

	lines := []string{}

	for _, r := range results {
		switch r.Classification {
		case entity.ClassificationExpired:
			lines = append(lines, fmt.Sprintf(expired, r.Subject, r.Version, -r.DaysLeft))
		case entity.ClassificationExpiring:
			lines = append(lines, fmt.Sprintf(expiring, r.Subject, r.Version, r.End, r.DaysLeft))
		case entity.ClassificationHealthy:
		}
	}

	if len(lines) == 0 {
		return Message{}, false
	}

	clusters := c.links.Clusters()

	lines = append(lines,
		separator,
		fmt.Sprintf(c.templates.clusterList, clusters),
		fmt.Sprintf(c.templates.doc, docURL),
	)

	return c.message(title, lines, []string{clusters, docURL}), true
}

// UpgradeAlert returns false unless latest is strictly newer than current.
func (c Composer) UpgradeAlert(current, latest string) (Message, bool) {
	if latest == "" || support.CompareVersions(current, latest) >= 0 {
		return Message{}, false
	}

	upgrade := c.links.Upgrade(c.settings.ApplicationID)

	lines := []string{
		fmt.Sprintf(c.templates.upgrade, latest, current, upgrade),
		separator,
		c.templates.copyVariables,
		fmt.Sprintf(c.templates.applicationName, c.settings.AppName),
		fmt.Sprintf(c.templates.topicARN, c.settings.TopicARN),
	}

	return c.message(c.templates.upgradeTitle, lines, []string{upgrade}), true
}

var ErrUnknownLifecycle = errors.New("unknown lifecycle kind")

func (c Composer) LifecycleAlert(kind LifecycleKind, details LifecycleDetails) (Message, error) {
	t := c.templates
	appName := c.settings.AppName

	switch kind {
	case LifecycleClusterDeleting:
		clusters := c.links.Clusters()

		return c.message(t.clusterDeleting[0], []string{
			fmt.Sprintf(t.clusterDeleting[1], details.ClusterName),
			separator,
			fmt.Sprintf(t.clusterList, clusters),
		}, []string{clusters}), nil
	case LifecycleStackUpdating:
		stack := c.links.Stack(c.settings.StackID)

		return c.message(t.stackUpdating[0], []string{
			fmt.Sprintf(t.stackUpdating[1], appName),
			fmt.Sprintf(t.processing, stack),
		}, []string{stack}), nil
	case LifecycleStackUpdated:
		return c.message(t.stackUpdated[0], []string{
			fmt.Sprintf(t.stackUpdated[1], appName, c.settings.CurrentVersion),
		}, nil), nil
	case LifecycleStackDeleting:
		stack := c.links.Stack(c.settings.StackID)

		return c.message(t.stackDeleting[0], []string{
			fmt.Sprintf(t.stackDeleting[1], appName),
			fmt.Sprintf(t.processing, stack),
		}, []string{stack}), nil
	case LifecycleStackCreated:
		return c.message(t.stackCreated[0], []string{
			fmt.Sprintf(t.stackCreated[1], appName),
		}, nil), nil
	default:
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownLifecycle, kind)
	}
}

func (c Composer) message(title string, lines []string, links []string) Message {
	return Message{
		Title:      title,
		Lines:      lines,
		Region:     c.settings.Region,
		Links:      links,
		regionLine: fmt.Sprintf(c.templates.region, c.settings.Region),
	}
}
