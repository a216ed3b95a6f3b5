package processing

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/aws-samples/eks-notifier/internal/alert"
	"github.com/aws-samples/eks-notifier/internal/domain/entity"
	"github.com/aws-samples/eks-notifier/internal/domain/repo"
	"github.com/aws-samples/eks-notifier/internal/domain/repo/supportwindow"
	"github.com/aws-samples/eks-notifier/internal/log"
	"github.com/aws-samples/eks-notifier/internal/trigger"
)

const categoryErrClusterInventory = "cluster_inventory"

// Main routes a trigger to the checks and notices it calls for.
type Main struct {
	composer       alert.Composer
	supportWindows repo.SupportWindowSource
	inventory      repo.ClusterInventory
	registry       repo.VersionRegistry
	notifier       repo.Notifier

	currentVersion string
	concurrency    int

	clock  clockwork.Clock
	logger logr.Logger
}

func NewMain(composer alert.Composer, supportWindows repo.SupportWindowSource, inventory repo.ClusterInventory, registry repo.VersionRegistry, notifier repo.Notifier, currentVersion string) Main {
	return Main{
		composer:       composer,
		supportWindows: supportWindows,
		inventory:      inventory,
		registry:       registry,
		notifier:       notifier,
		currentVersion: currentVersion,
		clock:          clockwork.NewRealClock(),
		logger:         logr.Discard(),
	}
}

// WithConcurrency bounds the number of clusters described at once. Zero means unbounded.
func (m Main) WithConcurrency(concurrency int) Main {
	m.concurrency = concurrency

	return m
}

func (m Main) WithClock(clock clockwork.Clock) Main {
	m.clock = clock

	return m
}

// WithLogger sets the logger used when the context does not carry one.
func (m Main) WithLogger(logger logr.Logger) Main {
	m.logger = logger

	return m
}

// invocation holds what lives for a single trigger.
type invocation struct {
	Main

	logger  logr.Logger
	windows *supportwindow.Once
	today   entity.Date
}

func (m Main) newInvocation(ctx context.Context, event trigger.Event) (context.Context, invocation) {
	logger, err := logr.FromContext(ctx)
	if err != nil {
		logger = log.WithInvocation(m.logger, uuid.NewString())
	}

	logger = logger.WithValues("trigger", event.Kind)

	return logr.NewContext(ctx, logger), invocation{
		Main:    m,
		logger:  logger,
		windows: supportwindow.NewOnce(m.supportWindows, logger),
		today:   entity.DateOf(m.clock.Now()),
	}
}

// Process runs the actions of the trigger in order.
// Only a failure to list the clusters is returned: every other failure is logged and skipped.
func (m Main) Process(ctx context.Context, event trigger.Event) error {
	ctx, inv := m.newInvocation(ctx, event)

	inv.logger.V(1).Info("Processing trigger", "cluster", event.ClusterName, "requestedVersion", event.RequestedVersion)

	switch event.Kind {
	case trigger.KindCreateCluster:
		inv.checkSelf(ctx)
		inv.checkCreatedCluster(ctx, event)

		return nil
	case trigger.KindDeleteCluster:
		inv.notice(ctx, alert.LifecycleClusterDeleting, event)

		return nil
	case trigger.KindUpdateInProgress:
		inv.notice(ctx, alert.LifecycleStackUpdating, event)

		return nil
	case trigger.KindUpdateComplete:
		inv.notice(ctx, alert.LifecycleStackUpdated, event)

		return inv.checkFleet(ctx)
	case trigger.KindDeleteInProgress:
		inv.notice(ctx, alert.LifecycleStackDeleting, event)

		return nil
	case trigger.KindCreateComplete:
		inv.checkSelf(ctx)
		inv.notice(ctx, alert.LifecycleStackCreated, event)

		return inv.checkFleet(ctx)
	default:
		inv.checkSelf(ctx)

		return inv.checkFleet(ctx)
	}
}

func (i invocation) notice(ctx context.Context, kind alert.LifecycleKind, event trigger.Event) {
	message, err := i.composer.LifecycleAlert(kind, alert.LifecycleDetails{ClusterName: event.ClusterName})
	if err != nil {
		i.logger.Error(err, "Failed to compose lifecycle notification", "trigger", event.Kind)

		return
	}

	i.publish(ctx, message)
}

// publish never fails the invocation: a lost notification is logged.
func (i invocation) publish(ctx context.Context, message alert.Message) {
	if len(message.Lines) == 0 {
		return
	}

	messageID, err := i.notifier.Publish(ctx, message.Render())
	if err != nil {
		i.logger.Error(err, "Failed to publish notification", "title", message.Title)

		return
	}

	i.logger.V(1).Info("Notification published", "title", message.Title, "lines", len(message.Lines), "messageId", messageID)
}
