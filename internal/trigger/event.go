// Package trigger decodes the events that start an invocation.
package trigger

import (
	"encoding/json"
	"errors"
)

const (
	SourceEKS            = "aws.eks"
	SourceCloudFormation = "aws.cloudformation"
)

var ErrInvalidJSON = errors.New("trigger is not valid json")

type Kind string

const (
	KindScheduled Kind = "scheduled"

	// Cluster lifecycle
	KindCreateCluster Kind = "create_cluster"
	KindDeleteCluster Kind = "delete_cluster"

	// Stack lifecycle of this application
	KindUpdateInProgress Kind = "update_in_progress"
	KindUpdateComplete   Kind = "update_complete"
	KindDeleteInProgress Kind = "delete_in_progress"
	KindCreateComplete   Kind = "create_complete"
)

var (
	eksEventNames = map[string]Kind{
		"CreateCluster": KindCreateCluster,
		"DeleteCluster": KindDeleteCluster,
	}

	stackStatuses = map[string]Kind{
		"UPDATE_IN_PROGRESS": KindUpdateInProgress,
		"UPDATE_COMPLETE":    KindUpdateComplete,
		"DELETE_IN_PROGRESS": KindDeleteInProgress,
		"CREATE_COMPLETE":    KindCreateComplete,
	}
)

// Event is the decoded trigger. ClusterName and RequestedVersion are only set for cluster lifecycle kinds,
// RequestedVersion may be empty when the request did not pin one.
type Event struct {
	Kind             Kind
	ClusterName      string
	RequestedVersion string
}

func Scheduled() Event {
	return Event{Kind: KindScheduled}
}

// MetricLabel observes processing by trigger kind.
func (e Event) MetricLabel() string {
	return string(e.Kind)
}

func (e Event) IsClusterLifecycle() bool {
	return e.Kind == KindCreateCluster || e.Kind == KindDeleteCluster
}

func (e Event) IsStackLifecycle() bool {
	switch e.Kind {
	case KindUpdateInProgress, KindUpdateComplete, KindDeleteInProgress, KindCreateComplete:
		return true
	default:
		return false
	}
}

type envelope struct {
	Source     string          `json:"source"`
	DetailType string          `json:"detail-type"`
	Detail     json.RawMessage `json:"detail"`
}

type eksDetail struct {
	EventName         string `json:"eventName"`
	RequestParameters struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"requestParameters"`
}

type stackDetail struct {
	StatusDetails struct {
		Status string `json:"status"`
	} `json:"status-details"`
}

// Decode maps an EventBridge envelope to an Event.
// Any valid JSON document decodes: shapes that are not recognized are Scheduled.
func Decode(raw []byte) (Event, error) {
	if !json.Valid(raw) {
		return Scheduled(), ErrInvalidJSON
	}

	env := envelope{}

	err := json.Unmarshal(raw, &env)
	if err != nil {
		return Scheduled(), nil
	}

	switch env.Source {
	case SourceEKS:
		return decodeEKS(env.Detail), nil
	case SourceCloudFormation:
		return decodeStack(env.Detail), nil
	default:
		return Scheduled(), nil
	}
}

func decodeEKS(raw json.RawMessage) Event {
	detail := eksDetail{}

	err := json.Unmarshal(raw, &detail)
	if err != nil {
		return Scheduled()
	}

	kind, ok := eksEventNames[detail.EventName]
	if !ok || detail.RequestParameters.Name == "" {
		return Scheduled()
	}

	ret := Event{
		Kind:        kind,
		ClusterName: detail.RequestParameters.Name,
	}

	if kind == KindCreateCluster {
		ret.RequestedVersion = detail.RequestParameters.Version
	}

	return ret
}

func decodeStack(raw json.RawMessage) Event {
	detail := stackDetail{}

	err := json.Unmarshal(raw, &detail)
	if err != nil {
		return Scheduled()
	}

	kind, ok := stackStatuses[detail.StatusDetails.Status]
	if !ok {
		return Scheduled()
	}

	return Event{Kind: kind}
}

// UnmarshalJSON lets an Event be used as a pipeline payload.
func (e *Event) UnmarshalJSON(data []byte) error {
	ret, err := Decode(data)
	if err != nil {
		return err
	}

	*e = ret

	return nil
}
