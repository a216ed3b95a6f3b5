package processingerror

import "time"

// FailedTrigger is the dead letter record of a trigger that could not be processed.
type FailedTrigger struct {
	Context FailureContext
	Trigger Trigger
	Inputs  []KeyValue
	Reason  Reason
}

type FailureContext struct {
	Component Component
	Time      time.Time
	Host      string
}

type Component struct {
	Version  string
	Branch   string
	Revision string
}

type Trigger struct {
	Kind      string
	Topic     string
	Partition int32
	Offset    int64
	Payload   []byte
}

type KeyValue struct {
	Source string
	Key    string
	Value  []byte
}

type Reason struct {
	Category string
	Error    string
}
