package config

import (
	"strings"
	"time"
)

const (
	appNamePrefix = "serverlessrepo-"
	chinaPrefix   = "cn-"
)

type Config struct {
	GracefulDuration time.Duration
	Region           string
	Version          string
	Stack            Stack
	Notification     Notification
	Registry         Registry
	SupportWindow    SupportWindow
	Inventory        Inventory
	Metrics          Metrics
	Logs             Logs
	DeadLetterQueue  S3
	Kafka            Kafka
}

// IsChinaPartition reports whether the configured region belongs to the aws-cn partition.
func (c Config) IsChinaPartition() bool {
	return strings.HasPrefix(c.Region, chinaPrefix)
}

// ApplicationID returns the registry application matching the region partition.
func (c Config) ApplicationID() string {
	if c.IsChinaPartition() {
		return c.Registry.ApplicationIDCN
	}

	return c.Registry.ApplicationID
}

// AppName is the name an operator gave the application when deploying it from the registry.
// The first occurrence of the registry prefix is removed wherever it appears in the stack name.
func (c Config) AppName() string {
	return strings.Replace(c.Stack.Name, appNamePrefix, "", 1)
}

type Stack struct {
	Name string
	ID   string
}

type Notification struct {
	TopicARN string
	Locale   string
}

type Registry struct {
	ApplicationID   string
	ApplicationIDCN string
}

type SupportWindowSourceType string

const (
	SupportWindowSourceStatic SupportWindowSourceType = "static"
	SupportWindowSourceHTTP   SupportWindowSourceType = "http"
	SupportWindowSourceS3     SupportWindowSourceType = "s3"
)

type SupportWindow struct {
	Source  SupportWindowSourceType
	URL     string
	Timeout time.Duration
	S3      S3
	Key     string
}

type InventorySourceType string

const (
	InventorySourceEKS        InventorySourceType = "eks"
	InventorySourceKubeconfig InventorySourceType = "kubeconfig"
)

type Inventory struct {
	Source       InventorySourceType
	Kubeconfig   string
	Concurrency  int
	DescribeRate float64
}

type Metrics struct {
	Port    int
	PushURL string
}

type Logs struct {
	Level   int
	Encoder EncoderType
}

type EncoderType string

const (
	EncoderTypeJson    EncoderType = "json"
	EncoderTypeConsole EncoderType = "console"
)

type S3 struct {
	Bucket       string
	KeyPrefix    string
	BaseEndpoint string
	Region       string
	UsePathStyle bool
	Creds        AWSCreds
}

type AWSCreds struct {
	AccessKeyID     string
	SecretAccessKey string
}

func (c AWSCreds) String() string {
	if c.AccessKeyID != "" && c.SecretAccessKey != "" {
		return "creds set"
	}

	return "no creds"
}

type Kafka struct {
	Broker   KafkaBroker
	Consumer KafkaConsumer
}

type KafkaBroker struct {
	URLs    string
	Version string
	Creds   KafkaCreds
}

type KafkaCreds struct {
	Username  string
	Password  string
	Mechanism string
	TLS       bool
}

func (c KafkaCreds) String() string {
	if c.Username != "" && c.Password != "" {
		return "creds set (" + c.Mechanism + ")"
	}

	return "no creds"
}

type KafkaConsumer struct {
	Topic string
	Group string
}
