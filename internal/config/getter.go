package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const prefix = "EKSNOTIFIER"

const (
	defaultSupportWindowURL   = "https://raw.githubusercontent.com/aws-samples/aws-serverless-notifier-plugins/main/eks/versions.json"
	defaultSupportWindowURLCN = "https://gcore.jsdelivr.net/gh/aws-samples/aws-serverless-notifier-plugins/eks/versions.json"
)

// Environment variables set by the deployment template, read without prefix.
var deploymentEnv = map[string]string{
	"region":                   "AWS_REGION",
	"version":                  "VERSION",
	"stack.name":               "STACK_NAME",
	"stack.id":                 "STACK_ID",
	"notification.topicArn":    "TOPIC_ARN",
	"registry.applicationId":   "APPLICATION_ID",
	"registry.applicationIdCn": "APPLICATION_ID_CN",
}

var conf Config

// Parse reads the configuration file given as parameter.
func Parse(confFile string) (*Config, error) {
	setDefault()

	viper.SetEnvPrefix(prefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	for key, env := range deploymentEnv {
		err := viper.BindEnv(key, env)
		if err != nil {
			return &conf, fmt.Errorf("failed to bind %s to %s: %w", key, env, err)
		}
	}

	if len(confFile) > 0 {
		viper.SetConfigFile(confFile)

		err := viper.ReadInConfig()
		if err != nil {
			return &conf, fmt.Errorf("failed to read config file %v: %w", confFile, err)
		}
	}

	err := viper.Unmarshal(&conf)
	if err != nil {
		return &conf, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if conf.SupportWindow.URL == "" {
		conf.SupportWindow.URL = defaultSupportWindowURL
		if conf.IsChinaPartition() {
			conf.SupportWindow.URL = defaultSupportWindowURLCN
		}
	}

	return &conf, nil
}

// Validate checks the settings every entry point needs to build a notifier.
func (c Config) Validate() error {
	missing := make([]string, 0)

	for key, value := range map[string]string{
		"region":                c.Region,
		"version":               c.Version,
		"notification.topicArn": c.Notification.TopicARN,
	} {
		if value == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing mandatory settings: %s", strings.Join(missing, ", "))
	}

	switch c.SupportWindow.Source {
	case SupportWindowSourceStatic, SupportWindowSourceHTTP, SupportWindowSourceS3:
	default:
		return fmt.Errorf("unexpected support window source %q", c.SupportWindow.Source)
	}

	switch c.Inventory.Source {
	case InventorySourceEKS, InventorySourceKubeconfig:
	default:
		return fmt.Errorf("unexpected inventory source %q", c.Inventory.Source)
	}

	return nil
}

func setDefault() {
	viper.SetDefault("gracefulDuration", "10s")
	viper.SetDefault("logs.level", 4)
	viper.SetDefault("logs.encoder", EncoderTypeConsole)
	viper.SetDefault("metrics.port", 7777)
	viper.SetDefault("metrics.pushUrl", "")
	viper.SetDefault("notification.locale", "en")
	viper.SetDefault("supportWindow.source", SupportWindowSourceHTTP)
	viper.SetDefault("supportWindow.url", "")
	viper.SetDefault("supportWindow.timeout", "5s")
	viper.SetDefault("supportWindow.key", "eks/versions.json")
	viper.SetDefault("supportWindow.s3.bucket", "")
	viper.SetDefault("supportWindow.s3.region", "")
	viper.SetDefault("inventory.source", InventorySourceEKS)
	viper.SetDefault("inventory.kubeconfig", "")
	viper.SetDefault("inventory.concurrency", 0)
	viper.SetDefault("inventory.describeRate", 0)
	viper.SetDefault("kafka.broker.urls", "")
	viper.SetDefault("kafka.broker.version", "3.6.0")
	viper.SetDefault("kafka.broker.creds.mechanism", "SCRAM-SHA-512")
	viper.SetDefault("kafka.consumer.topic", "")
	viper.SetDefault("kafka.consumer.group", "eks-notifier")
	viper.SetDefault("deadLetterQueue.bucket", "")
	viper.SetDefault("deadLetterQueue.keyPrefix", "dlq")
}
