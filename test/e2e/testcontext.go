package e2e

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

const (
	region     = "us-east-1"
	accessKey  = "test"
	secretKey  = "test"
	appVersion = "1.0.0"

	maxSizeName = 12
)

type TestConfig struct {
	Name        string
	TopicName   string
	QueueName   string
	ClusterName string
}

type TestContext struct {
	Config TestConfig

	binary   string
	endpoint string
	workDir  string

	snsClient *sns.Client
	sqsClient *sqs.Client

	topicARN string
	queueURL string

	kubeAPI        *httptest.Server
	kubeconfigPath string
}

var random *rand.Rand

func init() {
	now := time.Now()

	random = rand.New(rand.NewSource(now.UnixMilli()))
}

func CreateTestConfig(test string) TestConfig {
	prefix := test
	if len(test) > maxSizeName {
		prefix = test[:maxSizeName]
	}

	name := fmt.Sprintf("%s-%x", prefix, random.Int31())

	return TestConfig{
		Name:        name,
		TopicName:   fmt.Sprintf("%s-topic", name),
		QueueName:   fmt.Sprintf("%s-queue", name),
		ClusterName: fmt.Sprintf("%s-cluster", name),
	}
}

// CreateTestContext connects to the localstack instance listening on endpoint.
func CreateTestContext(ctx context.Context, conf TestConfig, binary string, endpoint string, workDir string) (TestContext, error) {
	ret := TestContext{
		Config:   conf,
		binary:   binary,
		endpoint: endpoint,
		workDir:  workDir,
	}

	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		config.WithBaseEndpoint(endpoint),
		config.WithRegion(region),
	)
	if err != nil {
		return ret, fmt.Errorf("failed to create localstack config: %w", err)
	}

	ret.snsClient = sns.NewFromConfig(awsConfig)
	ret.sqsClient = sqs.NewFromConfig(awsConfig)

	return ret, nil
}

// Generic func

// DeployAll creates the topic, a queue subscribed to it and a kubernetes API reporting serverMinor.
func (tc *TestContext) DeployAll(ctx context.Context, serverMinor string) error {
	err := tc.CreateTopic(ctx)
	if err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}

	err = tc.StartKubeAPI(serverMinor)
	if err != nil {
		return fmt.Errorf("failed to start kubernetes api: %w", err)
	}

	return nil
}

func (tc *TestContext) Shutdown(ctx context.Context) error {
	if tc.kubeAPI != nil {
		tc.kubeAPI.Close()
	}

	_, err := tc.sqsClient.DeleteQueue(ctx, &sqs.DeleteQueueInput{QueueUrl: aws.String(tc.queueURL)})
	if err != nil {
		return fmt.Errorf("failed to delete queue: %w", err)
	}

	_, err = tc.snsClient.DeleteTopic(ctx, &sns.DeleteTopicInput{TopicArn: aws.String(tc.topicARN)})
	if err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}

	return nil
}

// Notifier func

// RunNotifier runs the notifier once, eventFile empty meaning the scheduled checks.
func (tc *TestContext) RunNotifier(eventFile string) (CommandOutput, error) {
	args := []string{"run"}
	if eventFile != "" {
		args = append(args, "--event", eventFile)
	}

	env := map[string]string{
		"HOME":                  os.Getenv("HOME"),
		"AWS_ACCESS_KEY_ID":     accessKey,
		"AWS_SECRET_ACCESS_KEY": secretKey,
		"AWS_ENDPOINT_URL":      tc.endpoint,
		"AWS_REGION":            region,
		"VERSION":               appVersion,
		"STACK_NAME":            "serverlessrepo-" + tc.Config.Name,
		"TOPIC_ARN":             tc.topicARN,
		"APPLICATION_ID":        "arn:aws:serverlessrepo:us-east-1:123456789012:applications/eks-notifier",

		"EKSNOTIFIER_LOGS_ENCODER":        "json",
		"EKSNOTIFIER_SUPPORTWINDOW_SOURCE": "static",
		"EKSNOTIFIER_INVENTORY_SOURCE":     "kubeconfig",
		"EKSNOTIFIER_INVENTORY_KUBECONFIG": tc.kubeconfigPath,
	}

	return runNotifier(tc.binary, args, env)
}

// SNS func

func (tc *TestContext) CreateTopic(ctx context.Context) error {
	topic, err := tc.snsClient.CreateTopic(ctx, &sns.CreateTopicInput{Name: aws.String(tc.Config.TopicName)})
	if err != nil {
		return fmt.Errorf("failed to create topic %s: %w", tc.Config.TopicName, err)
	}

	tc.topicARN = aws.ToString(topic.TopicArn)

	queue, err := tc.sqsClient.CreateQueue(ctx, &sqs.CreateQueueInput{QueueName: aws.String(tc.Config.QueueName)})
	if err != nil {
		return fmt.Errorf("failed to create queue %s: %w", tc.Config.QueueName, err)
	}

	tc.queueURL = aws.ToString(queue.QueueUrl)

	attributes, err := tc.sqsClient.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       queue.QueueUrl,
		AttributeNames: []sqstypes.QueueAttributeName{sqstypes.QueueAttributeNameQueueArn},
	})
	if err != nil {
		return fmt.Errorf("failed to get queue arn: %w", err)
	}

	_, err = tc.snsClient.Subscribe(ctx, &sns.SubscribeInput{
		TopicArn:   topic.TopicArn,
		Protocol:   aws.String("sqs"),
		Endpoint:   aws.String(attributes.Attributes[string(sqstypes.QueueAttributeNameQueueArn)]),
		Attributes: map[string]string{"RawMessageDelivery": "true"},
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe queue to topic: %w", err)
	}

	return nil
}

// ReceiveNotifications returns the notifications delivered so far and deletes them from the queue.
func (tc *TestContext) ReceiveNotifications(ctx context.Context) ([]string, error) {
	ret := make([]string, 0)

	resp, err := tc.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(tc.queueURL),
		MaxNumberOfMessages: 10,
		WaitTimeSeconds:     1,
	})
	if err != nil {
		return ret, fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range resp.Messages {
		ret = append(ret, aws.ToString(msg.Body))

		_, err = tc.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
			QueueUrl:      aws.String(tc.queueURL),
			ReceiptHandle: msg.ReceiptHandle,
		})
		if err != nil {
			return ret, fmt.Errorf("failed to delete message: %w", err)
		}
	}

	return ret, nil
}

// Kubernetes func

// StartKubeAPI serves the version endpoint of a cluster and writes a kubeconfig pointing at it.
func (tc *TestContext) StartKubeAPI(serverMinor string) error {
	tc.kubeAPI = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/version" {
			http.NotFound(w, r)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"major":"1","minor":"%s","gitVersion":"v1.%s.0-eks"}`, serverMinor, serverMinor)
	}))

	kubeconfig := clientcmdapi.NewConfig()
	kubeconfig.Clusters[tc.Config.ClusterName] = &clientcmdapi.Cluster{Server: tc.kubeAPI.URL}
	kubeconfig.AuthInfos[tc.Config.ClusterName] = &clientcmdapi.AuthInfo{}
	kubeconfig.Contexts[tc.Config.ClusterName] = &clientcmdapi.Context{
		Cluster:  tc.Config.ClusterName,
		AuthInfo: tc.Config.ClusterName,
	}
	kubeconfig.CurrentContext = tc.Config.ClusterName

	tc.kubeconfigPath = filepath.Join(tc.workDir, tc.Config.Name+".kubeconfig")

	err := clientcmd.WriteToFile(*kubeconfig, tc.kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to write kubeconfig: %w", err)
	}

	return nil
}

// RemoveKubeconfig drops the kubeconfig file, the next run fails to list clusters.
func (tc *TestContext) RemoveKubeconfig() error {
	err := os.Remove(tc.kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to remove kubeconfig: %w", err)
	}

	return nil
}
