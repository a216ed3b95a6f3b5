package notification

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type SNSPublishAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher sends plain text messages to a single topic.
type SNSPublisher struct {
	client   SNSPublishAPI
	topicARN string
}

func NewSNSPublisher(client SNSPublishAPI, topicARN string) SNSPublisher {
	return SNSPublisher{
		client:   client,
		topicARN: topicARN,
	}
}

// Publish returns the id SNS assigned to the message.
func (p SNSPublisher) Publish(ctx context.Context, message string) (string, error) {
	out, err := p.client.Publish(ctx, &sns.PublishInput{
		Message:  &message,
		TopicArn: &p.topicARN,
	})
	if err != nil {
		return "", fmt.Errorf("failed to publish to %s: %w", p.topicARN, err)
	}

	return aws.ToString(out.MessageId), nil
}
