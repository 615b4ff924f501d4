package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// googlePubSubSender publishes mail to a Pub/Sub topic consumed by a mail worker.
type googlePubSubSender struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubSender connects to Pub/Sub and verifies the topic exists.
func NewGooglePubSubSender(ctx context.Context, projectID, topicID, credentialsFile string, logger *slog.Logger) (service.NotificationSender, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &googlePubSubSender{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// Send publishes the message and waits for the server ack.
func (s *googlePubSubSender) Send(ctx context.Context, toAddress, subject, body string) error {
	msg := newMailMessage(ctx, toAddress, subject, body)
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	result := s.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: mailAttributes(msg),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("[GoogleSender] Mail published",
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (s *googlePubSubSender) Close() error {
	if s.publisher != nil {
		s.publisher.Stop()
	}
	if s.client != nil {
		return errors.WithStack(s.client.Close())
	}

	return nil
}
