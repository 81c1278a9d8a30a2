package pubsub

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// cloudPublisher sends catalog events to a Cloud Pub/Sub topic with ordering enabled.
type cloudPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// NewGooglePubSubPublisher verifies the topic exists before returning so a
// misconfigured deployment fails at startup rather than on the first admin write.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicName := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "catalog topic %s is not available", topicName)
	}

	topic := client.Publisher(topicID)
	topic.EnableMessageOrdering = true

	logger.Info("Catalog events publish to Cloud Pub/Sub", slog.String("topic", topicName))

	return &cloudPublisher{client: client, topic: topic, logger: logger}, nil
}

func (p *cloudPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	result := p.topic.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		p.topic.ResumePublish(msg.orderingKey)

		return errors.Wrapf(err, "failed to publish %s", event.Type)
	}

	p.logger.DebugContext(ctx, "Catalog event published",
		slog.String("event_type", event.Type),
		slog.String("ordering_key", msg.orderingKey),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *cloudPublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
