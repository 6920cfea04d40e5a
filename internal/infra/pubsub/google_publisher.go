package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "farmlease/internal/delivery/context"
	"farmlease/internal/domain/service"
	"farmlease/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher sends farm events to a Google Cloud Pub/Sub topic,
// ordered per plot.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID
// does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not available", topicPath)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishFarmEvent(ctx context.Context, event *service.FarmEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        encoded.data,
		Attributes:  encoded.attributes,
		OrderingKey: event.PlotID,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		p.publisher.ResumePublish(event.PlotID)

		return errors.Wrapf(err, "publish %s event", event.Type)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Farm event published",
		slog.String("type", string(event.Type)),
		slog.String("plot_id", event.PlotID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
