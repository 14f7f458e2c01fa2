package pubsub

import (
	"context"
	"log/slog"

	"todolist/internal/domain/service"
	"todolist/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/goccy/go-json"
)

type cloudPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	name   string
	logger *slog.Logger
}

// NewGooglePubSubPublisher publishes todo events to projects/<projectID>/topics/<topicID>.
// The topic must already exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	name := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "todo event topic %s is not reachable", name)
	}

	logger.Info("Todo events go to Google Pub/Sub", slog.String("topic", name))

	return &cloudPublisher{
		client: client,
		topic:  client.Publisher(topicID),
		name:   name,
		logger: logger,
	}, nil
}

func (p *cloudPublisher) PublishTodoEvent(ctx context.Context, event *service.TodoEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode todo event")
	}

	messageID, err := p.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s to %s", event.Type, p.name)
	}

	p.logger.Debug("Todo event published",
		slog.String("event_id", event.EventID),
		slog.String("message_id", messageID),
	)

	return nil
}

// Close flushes buffered messages before releasing the client.
func (p *cloudPublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
