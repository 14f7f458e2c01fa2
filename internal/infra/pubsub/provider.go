// Package pubsub publishes todo change events to Google Pub/Sub or, in
// development, to a local HTTP endpoint that speaks the Pub/Sub push format.
package pubsub

import (
	"context"
	"log/slog"

	"todolist/config"
	"todolist/internal/domain/service"
	"todolist/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops events when pubsub.provider is empty.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishTodoEvent(_ context.Context, event *service.TodoEvent) error {
	p.logger.Debug("Todo event dropped, publishing disabled",
		slog.String("event_type", string(event.Type)),
		slog.Uint64("todo_id", uint64(event.TodoID)),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher selected by pubsub.provider and
// closes it when the application stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	provider := config.PubSubProviderNone
	if cfg != nil {
		provider = cfg.Provider
	}

	switch provider {
	case config.PubSubProviderNone:
		logger.Info("Todo event publishing disabled")

		return &noopPublisher{logger: logger}, nil
	case config.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub: local provider needs localEndpoint")
		}
		logger.Info("Todo events go to a local push endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub: google provider needs projectId and topicId")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("pubsub: unknown provider %q", provider)
	}
}

// eventAttributes are the message attributes subscribers filter and trace on.
func eventAttributes(event *service.TodoEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": string(event.Type),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
