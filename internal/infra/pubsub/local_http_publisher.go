package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"time"

	"todolist/internal/domain/service"
	"todolist/internal/errors"

	"github.com/goccy/go-json"
)

const (
	localPublishTimeout = 30 * time.Second
	localSubscription   = "projects/local/subscriptions/todo-events"
)

// PushMessage is the envelope a Pub/Sub push subscription delivers. The local
// publisher produces the same shape so a consumer can be developed without GCP.
type PushMessage struct {
	Message      PushPayload `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushPayload carries the base64 encoded event.
type PushPayload struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

func newPushMessage(event *service.TodoEvent) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode todo event")
	}

	return &PushMessage{
		Message: PushPayload{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  eventAttributes(event),
			MessageID:   event.EventID,
			PublishTime: event.OccurredAt.UTC().Format(time.RFC3339),
		},
		Subscription: localSubscription,
	}, nil
}

type pushPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher posts every event to endpoint as a push delivery.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &pushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishTimeout},
		logger:   logger,
	}
}

func (p *pushPublisher) PublishTodoEvent(ctx context.Context, event *service.TodoEvent) error {
	msg, err := newPushMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "encode push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s", event.Type)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint %s answered %d", p.endpoint, resp.StatusCode)
	}

	p.logger.Debug("Todo event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *pushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
