package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "farmlease/internal/delivery/context"
	"farmlease/internal/domain/service"
	"farmlease/internal/errors"
)

const localPublishTimeout = 5 * time.Second

// localHTTPPublisher POSTs farm events in the Pub/Sub push format so a
// subscriber can be developed without a cloud project.
type localHTTPPublisher struct {
	endpoint     string
	subscription string
	httpClient   *http.Client
	logger       *slog.Logger
}

// PushMessage is the body Google Pub/Sub sends to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher posts to endpoint as if pushed from topicID.
func NewLocalHTTPPublisher(endpoint, topicID string, logger *slog.Logger) service.EventPublisher {
	if topicID == "" {
		topicID = "farm-events"
	}

	return &localHTTPPublisher{
		endpoint:     endpoint,
		subscription: "projects/local/subscriptions/" + topicID + "-push",
		httpClient:   &http.Client{Timeout: localPublishTimeout},
		logger:       logger,
	}
}

func (p *localHTTPPublisher) PublishFarmEvent(ctx context.Context, event *service.FarmEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var msg PushMessage
	msg.Subscription = p.subscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(encoded.data)
	msg.Message.Attributes = encoded.attributes
	msg.Message.MessageID = event.ResourceID
	msg.Message.OrderingKey = event.PlotID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s event", event.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint answered %d for %s event", resp.StatusCode, event.Type)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Farm event pushed",
		slog.String("type", string(event.Type)),
		slog.String("endpoint", p.endpoint),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
