// Package pubsub delivers farm events to subscribers outside the service.
package pubsub

import (
	"context"
	"log/slog"

	"farmlease/config"
	"farmlease/internal/domain/constants"
	"farmlease/internal/domain/service"
	"farmlease/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct{}

func (noopPublisher) PublishFarmEvent(context.Context, *service.FarmEvent) error { return nil }
func (noopPublisher) Close() error                                               { return nil }

// PublisherParams are the dependencies of NewEventPublisher.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the provider named in config and closes it on stop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Farm events disabled, no pubsub provider configured")

		return noopPublisher{}, nil
	}
	if err := validatePubSub(cfg); err != nil {
		return nil, err
	}

	logger.Info("Farm events enabled",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
	)

	if cfg.Provider == constants.PubSubProviderLocal {
		return NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.TopicID, logger), nil
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

func validatePubSub(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	return nil
}

// Module provides the farm event publisher.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
