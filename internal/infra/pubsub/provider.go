// Package pubsub delivers catalog change events to Cloud Pub/Sub, to a local
// push endpoint, or nowhere, depending on pubsub.provider.
package pubsub

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// discardPublisher drops events when no provider is configured.
type discardPublisher struct {
	logger *slog.Logger
}

func (p discardPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	p.logger.DebugContext(ctx, "Catalog event dropped, no publisher configured",
		slog.String("event_type", event.Type),
		slog.String("entity_id", event.EntityID),
	)

	return nil
}

func (discardPublisher) Close() error { return nil }

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher for the configured provider and closes it on stop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := selectPublisher(params.Ctx, params.Config.PubSub, params.Logger)
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

func selectPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Catalog events disabled")

		return discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Catalog events push to local endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case ProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
