package pubsub

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without provider", func(t *testing.T) {
		for _, cfg := range []*config.PubSubConfig{nil, {}} {
			p, err := selectPublisher(ctx, cfg, newTestLogger())
			require.NoError(t, err)
			assert.IsType(t, discardPublisher{}, p)
			require.NoError(t, p.PublishCatalogEvent(ctx, &service.CatalogEvent{Type: service.EventAdChanged}))
			require.NoError(t, p.Close())
		}
	})

	t.Run("local", func(t *testing.T) {
		p, err := selectPublisher(ctx, &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, newTestLogger())
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, p)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		tests := []struct {
			name string
			cfg  *config.PubSubConfig
			want string
		}{
			{"local without endpoint", &config.PubSubConfig{Provider: ProviderLocal}, "localEndpoint"},
			{"google without topic", &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "shop"}, "topicId"},
			{"unknown provider", &config.PubSubConfig{Provider: "kafka"}, `"kafka"`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := selectPublisher(ctx, tt.cfg, newTestLogger())
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.want)
			})
		}
	})
}
