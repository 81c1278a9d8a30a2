package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type catalogEventServiceFixtures struct {
	homeRepo *mockRepo.MockHomeSectionRepository
}

func createTestCatalogEventService(t *testing.T) (*catalogEventServiceFixtures, *catalogEventService) {
	fx := &catalogEventServiceFixtures{
		homeRepo: mockRepo.NewMockHomeSectionRepository(t),
	}

	srv := NewCatalogEventService(CatalogEventServiceParams{
		HomeRepo: fx.homeRepo,
		Logger:   newDiscardLogger(),
	}).(*catalogEventService)

	return fx, srv
}

func TestCatalogEventService_ProductDeletedPrunesHome(t *testing.T) {
	fx, srv := createTestCatalogEventService(t)

	fx.homeRepo.EXPECT().RemoveProductID(mock.Anything, "p-2").Return(true, nil).Once()

	err := srv.HandleCatalogEvent(context.Background(), &service.CatalogEvent{
		Type:     service.EventProductDeleted,
		EntityID: "p-2",
	})

	assert.NoError(t, err)
}

func TestCatalogEventService_ProductNotInHome(t *testing.T) {
	fx, srv := createTestCatalogEventService(t)

	fx.homeRepo.EXPECT().RemoveProductID(mock.Anything, "p-9").Return(false, nil).Once()

	err := srv.HandleCatalogEvent(context.Background(), &service.CatalogEvent{
		Type:     service.EventProductDeleted,
		EntityID: "p-9",
	})

	assert.NoError(t, err)
}

func TestCatalogEventService_EmptyEntityIDSkipsStore(t *testing.T) {
	_, srv := createTestCatalogEventService(t)

	err := srv.HandleCatalogEvent(context.Background(), &service.CatalogEvent{Type: service.EventProductDeleted})

	assert.NoError(t, err)
}

func TestCatalogEventService_StoreFailure(t *testing.T) {
	fx, srv := createTestCatalogEventService(t)

	fx.homeRepo.EXPECT().RemoveProductID(mock.Anything, "p-1").Return(false, errors.New("connection refused")).Once()

	err := srv.HandleCatalogEvent(context.Background(), &service.CatalogEvent{
		Type:     service.EventProductDeleted,
		EntityID: "p-1",
	})

	assert.ErrorContains(t, err, "failed to prune home section")
	assert.ErrorContains(t, err, "connection refused")
}

func TestCatalogEventService_OtherEventsIgnored(t *testing.T) {
	_, srv := createTestCatalogEventService(t)

	for _, eventType := range []string{service.EventProductCreated, service.EventHomeReplaced, "unknown.type"} {
		err := srv.HandleCatalogEvent(context.Background(), &service.CatalogEvent{Type: eventType, EntityID: "p-1"})
		assert.NoError(t, err)
	}
}
