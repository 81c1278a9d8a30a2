package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedServiceFixtures struct {
	service   usecase.SeedUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestSeedService(t *testing.T) seedServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return seedServiceFixtures{
		service:   NewSeedService(SeedServiceParams{TxManager: txManager, Logger: newDiscardLogger()}),
		txManager: txManager,
	}
}

type seedRepos struct {
	factory    *mockRepo.MockRepositoryFactory
	categories *mockRepo.MockCategoryRepository
	products   *mockRepo.MockProductRepository
	ads        *mockRepo.MockAdSlideRepository
	notices    *mockRepo.MockNoticeRepository
	home       *mockRepo.MockHomeSectionRepository
}

func newSeedRepos(t *testing.T) seedRepos {
	r := seedRepos{
		factory:    mockRepo.NewMockRepositoryFactory(t),
		categories: mockRepo.NewMockCategoryRepository(t),
		products:   mockRepo.NewMockProductRepository(t),
		ads:        mockRepo.NewMockAdSlideRepository(t),
		notices:    mockRepo.NewMockNoticeRepository(t),
		home:       mockRepo.NewMockHomeSectionRepository(t),
	}
	r.factory.EXPECT().CategoryRepo().Return(r.categories).Maybe()
	r.factory.EXPECT().ProductRepo().Return(r.products).Maybe()
	r.factory.EXPECT().AdSlideRepo().Return(r.ads).Maybe()
	r.factory.EXPECT().NoticeRepo().Return(r.notices).Maybe()
	r.factory.EXPECT().HomeSectionRepo().Return(r.home).Maybe()

	return r
}

func (r seedRepos) expectWrites(ctx context.Context, catalog *defaultCatalog) {
	r.categories.EXPECT().ReplaceTree(ctx, catalog.Categories).Return(catalog.Categories, nil)
	r.products.EXPECT().ReplaceAll(ctx, catalog.Products).Return(nil)
	r.ads.EXPECT().ReplaceAll(ctx, catalog.Ads).Return(nil)
	r.notices.EXPECT().ReplaceAll(ctx, catalog.Notices).Return(nil)
	r.home.EXPECT().Replace(ctx, catalog.Home).Return(catalog.Home, nil)
}

func TestSeedService_Seed(t *testing.T) {
	fx := createTestSeedService(t)

	ctx := context.Background()
	catalog := newDefaultCatalog()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			repos := newSeedRepos(t)
			repos.expectWrites(ctx, catalog)

			return fn(repos.factory)
		})

	report, err := fx.service.Seed(ctx, false)

	require.NoError(t, err)
	assert.Equal(t, &usecase.SeedReport{
		Categories: len(catalog.Categories),
		Products:   len(catalog.Products),
		Ads:        len(catalog.Ads),
		Notices:    len(catalog.Notices),
	}, report)
}

func TestSeedService_Seed_DropClearsSingletonsFirst(t *testing.T) {
	fx := createTestSeedService(t)

	ctx := context.Background()
	catalog := newDefaultCatalog()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			repos := newSeedRepos(t)
			clearTree := repos.categories.EXPECT().Clear(ctx).Return(nil)
			clearHome := repos.home.EXPECT().Clear(ctx).Return(nil)
			repos.expectWrites(ctx, catalog)
			repos.categories.ExpectedCalls[len(repos.categories.ExpectedCalls)-1].NotBefore(clearTree.Call)
			repos.home.ExpectedCalls[len(repos.home.ExpectedCalls)-1].NotBefore(clearHome.Call)

			return fn(repos.factory)
		})

	_, err := fx.service.Seed(ctx, true)

	require.NoError(t, err)
}

func TestSeedService_Seed_FailureReturnsError(t *testing.T) {
	fx := createTestSeedService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			repos := newSeedRepos(t)
			repos.categories.EXPECT().ReplaceTree(ctx, mock.Anything).Return(nil, nil)
			repos.products.EXPECT().ReplaceAll(ctx, mock.Anything).Return(errors.New("duplicate key"))

			return fn(repos.factory)
		})

	report, err := fx.service.Seed(ctx, false)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to seed products")
}

func TestDefaultCatalog_IsConsistent(t *testing.T) {
	catalog := newDefaultCatalog()

	_, ok := entity.ValidateCategoryTree(catalog.Categories)
	require.True(t, ok)

	known := map[string]bool{}
	for _, p := range catalog.Products {
		assert.False(t, known[p.ID], "duplicate product id %s", p.ID)
		known[p.ID] = true
		assert.NotEmpty(t, p.CategoryID)
	}

	for _, id := range catalog.Home.AllProductIDs() {
		assert.True(t, known[id], "home section references unknown product %s", id)
	}
}
