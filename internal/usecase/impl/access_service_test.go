package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accessServiceFixtures struct {
	service      usecase.AccessUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockService.MockTokenService
}

func createTestAccessService(t *testing.T) accessServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockService.NewMockTokenService(t)

	return accessServiceFixtures{
		service: NewAccessService(AccessServiceParams{
			UserRepo:     userRepo,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func TestAccessService_Authenticate_Success(t *testing.T) {
	fx := createTestAccessService(t)

	userID := uuid.New()
	fx.tokenService.EXPECT().Verify("good-token").Return(service.TokenResult{
		Valid:  true,
		Claims: &service.Claims{UserID: userID},
	})

	identity, err := fx.service.Authenticate(context.Background(), "Bearer good-token")

	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
}

func TestAccessService_Authenticate_MissingToken(t *testing.T) {
	headers := []string{"", "Bearer ", "Basic dXNlcjpwYXNz", "bearer good-token", "good-token"}

	for _, header := range headers {
		t.Run(header, func(t *testing.T) {
			fx := createTestAccessService(t)

			identity, err := fx.service.Authenticate(context.Background(), header)

			assert.Nil(t, identity)
			assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
		})
	}
}

func TestAccessService_Authenticate_InvalidToken(t *testing.T) {
	tests := []struct {
		name   string
		result service.TokenResult
	}{
		{name: "expired", result: service.TokenResult{Valid: false, Reason: "token is expired"}},
		{name: "valid without claims", result: service.TokenResult{Valid: true}},
		{name: "nil subject", result: service.TokenResult{Valid: true, Claims: &service.Claims{UserID: uuid.Nil}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccessService(t)
			fx.tokenService.EXPECT().Verify("tok").Return(tt.result)

			_, err := fx.service.Authenticate(context.Background(), "Bearer tok")

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 401, appErr.HTTPCode())
			assert.Equal(t, "Invalid or expired token", appErr.Message())
		})
	}
}

func TestAccessService_AuthorizeAdmin(t *testing.T) {
	userID := uuid.New()

	t.Run("admin", func(t *testing.T) {
		fx := createTestAccessService(t)
		ctx := context.Background()
		admin := &entity.User{ID: userID, Role: entity.RoleAdmin}
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(admin, nil)

		user, err := fx.service.AuthorizeAdmin(ctx, userID)

		require.NoError(t, err)
		assert.Same(t, admin, user)
	})

	t.Run("regular user", func(t *testing.T) {
		fx := createTestAccessService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)

		_, err := fx.service.AuthorizeAdmin(ctx, userID)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 403, appErr.HTTPCode())
		assert.Equal(t, "Admin access required", appErr.Message())
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAccessService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, domainerrors.ErrUserNotFound)

		_, err := fx.service.AuthorizeAdmin(ctx, userID)

		assert.True(t, errors.Is(err, domainerrors.ErrAdminRequired))
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestAccessService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("connection reset"))

		_, err := fx.service.AuthorizeAdmin(ctx, userID)

		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrAdminRequired))
		assert.Contains(t, err.Error(), "connection reset")
	})
}
