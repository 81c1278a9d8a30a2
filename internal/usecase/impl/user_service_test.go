package impl

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/auth"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       &config.Config{Auth: &config.AuthConfig{MinPasswordLength: 6}},
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	fx.tokenService.EXPECT().Issue(userID, time.Duration(0)).Return("signed-token", nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "  New@Example.com ",
		Password: "secret1",
		Name:     " Ada ",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, "Ada", output.User.Name)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, "hashed", output.User.PasswordHash)
}

func TestUserService_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.RegisterInput
		message string
	}{
		{
			name:    "missing email",
			input:   usecase.RegisterInput{Password: "secret1"},
			message: "Email and password are required",
		},
		{
			name:    "missing password",
			input:   usecase.RegisterInput{Email: "a@example.com"},
			message: "Email and password are required",
		},
		{
			name:    "short password",
			input:   usecase.RegisterInput{Email: "a@example.com", Password: "12345"},
			message: "Password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			output, err := fx.service.Register(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "taken@example.com", Password: "secret1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("", errors.New("cost too high"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@example.com", Password: "secret1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Register_PasswordLengthBoundary(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	srv := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenService,
		Config:       &config.Config{Auth: &config.AuthConfig{MinPasswordLength: 6}},
		Logger:       newDiscardLogger(),
	})

	t.Run("longer than bcrypt accepts", func(t *testing.T) {
		_, err := srv.Register(ctx, usecase.RegisterInput{Email: "long@example.com", Password: strings.Repeat("x", 80)})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		assert.Equal(t, "Password must be at most 72 bytes", appErr.Message())
	})

	t.Run("multibyte characters count as bytes", func(t *testing.T) {
		_, err := srv.Register(ctx, usecase.RegisterInput{Email: "long@example.com", Password: strings.Repeat("é", 37)})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("exactly 72 bytes hashes", func(t *testing.T) {
		userID := uuid.New()
		userRepo.EXPECT().FindByEmail(ctx, "edge@example.com").Return(nil, domainerrors.ErrUserNotFound)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
			Return(nil)
		tokenService.EXPECT().Issue(userID, time.Duration(0)).Return("signed-token", nil)

		output, err := srv.Register(ctx, usecase.RegisterInput{Email: "edge@example.com", Password: strings.Repeat("x", 72)})

		require.NoError(t, err)
		assert.NotEmpty(t, output.User.PasswordHash)
	})
}

func TestUserService_Login(t *testing.T) {
	userID := uuid.New()
	stored := &entity.User{ID: userID, Email: "a@example.com", PasswordHash: "hashed", Role: entity.RoleUser}

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(stored, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
		fx.tokenService.EXPECT().Issue(userID, time.Duration(0)).Return("token", nil)

		output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "A@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "token", output.Token)
		assert.Equal(t, stored, output.User)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, domainerrors.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "secret1"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(stored, nil)
		fx.hasher.EXPECT().Check("wrong-pass", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@example.com", Password: "wrong-pass"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("missing password", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "a@example.com"})

		assert.True(t, errors.Is(err, domainerrors.ErrCredentialsRequired))
	})
}

func TestUserService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.tokenService.EXPECT().Issue(stored.ID, time.Duration(0)).Return("", errors.New("no key"))

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@example.com", Password: "secret1"})

	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}

func TestUserService_UpdateUser(t *testing.T) {
	userID := uuid.New()

	t.Run("invalid role", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateUser(context.Background(), userID, usecase.UpdateUserInput{Role: stringPtr("owner")})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "role must be user or admin", appErr.Message())
	})

	t.Run("empty patch", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateUser(context.Background(), userID, usecase.UpdateUserInput{})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "No valid fields to update", appErr.Message())
	})

	t.Run("promote", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		updated := &entity.User{ID: userID, Role: entity.RoleAdmin}

		fx.userRepo.EXPECT().UpdateRole(ctx, userID, entity.RoleAdmin).Return(updated, nil)

		user, err := fx.service.UpdateUser(ctx, userID, usecase.UpdateUserInput{Role: stringPtr("admin")})

		require.NoError(t, err)
		assert.Equal(t, updated, user)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().UpdateRole(ctx, userID, entity.RoleUser).Return(nil, domainerrors.ErrUserNotFound)

		_, err := fx.service.UpdateUser(ctx, userID, usecase.UpdateUserInput{Role: stringPtr("user")})

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestUserService_PromoteToAdmin(t *testing.T) {
	t.Run("already admin", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		admin := &entity.User{ID: uuid.New(), Email: "boss@example.com", Role: entity.RoleAdmin}

		fx.userRepo.EXPECT().FindByEmail(ctx, "boss@example.com").Return(admin, nil)

		user, err := fx.service.PromoteToAdmin(ctx, "boss@example.com")

		require.NoError(t, err)
		assert.Same(t, admin, user)
	})

	t.Run("promotes user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		shopper := &entity.User{ID: uuid.New(), Email: "a@example.com", Role: entity.RoleUser}
		promoted := &entity.User{ID: shopper.ID, Email: shopper.Email, Role: entity.RoleAdmin}

		fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(shopper, nil)
		fx.userRepo.EXPECT().UpdateRole(ctx, shopper.ID, entity.RoleAdmin).Return(promoted, nil)

		user, err := fx.service.PromoteToAdmin(ctx, "a@example.com")

		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, domainerrors.ErrUserNotFound)

		_, err := fx.service.PromoteToAdmin(ctx, "ghost@example.com")

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}
