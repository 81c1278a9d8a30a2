// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultMinPasswordLength = 6

	// bcrypt only reads the first 72 bytes and rejects longer input.
	maxPasswordBytes = 72
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	minPasswordLength int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	minPasswordLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &userService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user account and signs a token for it.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrCredentialsRequired
	}
	if utf8.RuneCountInString(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.Validation(fmt.Sprintf("Password must be at least %d characters", srv.minPasswordLength))
	}
	if len(input.Password) > maxPasswordBytes {
		return nil, domainerrors.Validation(fmt.Sprintf("Password must be at most %d bytes", maxPasswordBytes))
	}

	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Registration with taken email", slog.String("email", email))

		return nil, domainerrors.ErrUserAlreadyExists
	case !errors.Is(err, domainerrors.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to look up email during registration")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(input.Name),
		Role:         entity.RoleUser,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	output, err := srv.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID), slog.String("email", email))

	return output, nil
}

// Login verifies credentials. Unknown email and wrong password are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrCredentialsRequired
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			srv.log(ctx).Warn("Login for unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login with wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	output, err := srv.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return output, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser changes the role of a user. The role is checked before the empty-patch rule.
func (srv *userService) UpdateUser(ctx context.Context, userID uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	if input.Role != nil && !entity.Role(*input.Role).IsValid() {
		return nil, domainerrors.Validation("role must be user or admin")
	}
	if input.Role == nil {
		return nil, domainerrors.Validation("No valid fields to update")
	}

	user, err := srv.userRepo.UpdateRole(ctx, userID, entity.Role(*input.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user role")
	}

	srv.log(ctx).Info("User role updated", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return user, nil
}

func (srv *userService) PromoteToAdmin(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user to promote")
	}
	if user.IsAdmin() {
		return user, nil
	}

	promoted, err := srv.userRepo.UpdateRole(ctx, user.ID, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to promote user")
	}

	srv.log(ctx).Info("User promoted to admin", slog.Any("userID", promoted.ID))

	return promoted, nil
}

func (srv *userService) issue(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Issue(user.ID, 0)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WithDetails(err.Error())
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}
