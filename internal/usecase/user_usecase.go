// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateUserInput is the admin patch for a user. Nil fields are left untouched.
type UpdateUserInput struct {
	Role *string
}

// --- Output DTOs ---

// AuthOutput is returned by register and login.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for account operations.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// ListUsers returns every account for the admin console.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser applies an admin patch; an empty patch is a validation error.
	UpdateUser(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*entity.User, error)

	// PromoteToAdmin grants the admin role to the account registered under email.
	PromoteToAdmin(ctx context.Context, email string) (*entity.User, error)
}
