// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
// Lookups that miss return domainerrors.ErrUserNotFound.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns every user ordered by creation time.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user. A taken email yields domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole sets the role of an existing user and returns the updated record.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) (*entity.User, error)
}
