package handler

import (
	"time"

	"storefront/internal/domain/entity"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AdminUserResponse adds the creation time shown in the admin console.
type AdminUserResponse struct {
	UserResponse
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  entity.RoleOrDefault(user.Role.String()).String(),
	}
}

func toAdminUserResponses(users []*entity.User) []AdminUserResponse {
	out := make([]AdminUserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, AdminUserResponse{
			UserResponse: toUserResponse(user),
			CreatedAt:    user.CreatedAt,
		})
	}

	return out
}

// CartResponse wraps the cart lines.
type CartResponse struct {
	Items []entity.CartItem `json:"items"`
}

// FavoritesResponse wraps the favorite product ids.
type FavoritesResponse struct {
	ProductIDs []string `json:"productIds"`
}

// UploadResponse carries the public URL of an uploaded image.
type UploadResponse struct {
	URL string `json:"url"`
}

// nonNil keeps empty results rendering as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
