// Package service declares the ports the usecases depend on. Implementations live under infra.
package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims are the identity facts carried by a verified token.
type Claims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenResult is the outcome of verifying a token. When Valid is false, Claims is nil
// and Reason names the failure for logging only.
type TokenResult struct {
	Valid  bool
	Claims *Claims
	Reason string
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue signs a token for userID. A non-positive ttl uses the configured default.
	Issue(userID uuid.UUID, ttl time.Duration) (string, error)

	// Verify checks signature, algorithm and expiry. It never returns an error or panics.
	Verify(token string) TokenResult
}

// PasswordHasher turns account passwords into stored digests and checks logins against them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
