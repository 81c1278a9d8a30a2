package auth

import (
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultTokenTTL = 7 * 24 * time.Hour

	// userIDClaim is read by existing storefront clients, so it is kept next to "sub".
	userIDClaim = "userId"
)

// tokenClaims is the JWT payload.
type tokenClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return newJWTService([]byte(cfg.SecretKey.Access), ttl, time.Now), nil
}

func newJWTService(secret []byte, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: secret,
		ttl:    ttl,
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(now),
		),
	}
}

// Issue signs a token carrying the user id in both "sub" and "userId".
func (s *jwtService) Issue(userID uuid.UUID, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}

	issuedAt := s.now()
	claims := tokenClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify never propagates parser errors; the reason is kept for logs.
func (s *jwtService) Verify(tokenString string) service.TokenResult {
	if tokenString == "" {
		return service.TokenResult{Reason: "empty token"}
	}

	claims := &tokenClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		reason := "invalid token"
		if err != nil {
			reason = err.Error()
		}

		return service.TokenResult{Reason: reason}
	}

	if claims.UserID == "" {
		return service.TokenResult{Reason: "missing " + userIDClaim + " claim"}
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return service.TokenResult{Reason: "malformed " + userIDClaim + " claim"}
	}

	result := service.TokenResult{
		Valid:  true,
		Claims: &service.Claims{UserID: userID},
	}
	if claims.IssuedAt != nil {
		result.Claims.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.Claims.ExpiresAt = claims.ExpiresAt.Time
	}

	return result
}
