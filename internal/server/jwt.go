package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ianattheGrid/jobz/internal/config"
	"github.com/ianattheGrid/jobz/internal/revocation"
	"github.com/ianattheGrid/jobz/internal/server/middleware"
)

// ErrTokenRevoked is returned for a token that was signed out.
var ErrTokenRevoked = errors.New("token has been revoked")

// Claims represents JWT claims with user ID and role. RegisteredClaims.ID
// carries the jti used for sign out.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// GetUserID returns the user ID from the claims.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// GetRole returns the account role from the claims.
func (c *Claims) GetRole() string {
	return c.Role
}

// JWTService provides JWT token generation and validation functionality.
type JWTService struct {
	config  *config.JWTConfig
	revoked revocation.List
	now     func() time.Time
}

// NewJWTService creates a new JWT service with the given configuration.
func NewJWTService(cfg *config.JWTConfig, revoked revocation.List) *JWTService {
	return &JWTService{
		config:  cfg,
		revoked: revoked,
		now:     time.Now,
	}
}

// GenerateToken generates a signed token for the user and returns it with its
// expiry.
func (s *JWTService) GenerateToken(userID uuid.UUID, role string) (string, time.Time, error) {
	// Claims carry whole seconds; report the same expiry the token holds.
	now := s.now().Truncate(jwt.TimePrecision)
	expiresAt := now.Add(s.config.TTL)

	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.config.Issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ParseToken checks the signature and time claims of a token. It does not
// consult the revocation list.
func (s *JWTService) ParseToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	},
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("invalid token signature: %w", err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("token expired: %w", err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("malformed token: %w", err)
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid || claims.ID == "" || claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}

// ValidateToken parses a token and rejects it when it has been signed out.
func (s *JWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Revoke signs the token out until it would have expired anyway.
func (s *JWTService) Revoke(ctx context.Context, claims *Claims) error {
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.revoked.Revoke(ctx, claims.ID, ttl)
}

// AsTokenValidator returns a TokenValidator adapter for this JWTService.
// This allows the JWTService to be used with middleware without creating import cycles.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return &jwtServiceValidator{service: s}
}

// jwtServiceValidator adapts JWTService to middleware.TokenValidator interface.
type jwtServiceValidator struct {
	service *JWTService
}

func (v *jwtServiceValidator) ValidateToken(ctx context.Context, tokenString string) (middleware.Principal, error) {
	claims, err := v.service.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
