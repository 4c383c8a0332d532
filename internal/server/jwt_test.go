package server

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianattheGrid/jobz/internal/config"
	"github.com/ianattheGrid/jobz/internal/revocation"
)

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: testJWTSecret, TTL: time.Hour, Issuer: "jobz"}, revocation.NewMemoryList())
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(userID, "employer")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
	assert.Equal(t, "employer", claims.GetRole())
	assert.NotEmpty(t, claims.ID)

	other, _, err := svc.GenerateToken(userID, "employer")
	require.NoError(t, err)
	otherClaims, err := svc.ParseToken(other)
	require.NoError(t, err)
	assert.NotEqual(t, claims.ID, otherClaims.ID, "every token gets its own jti")
}

func TestJWTService_ExpiryMatchesClaim(t *testing.T) {
	svc := newTestJWTService()
	svc.now = func() time.Time { return time.Now().Truncate(time.Second).Add(770 * time.Millisecond) }

	token, expiresAt, err := svc.GenerateToken(uuid.New(), "candidate")
	require.NoError(t, err)
	assert.Zero(t, expiresAt.Nanosecond())

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Time.Equal(expiresAt), "claim %v, reported %v", claims.ExpiresAt.Time, expiresAt)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := newTestJWTService()
	token, _, err := svc.GenerateToken(uuid.New(), "candidate")
	require.NoError(t, err)

	wrongSecret := NewJWTService(&config.JWTConfig{Secret: "another-secret-that-is-32-bytes-long!!", TTL: time.Hour, Issuer: "jobz"}, revocation.NewMemoryList())
	wrongIssuer := NewJWTService(&config.JWTConfig{Secret: testJWTSecret, TTL: time.Hour, Issuer: "someone-else"}, revocation.NewMemoryList())

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.New(), Role: "employer",
		RegisteredClaims: jwt.RegisteredClaims{ID: "x", Issuer: "jobz"}})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		svc   *JWTService
		token string
	}{
		{"empty", svc, ""},
		{"malformed", svc, "not.a.token"},
		{"wrong secret", wrongSecret, token},
		{"wrong issuer", wrongIssuer, token},
		{"alg none", svc, noneToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.ValidateToken(context.Background(), tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService()
	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	token, _, err := svc.GenerateToken(uuid.New(), "candidate")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_Revoke(t *testing.T) {
	svc := newTestJWTService()
	ctx := context.Background()

	token, _, err := svc.GenerateToken(uuid.New(), "candidate")
	require.NoError(t, err)
	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, claims))
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// parsing alone does not consult the list
	_, err = svc.ParseToken(token)
	assert.NoError(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()
	token, _, err := svc.GenerateToken(userID, "candidate")
	require.NoError(t, err)

	p, err := svc.AsTokenValidator().ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, p.GetUserID())
	assert.Equal(t, "candidate", p.GetRole())
}
