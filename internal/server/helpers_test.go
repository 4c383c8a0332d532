package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ianattheGrid/jobz/internal/config"
	"github.com/ianattheGrid/jobz/internal/db"
	"github.com/ianattheGrid/jobz/internal/logging"
	"github.com/ianattheGrid/jobz/internal/metrics"
	"github.com/ianattheGrid/jobz/internal/revocation"
	"github.com/ianattheGrid/jobz/internal/server/ratelimit"
	"github.com/ianattheGrid/jobz/internal/types"
)

const testJWTSecret = "test-secret-key-for-jwt-signing-minimum-32-bytes"

func testConfig() *config.Config {
	return &config.Config{
		Port:            0,
		LogLevel:        "info",
		LogFormat:       "json",
		CORSOrigin:      "https://jobz.example",
		ShutdownTimeout: time.Second,
		JWT:             &config.JWTConfig{Secret: testJWTSecret, TTL: time.Hour, Issuer: "jobz"},
		Password:        &config.PasswordConfig{BcryptCost: 4},
	}
}

type testServer struct {
	*Server
	store   *db.MemoryStore
	revoked *revocation.MemoryList
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithLimits(t, &ratelimit.Config{Enabled: false})
}

func newTestServerWithLimits(t *testing.T, limits *ratelimit.Config) *testServer {
	t.Helper()
	store := db.NewMemoryStore()
	revoked := revocation.NewMemoryList()
	srv := New(testConfig(), Deps{
		Store:     store,
		Revoked:   revoked,
		Logger:    logging.Discard(),
		Metrics:   metrics.New(),
		RateLimit: limits,
	})
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, store: store, revoked: revoked}
}

// do sends a request through the full middleware chain. body may be nil, a
// string, or a value to JSON encode.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	return w
}

// register creates an account with role and returns its token and id.
func (ts *testServer) register(t *testing.T, role string) (string, uuid.UUID) {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/v1/auth/register", "", types.CreateUserRequest{
		Name:     "Test " + role,
		Email:    fmt.Sprintf("%s-%s@example.com", role, uuid.NewString()[:8]),
		Password: "password123",
		Role:     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp types.LoginResponse
	decode(t, w, &resp)
	return resp.Token, resp.User.ID
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
