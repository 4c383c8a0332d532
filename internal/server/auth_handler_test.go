package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianattheGrid/jobz/internal/types"
)

func TestAuth_RegisterLoginSession(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/v1/auth/register", "", types.CreateUserRequest{
		Name: "Ada", Email: "Ada@Example.com", Password: "password123", Role: "candidate",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var reg types.LoginResponse
	decode(t, w, &reg)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "ada@example.com", reg.User.Email)
	assert.Equal(t, "candidate", reg.User.Role)
	assert.NotContains(t, w.Body.String(), "password")

	w = ts.do(t, http.MethodPost, "/v1/auth/login", "", types.LoginRequest{Email: "ada@example.com", Password: "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	var login types.LoginResponse
	decode(t, w, &login)
	assert.Equal(t, reg.User.ID, login.User.ID)

	w = ts.do(t, http.MethodGet, "/v1/session", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var session types.SessionResponse
	decode(t, w, &session)
	assert.Equal(t, reg.User.ID, session.User.ID)
	assert.WithinDuration(t, login.ExpiresAt, session.ExpiresAt, 0)
}

func TestAuth_RegisterErrors(t *testing.T) {
	ts := newTestServer(t)
	ok := types.CreateUserRequest{Name: "Bo", Email: "bo@example.com", Password: "password123", Role: "employer"}
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/v1/auth/register", "", ok).Code)

	tests := []struct {
		name     string
		body     any
		wantCode int
		wantMsg  string
	}{
		{"invalid json", "invalid json", http.StatusBadRequest, "Invalid request body"},
		{"duplicate email", ok, http.StatusConflict, "email already registered"},
		{"duplicate email other case", types.CreateUserRequest{Name: "Bo", Email: "BO@example.com", Password: "password123", Role: "employer"}, http.StatusConflict, "email already registered"},
		{"bad role", types.CreateUserRequest{Name: "Cy", Email: "cy@example.com", Password: "password123", Role: "admin"}, http.StatusBadRequest, "oneof"},
		{"short password", types.CreateUserRequest{Name: "Cy", Email: "cy@example.com", Password: "short", Role: "candidate"}, http.StatusBadRequest, "min"},
		{"missing email", types.CreateUserRequest{Name: "Cy", Password: "password123", Role: "candidate"}, http.StatusBadRequest, "Email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, "/v1/auth/register", "", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestAuth_LoginFailuresAreGeneric(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodPost, "/v1/auth/register", "", types.CreateUserRequest{
		Name: "Di", Email: "di@example.com", Password: "password123", Role: "candidate",
	})

	wrongPassword := ts.do(t, http.MethodPost, "/v1/auth/login", "", types.LoginRequest{Email: "di@example.com", Password: "password124"})
	unknownUser := ts.do(t, http.MethodPost, "/v1/auth/login", "", types.LoginRequest{Email: "nobody@example.com", Password: "password123"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestAuth_Logout(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "candidate")

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/v1/session", token, nil).Code)
	require.Equal(t, http.StatusNoContent, ts.do(t, http.MethodPost, "/v1/auth/logout", token, nil).Code)

	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/v1/session", token, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodPost, "/v1/auth/logout", token, nil).Code)

	// a fresh login still works
	other, _ := ts.register(t, "candidate")
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/v1/session", other, nil).Code)
}

func TestAuth_RequiresToken(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{"/v1/session", "/v1/profiles", "/v1/profiles/core", "/v1/jobs/matches?track=core"} {
		w := ts.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
	w := ts.do(t, http.MethodGet, "/v1/session", "garbage.token.value", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_UpdatePassword(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/v1/auth/register", "", types.CreateUserRequest{
		Name: "Ed", Email: "ed@example.com", Password: "password123", Role: "employer",
	})
	var reg types.LoginResponse
	decode(t, w, &reg)

	w = ts.do(t, http.MethodPut, "/v1/auth/password", reg.Token, types.UpdatePasswordRequest{CurrentPassword: "wrong-one", NewPassword: "new-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPut, "/v1/auth/password", reg.Token, types.UpdatePasswordRequest{CurrentPassword: "password123", NewPassword: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPut, "/v1/auth/password", reg.Token, types.UpdatePasswordRequest{CurrentPassword: "password123", NewPassword: "new-password"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "Password updated"))

	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodPost, "/v1/auth/login", "", types.LoginRequest{Email: "ed@example.com", Password: "password123"}).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/v1/auth/login", "", types.LoginRequest{Email: "ed@example.com", Password: "new-password"}).Code)
}
