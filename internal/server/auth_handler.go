package server

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ianattheGrid/jobz/internal/server/middleware"
	"github.com/ianattheGrid/jobz/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		validator:   validator.New(),
		logger:      logger,
	}
}

// Register handles account registration requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.issue(w, r, user, http.StatusCreated)
	h.logger.InfoContext(r.Context(), "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role))
}

// Login handles user login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.issue(w, r, user, http.StatusOK)
}

func (h *AuthHandler) issue(w http.ResponseWriter, r *http.Request, user *types.User, status int) {
	token, expiresAt, err := h.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, status, types.LoginResponse{User: user, Token: token, ExpiresAt: expiresAt})
}

// Logout revokes the caller's token. It must run behind AuthMiddleware.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized"})
		return
	}
	if err := h.jwtService.Revoke(r.Context(), claims); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session returns the caller's account and token expiry.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized"})
		return
	}
	user, err := h.userService.Get(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, types.SessionResponse{User: user, ExpiresAt: claims.ExpiresAt.Time})
}

// UpdatePassword changes the caller's password.
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req types.UpdatePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

func claimsFrom(r *http.Request) (*Claims, bool) {
	p, ok := middleware.GetPrincipal(r)
	if !ok {
		return nil, false
	}
	c, ok := p.(*Claims)
	return c, ok
}
