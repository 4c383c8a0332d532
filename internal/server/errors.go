// Package server provides the HTTP REST API for jobz.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ianattheGrid/jobz/internal/cascade"
	"github.com/ianattheGrid/jobz/internal/db"
	"github.com/ianattheGrid/jobz/internal/jobs"
	"github.com/ianattheGrid/jobz/internal/profile"
	"github.com/ianattheGrid/jobz/internal/schemas"
	"github.com/ianattheGrid/jobz/internal/types"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrForbidden indicates the caller's role may not use the endpoint
type ErrForbidden struct {
	Role string
}

func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("only %s accounts may do this", e.Role)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		emailExists *ErrEmailAlreadyExists
		badCreds    *ErrInvalidCredentials
		mismatch    *ErrPasswordMismatch
		notFound    *ErrUserNotFound
		forbidden   *ErrForbidden
		badRequest  *ErrValidation
		profileErr  *profile.ValidationError
		schemaErr   *schemas.ValidationError
		fieldErrs   validator.ValidationErrors
	)

	switch {
	case errors.As(err, &emailExists), errors.Is(err, db.ErrDuplicateEmail),
		errors.Is(err, profile.ErrSaveInProgress):
		return http.StatusConflict
	case errors.As(err, &badCreds), errors.As(err, &mismatch), errors.Is(err, ErrTokenRevoked):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound), errors.Is(err, jobs.ErrPostingNotFound),
		errors.Is(err, profile.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, profile.ErrLimitReached):
		return http.StatusUnprocessableEntity
	case errors.As(err, &badRequest), errors.As(err, &profileErr), errors.As(err, &schemaErr),
		errors.As(err, &fieldErrs),
		errors.Is(err, profile.ErrUnknownField), errors.Is(err, profile.ErrUnknownOption),
		errors.Is(err, profile.ErrTypeMismatch), errors.Is(err, cascade.ErrInconsistent),
		errors.Is(err, jobs.ErrIncompleteRole):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorBody builds the response body for err. Server errors never leak their
// cause.
func errorBody(err error, status int) types.ErrorResponse {
	if status >= http.StatusInternalServerError {
		return types.ErrorResponse{Error: "internal server error"}
	}

	var (
		profileErr *profile.ValidationError
		schemaErr  *schemas.ValidationError
		fieldErrs  validator.ValidationErrors
	)
	switch {
	case errors.As(err, &profileErr):
		resp := types.ErrorResponse{Error: "profile validation failed"}
		for _, fe := range profileErr.Errors {
			resp.Details = append(resp.Details, types.FieldError{Field: fe.Path, Message: fe.Message})
		}
		return resp
	case errors.As(err, &schemaErr):
		resp := types.ErrorResponse{Error: "document does not match the profile schema"}
		for _, fe := range schemaErr.Errors {
			resp.Details = append(resp.Details, types.FieldError{Field: fe.Field, Message: fe.Message})
		}
		return resp
	case errors.As(err, &fieldErrs):
		resp := types.ErrorResponse{Error: "validation error"}
		for _, fe := range fieldErrs {
			resp.Details = append(resp.Details, types.FieldError{Field: fe.Field(), Message: fe.Tag()})
		}
		return resp
	}
	return types.ErrorResponse{Error: err.Error()}
}
