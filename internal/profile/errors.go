package profile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownField   = errors.New("unknown profile field")
	ErrUnknownOption  = errors.New("unknown option")
	ErrTypeMismatch   = errors.New("value has the wrong type for field")
	ErrLimitReached   = errors.New("limit reached")
	ErrEntryNotFound  = errors.New("entry not found")
	ErrSaveInProgress = errors.New("a save for this profile is already in progress")
)

// FieldError is a single failed rule at a field path.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError collects every failed rule of a draft.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("profile validation failed:")
	for _, fe := range e.Errors {
		fmt.Fprintf(&sb, " %s: %s;", fe.Path, fe.Message)
	}
	return strings.TrimSuffix(sb.String(), ";")
}

func (e *ValidationError) add(path, format string, args ...any) {
	e.Errors = append(e.Errors, FieldError{Path: path, Message: fmt.Sprintf(format, args...)})
}

// SaveError wraps any failure of a save. The draft that was being saved is
// untouched, so the caller can retry with it.
type SaveError struct {
	Track Track
	Cause error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save %s profile: %v", e.Track, e.Cause)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}
