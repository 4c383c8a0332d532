package db

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
)

// User represents an account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserCreateInput holds the fields for creating a user
type UserCreateInput struct {
	Name         string
	Email        string
	Role         string
	PasswordHash string
}
