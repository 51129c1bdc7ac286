package domain

import (
	"errors"
	"time"
)

// Role determines which part of the system an authenticated user may reach.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleRM      Role = "RM"
	RoleAnalyst Role = "ANALYST"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRM, RoleAnalyst:
		return true
	}
	return false
}

// HomePath maps each role to its landing route on the client. Route guards
// redirect here on a role mismatch; keep this table in sync with the route
// surface instead of branching on roles elsewhere.
var HomePath = map[Role]string{
	RoleAdmin:   "/admin",
	RoleRM:      "/rm",
	RoleAnalyst: "/analyst",
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserDeactivated = errors.New("user account is deactivated")
var ErrTooManyAttempts = errors.New("too many failed login attempts")
var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already exists")
var ErrEmailTaken = errors.New("email already exists")
var ErrInvalidRole = errors.New("role must be ADMIN, RM, or ANALYST")

// User models an account managed by an administrator. Accounts are toggled
// active/inactive, never hard-deleted.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
