package ports

import (
	"context"

	"github.com/corebank/banking-system/internal/core/domain"
)

// LoginResult carries the issued credential token plus the identity fields
// the client persists alongside it.
type LoginResult struct {
	Token string
	User  *domain.User
}

// RegisterInput is the admin-supplied data for a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}
