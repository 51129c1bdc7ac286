package ports

import (
	"context"

	"github.com/corebank/banking-system/internal/core/domain"
)

// UserService exposes the admin user-management operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	UpdateStatus(ctx context.Context, id string, active bool) (*domain.User, error)
}
