package ports

import (
	"context"

	"github.com/corebank/banking-system/internal/core/domain"
)

// ClientRepository defines persistence for corporate clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindByRM(ctx context.Context, rmID string) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
}
