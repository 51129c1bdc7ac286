package ports

import (
	"context"

	"github.com/corebank/banking-system/internal/core/domain"
)

// CreditRequestRepository defines persistence for credit requests.
type CreditRequestRepository interface {
	Create(ctx context.Context, req *domain.CreditRequest) (*domain.CreditRequest, error)
	FindByID(ctx context.Context, id string) (*domain.CreditRequest, error)
	FindBySubmitter(ctx context.Context, rmID string) ([]*domain.CreditRequest, error)
	FindAll(ctx context.Context) ([]*domain.CreditRequest, error)
	// UpdateReview sets status and remarks and returns the updated request.
	UpdateReview(ctx context.Context, id string, status domain.RequestStatus, remarks string) (*domain.CreditRequest, error)
}
