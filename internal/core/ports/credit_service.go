package ports

import (
	"context"

	"github.com/corebank/banking-system/internal/core/domain"
)

// CreditRequestInput carries the data an RM submits for a new request.
type CreditRequestInput struct {
	ClientID      string
	RequestAmount float64
	TenureMonths  int
	Purpose       string
}

// ReviewInput carries an analyst's decision. A nil Remarks leaves the
// existing remarks untouched.
type ReviewInput struct {
	Status  string
	Remarks *string
}

// CreditRequestService defines the RM submission and analyst review operations.
type CreditRequestService interface {
	Create(ctx context.Context, input CreditRequestInput, rmID string) (*domain.CreditRequest, error)
	ListBySubmitter(ctx context.Context, rmID string) ([]*domain.CreditRequest, error)
	ListAll(ctx context.Context) ([]*domain.CreditRequest, error)
	Get(ctx context.Context, id string) (*domain.CreditRequest, error)
	Review(ctx context.Context, id string, input ReviewInput) (*domain.CreditRequest, error)
}
