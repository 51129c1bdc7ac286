package ports

import (
	"context"

	"github.com/corebank/banking-system/internal/core/domain"
)

// ContactInput holds primary contact details.
type ContactInput struct {
	Name  string
	Email string
	Phone string
}

// ClientInput carries all data needed to create or update a client.
type ClientInput struct {
	CompanyName        string
	Industry           string
	Address            string
	PrimaryContact     ContactInput
	AnnualTurnover     float64
	DocumentsSubmitted bool
}

// ClientService defines the RM-facing client operations. Every call is
// scoped to the calling RM's identity taken from the credential token.
type ClientService interface {
	Create(ctx context.Context, input ClientInput, rmID string) (*domain.Client, error)
	ListByRM(ctx context.Context, rmID string) ([]*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	// Update rejects clients owned by another RM with ErrClientNotFound,
	// matching the list scoping: foreign clients are invisible, not forbidden.
	Update(ctx context.Context, id string, input ClientInput, rmID string) (*domain.Client, error)
}
