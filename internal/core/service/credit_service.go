package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/corebank/banking-system/internal/core/domain"
	"github.com/corebank/banking-system/internal/core/ports"
)

// CreditRequestService implements RM submissions and analyst reviews.
type CreditRequestService struct {
	repo       ports.CreditRequestRepository
	clientRepo ports.ClientRepository
	log        zerolog.Logger
}

func NewCreditRequestService(repo ports.CreditRequestRepository, clientRepo ports.ClientRepository, log zerolog.Logger) *CreditRequestService {
	return &CreditRequestService{repo: repo, clientRepo: clientRepo, log: log}
}

// Create opens a new request in Pending state. The target client must exist
// and belong to the submitting RM; anything else is reported as not found.
func (s *CreditRequestService) Create(ctx context.Context, input ports.CreditRequestInput, rmID string) (*domain.CreditRequest, error) {
	client, err := s.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client.RMID != rmID {
		return nil, domain.ErrClientNotFound
	}

	req := &domain.CreditRequest{
		ClientID:      input.ClientID,
		SubmittedBy:   rmID,
		RequestAmount: input.RequestAmount,
		TenureMonths:  input.TenureMonths,
		Purpose:       input.Purpose,
		Status:        domain.StatusPending,
		Remarks:       "",
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to create credit request")
		return nil, err
	}

	s.log.Info().Str("request_id", created.ID).Str("client_id", created.ClientID).Str("rm_id", rmID).Msg("credit request created")
	return created, nil
}

func (s *CreditRequestService) ListBySubmitter(ctx context.Context, rmID string) ([]*domain.CreditRequest, error) {
	return s.repo.FindBySubmitter(ctx, rmID)
}

func (s *CreditRequestService) ListAll(ctx context.Context) ([]*domain.CreditRequest, error) {
	return s.repo.FindAll(ctx)
}

func (s *CreditRequestService) Get(ctx context.Context, id string) (*domain.CreditRequest, error) {
	return s.repo.FindByID(ctx, id)
}

// Review applies an analyst decision. A request that already reached a
// terminal state may be reviewed again; nothing here freezes it. Omitted
// remarks keep whatever was recorded before.
func (s *CreditRequestService) Review(ctx context.Context, id string, input ports.ReviewInput) (*domain.CreditRequest, error) {
	status := domain.RequestStatus(input.Status)
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	remarks := existing.Remarks
	if input.Remarks != nil {
		remarks = *input.Remarks
	}

	updated, err := s.repo.UpdateReview(ctx, id, status, remarks)
	if err != nil {
		s.log.Error().Err(err).Str("request_id", id).Msg("failed to update credit request review")
		return nil, err
	}

	s.log.Info().Str("request_id", id).Str("status", string(status)).Msg("credit request reviewed")
	return updated, nil
}
