package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/corebank/banking-system/internal/core/domain"
	"github.com/corebank/banking-system/internal/core/ports"
)

// ClientService implements the RM-facing client operations.
type ClientService struct {
	repo ports.ClientRepository
	log  zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, log: log}
}

func (s *ClientService) Create(ctx context.Context, input ports.ClientInput, rmID string) (*domain.Client, error) {
	client := &domain.Client{
		CompanyName: input.CompanyName,
		Industry:    input.Industry,
		Address:     input.Address,
		PrimaryContact: domain.PrimaryContact{
			Name:  input.PrimaryContact.Name,
			Email: input.PrimaryContact.Email,
			Phone: input.PrimaryContact.Phone,
		},
		AnnualTurnover:     input.AnnualTurnover,
		DocumentsSubmitted: input.DocumentsSubmitted,
		RMID:               rmID,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		s.log.Error().Err(err).Str("rm_id", rmID).Msg("failed to create client")
		return nil, err
	}

	s.log.Info().Str("client_id", created.ID).Str("rm_id", rmID).Msg("client created")
	return created, nil
}

func (s *ClientService) ListByRM(ctx context.Context, rmID string) ([]*domain.Client, error) {
	return s.repo.FindByRM(ctx, rmID)
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// Update overwrites every editable field. A client owned by another RM is
// reported as not found, the same answer the owner-scoped list gives.
func (s *ClientService) Update(ctx context.Context, id string, input ports.ClientInput, rmID string) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client.RMID != rmID {
		return nil, domain.ErrClientNotFound
	}

	client.CompanyName = input.CompanyName
	client.Industry = input.Industry
	client.Address = input.Address
	client.PrimaryContact = domain.PrimaryContact{
		Name:  input.PrimaryContact.Name,
		Email: input.PrimaryContact.Email,
		Phone: input.PrimaryContact.Phone,
	}
	client.AnnualTurnover = input.AnnualTurnover
	client.DocumentsSubmitted = input.DocumentsSubmitted

	if err := s.repo.Update(ctx, client); err != nil {
		s.log.Error().Err(err).Str("client_id", id).Msg("failed to update client")
		return nil, err
	}

	s.log.Info().Str("client_id", id).Str("rm_id", rmID).Msg("client updated")
	return client, nil
}
