package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/corebank/banking-system/internal/core/domain"
	"github.com/corebank/banking-system/internal/core/ports"
)

// UserService implements the admin user-management operations.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) UpdateStatus(ctx context.Context, id string, active bool) (*domain.User, error) {
	user, err := s.repo.UpdateActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Bool("active", active).Msg("user status updated")
	return user, nil
}
