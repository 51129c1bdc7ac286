package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/corebank/banking-system/internal/core/domain"
)

func TestUserService_UpdateStatus(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "alice", "pass1234", domain.RoleRM, true)

	updated, err := svc.UpdateStatus(context.Background(), seeded.ID, false)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Active {
		t.Fatalf("expected deactivated user")
	}

	reactivated, err := svc.UpdateStatus(context.Background(), seeded.ID, true)
	if err != nil {
		t.Fatalf("reactivate failed: %v", err)
	}
	if !reactivated.Active {
		t.Fatalf("expected active user")
	}
}

func TestUserService_UpdateStatus_MissingUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), "nope", false); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_List(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(t, repo, "alice", "pass1234", domain.RoleRM, true)
	seedUser(t, repo, "bob", "pass1234", domain.RoleAnalyst, false)

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
