package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/corebank/banking-system/internal/core/domain"
	"github.com/corebank/banking-system/internal/core/ports"
)

type stubClientRepo struct {
	clients map[string]*domain.Client
	nextID  int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func cloneClient(c *domain.Client) *domain.Client {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	copy := cloneClient(client)
	r.nextID++
	copy.ID = "client_" + strconv.Itoa(r.nextID)
	r.clients[copy.ID] = cloneClient(copy)
	return cloneClient(copy), nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return cloneClient(c), nil
}

func (r *stubClientRepo) FindByRM(_ context.Context, rmID string) ([]*domain.Client, error) {
	var out []*domain.Client
	for _, c := range r.clients {
		if c.RMID == rmID {
			out = append(out, cloneClient(c))
		}
	}
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, client *domain.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return domain.ErrClientNotFound
	}
	r.clients[client.ID] = cloneClient(client)
	return nil
}

func sampleClientInput() ports.ClientInput {
	return ports.ClientInput{
		CompanyName: "Acme Corp",
		Industry:    "Manufacturing",
		Address:     "1 Factory Way",
		PrimaryContact: ports.ContactInput{
			Name:  "Jane Doe",
			Email: "jane@acme.example.com",
			Phone: "5551234567",
		},
		AnnualTurnover:     1200000,
		DocumentsSubmitted: true,
	}
}

func TestClientService_Create_AssignsOwner(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), sampleClientInput(), "rm_1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.RMID != "rm_1" {
		t.Fatalf("expected owner rm_1, got %s", created.RMID)
	}
	if created.CompanyName != "Acme Corp" {
		t.Fatalf("unexpected company name: %s", created.CompanyName)
	}
}

func TestClientService_ListByRM_ScopedToOwner(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), sampleClientInput(), "rm_1"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), sampleClientInput(), "rm_2"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	clients, err := svc.ListByRM(context.Background(), "rm_1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(clients) != 1 {
		t.Fatalf("expected 1 client for rm_1, got %d", len(clients))
	}
	if clients[0].RMID != "rm_1" {
		t.Fatalf("foreign client leaked into list: %+v", clients[0])
	}
}

func TestClientService_Update_OverwritesFields(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), sampleClientInput(), "rm_1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	input := sampleClientInput()
	input.CompanyName = "Acme Holdings"
	input.AnnualTurnover = 2500000
	input.DocumentsSubmitted = false

	updated, err := svc.Update(context.Background(), created.ID, input, "rm_1")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.CompanyName != "Acme Holdings" || updated.AnnualTurnover != 2500000 {
		t.Fatalf("fields not overwritten: %+v", updated)
	}
	if updated.DocumentsSubmitted {
		t.Fatalf("expected documentsSubmitted false")
	}
	if updated.RMID != "rm_1" {
		t.Fatalf("owner changed on update: %s", updated.RMID)
	}
}

func TestClientService_Update_ForeignClientReportsNotFound(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), sampleClientInput(), "rm_1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(context.Background(), created.ID, sampleClientInput(), "rm_2"); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound for foreign owner, got %v", err)
	}
}

func TestClientService_Update_MissingClient(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "nope", sampleClientInput(), "rm_1"); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
