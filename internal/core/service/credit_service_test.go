package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/corebank/banking-system/internal/core/domain"
	"github.com/corebank/banking-system/internal/core/ports"
)

type stubCreditRepo struct {
	requests map[string]*domain.CreditRequest
	nextID   int
}

func newStubCreditRepo() *stubCreditRepo {
	return &stubCreditRepo{requests: make(map[string]*domain.CreditRequest)}
}

func cloneRequest(r *domain.CreditRequest) *domain.CreditRequest {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (r *stubCreditRepo) Create(_ context.Context, req *domain.CreditRequest) (*domain.CreditRequest, error) {
	copy := cloneRequest(req)
	r.nextID++
	copy.ID = "req_" + strconv.Itoa(r.nextID)
	r.requests[copy.ID] = cloneRequest(copy)
	return cloneRequest(copy), nil
}

func (r *stubCreditRepo) FindByID(_ context.Context, id string) (*domain.CreditRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrCreditRequestNotFound
	}
	return cloneRequest(req), nil
}

func (r *stubCreditRepo) FindBySubmitter(_ context.Context, rmID string) ([]*domain.CreditRequest, error) {
	var out []*domain.CreditRequest
	for _, req := range r.requests {
		if req.SubmittedBy == rmID {
			out = append(out, cloneRequest(req))
		}
	}
	return out, nil
}

func (r *stubCreditRepo) FindAll(_ context.Context) ([]*domain.CreditRequest, error) {
	out := make([]*domain.CreditRequest, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, cloneRequest(req))
	}
	return out, nil
}

func (r *stubCreditRepo) UpdateReview(_ context.Context, id string, status domain.RequestStatus, remarks string) (*domain.CreditRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrCreditRequestNotFound
	}
	req.Status = status
	req.Remarks = remarks
	return cloneRequest(req), nil
}

func seedClient(t *testing.T, repo *stubClientRepo, rmID string) *domain.Client {
	t.Helper()
	client := &domain.Client{
		CompanyName: "Acme Corp",
		RMID:        rmID,
	}
	created, err := repo.Create(context.Background(), client)
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return created
}

func sampleCreditInput(clientID string) ports.CreditRequestInput {
	return ports.CreditRequestInput{
		ClientID:      clientID,
		RequestAmount: 500000,
		TenureMonths:  36,
		Purpose:       "Working capital",
	}
}

func TestCreditService_Create_StartsPending(t *testing.T) {
	clientRepo := newStubClientRepo()
	repo := newStubCreditRepo()
	svc := NewCreditRequestService(repo, clientRepo, zerolog.Nop())
	client := seedClient(t, clientRepo, "rm_1")

	created, err := svc.Create(context.Background(), sampleCreditInput(client.ID), "rm_1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("expected Pending, got %s", created.Status)
	}
	if created.Remarks != "" {
		t.Fatalf("expected empty remarks, got %q", created.Remarks)
	}
	if created.SubmittedBy != "rm_1" {
		t.Fatalf("expected submitter rm_1, got %s", created.SubmittedBy)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestCreditService_Create_ForeignClientReportsNotFound(t *testing.T) {
	clientRepo := newStubClientRepo()
	repo := newStubCreditRepo()
	svc := NewCreditRequestService(repo, clientRepo, zerolog.Nop())
	client := seedClient(t, clientRepo, "rm_1")

	if _, err := svc.Create(context.Background(), sampleCreditInput(client.ID), "rm_2"); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound for foreign client, got %v", err)
	}
}

func TestCreditService_Create_MissingClient(t *testing.T) {
	svc := NewCreditRequestService(newStubCreditRepo(), newStubClientRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), sampleCreditInput("nope"), "rm_1"); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestCreditService_Review_SetsStatusAndRemarks(t *testing.T) {
	clientRepo := newStubClientRepo()
	repo := newStubCreditRepo()
	svc := NewCreditRequestService(repo, clientRepo, zerolog.Nop())
	client := seedClient(t, clientRepo, "rm_1")

	created, err := svc.Create(context.Background(), sampleCreditInput(client.ID), "rm_1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	remarks := "Approved after review of financials"
	updated, err := svc.Review(context.Background(), created.ID, ports.ReviewInput{
		Status:  "Approved",
		Remarks: &remarks,
	})
	if err != nil {
		t.Fatalf("review failed: %v", err)
	}
	if updated.Status != domain.StatusApproved {
		t.Fatalf("expected Approved, got %s", updated.Status)
	}
	if updated.Remarks != remarks {
		t.Fatalf("unexpected remarks: %q", updated.Remarks)
	}
}

func TestCreditService_Review_NilRemarksKeepsExisting(t *testing.T) {
	clientRepo := newStubClientRepo()
	repo := newStubCreditRepo()
	svc := NewCreditRequestService(repo, clientRepo, zerolog.Nop())
	client := seedClient(t, clientRepo, "rm_1")

	created, err := svc.Create(context.Background(), sampleCreditInput(client.ID), "rm_1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first := "needs more documents"
	if _, err := svc.Review(context.Background(), created.ID, ports.ReviewInput{Status: "Rejected", Remarks: &first}); err != nil {
		t.Fatalf("first review failed: %v", err)
	}

	updated, err := svc.Review(context.Background(), created.ID, ports.ReviewInput{Status: "Approved"})
	if err != nil {
		t.Fatalf("second review failed: %v", err)
	}
	if updated.Status != domain.StatusApproved {
		t.Fatalf("expected Approved, got %s", updated.Status)
	}
	if updated.Remarks != first {
		t.Fatalf("expected remarks preserved, got %q", updated.Remarks)
	}
}

func TestCreditService_Review_TerminalRequestCanBeReviewedAgain(t *testing.T) {
	clientRepo := newStubClientRepo()
	repo := newStubCreditRepo()
	svc := NewCreditRequestService(repo, clientRepo, zerolog.Nop())
	client := seedClient(t, clientRepo, "rm_1")

	created, err := svc.Create(context.Background(), sampleCreditInput(client.ID), "rm_1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Review(context.Background(), created.ID, ports.ReviewInput{Status: "Approved"}); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	updated, err := svc.Review(context.Background(), created.ID, ports.ReviewInput{Status: "Rejected"})
	if err != nil {
		t.Fatalf("re-review failed: %v", err)
	}
	if updated.Status != domain.StatusRejected {
		t.Fatalf("expected Rejected after re-review, got %s", updated.Status)
	}
}

func TestCreditService_Review_InvalidStatus(t *testing.T) {
	svc := NewCreditRequestService(newStubCreditRepo(), newStubClientRepo(), zerolog.Nop())

	if _, err := svc.Review(context.Background(), "req_1", ports.ReviewInput{Status: "Escalated"}); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCreditService_Review_MissingRequest(t *testing.T) {
	svc := NewCreditRequestService(newStubCreditRepo(), newStubClientRepo(), zerolog.Nop())

	if _, err := svc.Review(context.Background(), "nope", ports.ReviewInput{Status: "Approved"}); err != domain.ErrCreditRequestNotFound {
		t.Fatalf("expected ErrCreditRequestNotFound, got %v", err)
	}
}

func TestCreditService_ListBySubmitter(t *testing.T) {
	clientRepo := newStubClientRepo()
	repo := newStubCreditRepo()
	svc := NewCreditRequestService(repo, clientRepo, zerolog.Nop())
	clientA := seedClient(t, clientRepo, "rm_1")
	clientB := seedClient(t, clientRepo, "rm_2")

	if _, err := svc.Create(context.Background(), sampleCreditInput(clientA.ID), "rm_1"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), sampleCreditInput(clientB.ID), "rm_2"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	mine, err := svc.ListBySubmitter(context.Background(), "rm_1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].SubmittedBy != "rm_1" {
		t.Fatalf("unexpected scoped list: %+v", mine)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 requests in full list, got %d", len(all))
	}
}
