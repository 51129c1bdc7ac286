// Package api is a typed client for the banking REST API. Request payloads
// are validated locally before any network call so obviously invalid input
// never leaves the machine.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/corebank/banking-system/internal/core/domain"
)

// APIError carries a server-side failure with the display message extracted
// from the error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Client calls the banking API on behalf of the signed-in user. The supplied
// http.Client is expected to attach credentials, see gateway.HTTPClient.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:  baseURL,
		http:     httpClient,
		validate: validator.New(),
	}
}

// ContactInput is the primary contact section of a client payload.
type ContactInput struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,len=10,numeric"`
}

// ClientInput is the payload for creating or updating a corporate client.
type ClientInput struct {
	CompanyName        string       `json:"companyName"        validate:"required"`
	Industry           string       `json:"industry"           validate:"required"`
	Address            string       `json:"address"            validate:"required"`
	PrimaryContact     ContactInput `json:"primaryContact"     validate:"required"`
	AnnualTurnover     float64      `json:"annualTurnover"     validate:"required,gt=0"`
	DocumentsSubmitted bool         `json:"documentsSubmitted"`
}

// CreditRequestInput is the payload for submitting a credit request.
type CreditRequestInput struct {
	ClientID      string  `json:"clientId"      validate:"required"`
	RequestAmount float64 `json:"requestAmount" validate:"required,gt=0"`
	TenureMonths  int     `json:"tenureMonths"  validate:"required,gt=0"`
	Purpose       string  `json:"purpose"       validate:"required"`
}

// ReviewInput is the payload for an analyst decision. Remarks is optional;
// when nil the server keeps the existing remarks.
type ReviewInput struct {
	Status  string  `json:"status" validate:"required,oneof=Pending Approved Rejected"`
	Remarks *string `json:"remarks,omitempty"`
}

// RegisterInput is the payload for an admin creating a user account.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN RM ANALYST"`
}

// UserStatusInput toggles a user account between active and deactivated.
type UserStatusInput struct {
	Active bool `json:"active"`
}

// --- Admin operations ---

func (c *Client) RegisterUser(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) SetUserStatus(ctx context.Context, userID string, active bool) (*domain.User, error) {
	var user domain.User
	path := "/admin/users/" + userID + "/status"
	if err := c.do(ctx, http.MethodPut, path, UserStatusInput{Active: active}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// --- RM operations ---

func (c *Client) CreateClient(ctx context.Context, input ClientInput) (*domain.Client, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}
	var created domain.Client
	if err := c.do(ctx, http.MethodPost, "/rm/clients", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateClient(ctx context.Context, clientID string, input ClientInput) (*domain.Client, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}
	var updated domain.Client
	if err := c.do(ctx, http.MethodPut, "/rm/clients/"+clientID, input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	if err := c.do(ctx, http.MethodGet, "/rm/clients", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (c *Client) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	var client domain.Client
	if err := c.do(ctx, http.MethodGet, "/rm/clients/"+clientID, nil, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (c *Client) CreateCreditRequest(ctx context.Context, input CreditRequestInput) (*domain.CreditRequest, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid credit request: %w", err)
	}
	var created domain.CreditRequest
	if err := c.do(ctx, http.MethodPost, "/rm/credit-requests", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListCreditRequests(ctx context.Context) ([]domain.CreditRequest, error) {
	var requests []domain.CreditRequest
	if err := c.do(ctx, http.MethodGet, "/rm/credit-requests", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) GetCreditRequest(ctx context.Context, requestID string) (*domain.CreditRequest, error) {
	var request domain.CreditRequest
	if err := c.do(ctx, http.MethodGet, "/rm/credit-requests/"+requestID, nil, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// --- Analyst operations ---

func (c *Client) AnalystCreditRequests(ctx context.Context) ([]domain.CreditRequest, error) {
	var requests []domain.CreditRequest
	if err := c.do(ctx, http.MethodGet, "/analyst/credit-requests", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) AnalystCreditRequest(ctx context.Context, requestID string) (*domain.CreditRequest, error) {
	var request domain.CreditRequest
	if err := c.do(ctx, http.MethodGet, "/analyst/credit-requests/"+requestID, nil, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *Client) ReviewCreditRequest(ctx context.Context, requestID string, input ReviewInput) (*domain.CreditRequest, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid review: %w", err)
	}
	var updated domain.CreditRequest
	if err := c.do(ctx, http.MethodPut, "/analyst/credit-requests/"+requestID, input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// do performs a JSON round trip. Non-2xx responses are surfaced as *APIError
// with the server's message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func extractMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil || payload.Message == "" {
		return "request failed"
	}
	return payload.Message
}
