// Package gateway authenticates the client against the banking API and owns
// the lifecycle of the local session.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/corebank/banking-system/internal/client/session"
	"github.com/corebank/banking-system/internal/core/domain"
)

// fallbackMessage is shown when the server response carries no usable error.
const fallbackMessage = "Login failed"

const requestTimeout = 15 * time.Second

// LoginError reports a failed login attempt with a message fit for display.
type LoginError struct {
	StatusCode int
	Message    string
}

func (e *LoginError) Error() string {
	return e.Message
}

// Gateway performs authentication calls and maintains the session store.
type Gateway struct {
	baseURL string
	store   *session.Store
	http    *http.Client
	log     zerolog.Logger
}

func New(baseURL string, store *session.Store, log zerolog.Logger) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		store:   store,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	UserID   string `json:"userId"`
}

// Login exchanges credentials for a token and persists the resulting session.
// On any failure nothing is persisted and a *LoginError describes what went
// wrong.
func (g *Gateway) Login(ctx context.Context, username, password string) error {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return &LoginError{Message: fallbackMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return &LoginError{Message: fallbackMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Error().Err(err).Msg("login request failed")
		return &LoginError{Message: fallbackMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &LoginError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(resp),
		}
	}

	var payload loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return &LoginError{StatusCode: resp.StatusCode, Message: fallbackMessage}
	}

	role := domain.Role(payload.Role)
	if payload.Token == "" || !role.Valid() {
		g.log.Warn().Str("role", payload.Role).Msg("login response missing token or role")
		return &LoginError{StatusCode: resp.StatusCode, Message: fallbackMessage}
	}

	identity := session.Identity{
		UserID:   payload.UserID,
		Username: payload.Username,
		Email:    payload.Email,
		Role:     role,
		Active:   true,
	}
	if err := g.store.Persist(identity, payload.Token); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	g.log.Info().Str("username", payload.Username).Str("role", payload.Role).Msg("signed in")
	return nil
}

// Logout discards the local session. No server call is made: tokens are
// stateless and simply stop being presented.
func (g *Gateway) Logout() {
	g.store.Clear()
	g.log.Info().Msg("signed out")
}

// HTTPClient returns a client that attaches the current session token as a
// bearer credential to every outgoing request.
func (g *Gateway) HTTPClient() *http.Client {
	return &http.Client{
		Timeout:   requestTimeout,
		Transport: &bearerTransport{store: g.store, base: http.DefaultTransport},
	}
}

type bearerTransport struct {
	store *session.Store
	base  http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.store.Token(); token != "" {
		clone := req.Clone(req.Context())
		clone.Header.Set("Authorization", "Bearer "+token)
		return t.base.RoundTrip(clone)
	}
	return t.base.RoundTrip(req)
}

// extractMessage pulls the "message" field out of an error response body,
// falling back to a generic message when the body is not in the expected
// shape.
func extractMessage(resp *http.Response) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Message == "" {
		return fallbackMessage
	}
	return payload.Message
}
