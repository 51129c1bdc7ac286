package nav

import (
	"strings"
	"testing"

	"github.com/corebank/banking-system/internal/client/session"
	"github.com/corebank/banking-system/internal/core/domain"
)

func storeWithRole(t *testing.T, role domain.Role) *session.Store {
	t.Helper()
	store := session.NewStore(session.NewMemoryStorage())
	err := store.Persist(session.Identity{
		UserID:   "user_1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     role,
		Active:   true,
	}, "token123")
	if err != nil {
		t.Fatalf("persist failed: %v", err)
	}
	return store
}

func signedOutStore() *session.Store {
	return session.NewStore(session.NewMemoryStorage())
}

func TestResolve_SignedOutRedirectsToLogin(t *testing.T) {
	resolver := NewResolver(signedOutStore())

	for _, path := range []string{
		"/admin",
		"/rm",
		"/rm/clients",
		"/rm/clients/new",
		"/rm/clients/edit/client_1",
		"/rm/credit-requests",
		"/rm/credit-requests/new",
		"/analyst",
		"/analyst/credit-requests",
	} {
		d := resolver.Resolve(path)
		if d.Allow {
			t.Fatalf("%s: signed-out user must not be allowed", path)
		}
		if d.RedirectTo != LoginPath {
			t.Fatalf("%s: expected redirect to %s, got %q", path, LoginPath, d.RedirectTo)
		}
	}
}

func TestResolve_LoginIsPublic(t *testing.T) {
	resolver := NewResolver(signedOutStore())

	d := resolver.Resolve("/login")
	if !d.Allow {
		t.Fatalf("login page must be reachable signed out: %+v", d)
	}
}

func TestResolve_RootRedirectsToLogin(t *testing.T) {
	resolver := NewResolver(signedOutStore())

	if d := resolver.Resolve("/"); d.RedirectTo != LoginPath {
		t.Fatalf("expected / to redirect to login, got %+v", d)
	}
}

func TestResolve_CorrectRoleAllowed(t *testing.T) {
	cases := []struct {
		role  domain.Role
		paths []string
	}{
		{domain.RoleAdmin, []string{"/admin"}},
		{domain.RoleRM, []string{"/rm", "/rm/clients", "/rm/clients/edit/client_1", "/rm/credit-requests/new"}},
		{domain.RoleAnalyst, []string{"/analyst", "/analyst/credit-requests"}},
	}
	for _, tc := range cases {
		resolver := NewResolver(storeWithRole(t, tc.role))
		for _, path := range tc.paths {
			if d := resolver.Resolve(path); !d.Allow {
				t.Fatalf("%s should allow role %s, got %+v", path, tc.role, d)
			}
		}
	}
}

func TestResolve_ForeignRoleRedirectsHome(t *testing.T) {
	cases := []struct {
		role domain.Role
		path string
		home string
	}{
		{domain.RoleRM, "/admin", "/rm"},
		{domain.RoleRM, "/analyst", "/rm"},
		{domain.RoleAdmin, "/rm/clients", "/admin"},
		{domain.RoleAdmin, "/analyst/credit-requests", "/admin"},
		{domain.RoleAnalyst, "/admin", "/analyst"},
		{domain.RoleAnalyst, "/rm/credit-requests", "/analyst"},
	}
	for _, tc := range cases {
		resolver := NewResolver(storeWithRole(t, tc.role))
		d := resolver.Resolve(tc.path)
		if d.Allow {
			t.Fatalf("%s must not allow role %s", tc.path, tc.role)
		}
		if d.RedirectTo != tc.home {
			t.Fatalf("%s as %s: expected redirect to %s, got %q", tc.path, tc.role, tc.home, d.RedirectTo)
		}
	}
}

func TestResolve_UnknownPath(t *testing.T) {
	resolver := NewResolver(storeWithRole(t, domain.RoleAdmin))

	if d := resolver.Resolve("/reports/quarterly"); !d.NotFound {
		t.Fatalf("expected not-found decision, got %+v", d)
	}
}

func TestResolve_ParamSegmentsMatch(t *testing.T) {
	resolver := NewResolver(storeWithRole(t, domain.RoleRM))

	if d := resolver.Resolve("/rm/clients/edit/abc123"); !d.Allow {
		t.Fatalf("param route should match, got %+v", d)
	}
	if d := resolver.Resolve("/rm/clients/edit"); !d.NotFound {
		t.Fatalf("missing param segment should not match, got %+v", d)
	}
}

func TestRequireAuth_NilSessionRedirects(t *testing.T) {
	guard := RequireAuth()

	d := guard(nil)
	if d == nil || d.RedirectTo != LoginPath {
		t.Fatalf("expected login redirect, got %+v", d)
	}

	sess := &session.Session{Identity: session.Identity{Role: domain.RoleRM}, Token: "t"}
	if d := guard(sess); d != nil {
		t.Fatalf("expected pass-through for live session, got %+v", d)
	}
}

func TestRequireRole_NoSession_RendersChild(t *testing.T) {
	// The role guard alone does not handle the signed-out case; that is
	// RequireAuth's job. On its own it must let the child render.
	guard := RequireRole(domain.RoleAdmin)

	if d := guard(nil); d != nil {
		t.Fatalf("expected no decision without a session, got %+v", d)
	}
}

func TestRequireRole_MismatchRedirectsToOwnHome(t *testing.T) {
	guard := RequireRole(domain.RoleAdmin)
	sess := &session.Session{Identity: session.Identity{Role: domain.RoleRM}, Token: "t"}

	d := guard(sess)
	if d == nil || d.RedirectTo != domain.HomePath[domain.RoleRM] {
		t.Fatalf("expected redirect to RM home, got %+v", d)
	}
}

func TestShell_RenderAndHome(t *testing.T) {
	store := storeWithRole(t, domain.RoleAnalyst)
	shell := NewShell("Corporate Banking", store, nil)

	var sb strings.Builder
	shell.Render(&sb)
	out := sb.String()
	if !strings.Contains(out, "Corporate Banking") {
		t.Fatalf("expected title in shell output: %q", out)
	}
	if !strings.Contains(out, "alice") || !strings.Contains(out, "ANALYST") {
		t.Fatalf("expected user strip in shell output: %q", out)
	}

	if home := shell.HomePath(); home != "/analyst" {
		t.Fatalf("expected analyst home, got %s", home)
	}
}

func TestShell_SignedOut(t *testing.T) {
	shell := NewShell("Corporate Banking", signedOutStore(), nil)

	var sb strings.Builder
	shell.Render(&sb)
	if strings.Contains(sb.String(), "Signed in as") {
		t.Fatalf("signed-out shell must not render the user strip: %q", sb.String())
	}
	if home := shell.HomePath(); home != LoginPath {
		t.Fatalf("expected login path, got %s", home)
	}
}
