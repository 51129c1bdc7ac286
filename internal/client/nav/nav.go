// Package nav resolves client-side paths against the current session,
// enforcing authentication and role requirements before a view is shown.
package nav

import (
	"strings"

	"github.com/corebank/banking-system/internal/client/session"
	"github.com/corebank/banking-system/internal/core/domain"
)

// LoginPath is where unauthenticated navigation ends up.
const LoginPath = "/login"

// Decision is the outcome of resolving a path.
type Decision struct {
	// Allow means the requested view may render.
	Allow bool
	// RedirectTo, when non-empty, is the path navigation must move to
	// instead.
	RedirectTo string
	// NotFound means no route matches the path.
	NotFound bool
}

// Guard inspects the session and either lets navigation proceed (nil) or
// overrides it with a Decision.
type Guard func(sess *session.Session) *Decision

// RequireAuth sends signed-out users to the login page.
func RequireAuth() Guard {
	return func(sess *session.Session) *Decision {
		if sess == nil {
			return &Decision{RedirectTo: LoginPath}
		}
		return nil
	}
}

// RequireRole sends users holding a different role to their own home page.
// Without a session it does nothing; pairing it with RequireAuth covers the
// signed-out case.
func RequireRole(role domain.Role) Guard {
	return func(sess *session.Session) *Decision {
		if sess == nil {
			return nil
		}
		if sess.Identity.Role != role {
			return &Decision{RedirectTo: domain.HomePath[sess.Identity.Role]}
		}
		return nil
	}
}

// Route binds a path pattern to its guards. Pattern segments starting with
// ":" match any value.
type Route struct {
	Pattern string
	Guards  []Guard
}

// Resolver evaluates navigation requests against the route table.
type Resolver struct {
	store  *session.Store
	routes []Route
}

// NewResolver builds a resolver with the application's route table.
func NewResolver(store *session.Store) *Resolver {
	protected := func(role domain.Role, pattern string) Route {
		return Route{Pattern: pattern, Guards: []Guard{RequireAuth(), RequireRole(role)}}
	}

	return &Resolver{
		store: store,
		routes: []Route{
			{Pattern: LoginPath},
			protected(domain.RoleAdmin, "/admin"),
			protected(domain.RoleRM, "/rm"),
			protected(domain.RoleRM, "/rm/clients"),
			protected(domain.RoleRM, "/rm/clients/new"),
			protected(domain.RoleRM, "/rm/clients/edit/:id"),
			protected(domain.RoleRM, "/rm/credit-requests"),
			protected(domain.RoleRM, "/rm/credit-requests/new"),
			protected(domain.RoleAnalyst, "/analyst"),
			protected(domain.RoleAnalyst, "/analyst/credit-requests"),
		},
	}
}

// Resolve decides what happens when the user navigates to path.
func (r *Resolver) Resolve(path string) Decision {
	if path == "/" || path == "" {
		return Decision{RedirectTo: LoginPath}
	}

	route, ok := r.match(path)
	if !ok {
		return Decision{NotFound: true}
	}

	sess := r.store.Current()
	for _, guard := range route.Guards {
		if d := guard(sess); d != nil {
			return *d
		}
	}
	return Decision{Allow: true}
}

func (r *Resolver) match(path string) (Route, bool) {
	for _, route := range r.routes {
		if matchPattern(route.Pattern, path) {
			return route, true
		}
	}
	return Route{}, false
}

func matchPattern(pattern, path string) bool {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(xs) {
		return false
	}
	for i, seg := range ps {
		if strings.HasPrefix(seg, ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if seg != xs[i] {
			return false
		}
	}
	return true
}
