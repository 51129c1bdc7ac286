package nav

import (
	"fmt"
	"io"

	"github.com/corebank/banking-system/internal/client/gateway"
	"github.com/corebank/banking-system/internal/client/session"
	"github.com/corebank/banking-system/internal/core/domain"
)

// Shell renders the persistent application chrome: brand, and when signed in,
// the user strip with a way out.
type Shell struct {
	title string
	store *session.Store
	gw    *gateway.Gateway
}

func NewShell(title string, store *session.Store, gw *gateway.Gateway) *Shell {
	return &Shell{title: title, store: store, gw: gw}
}

// Render writes the shell header for the current session state.
func (s *Shell) Render(w io.Writer) {
	fmt.Fprintf(w, "== %s ==\n", s.title)
	sess := s.store.Current()
	if sess == nil {
		return
	}
	fmt.Fprintf(w, "Signed in as %s (%s)\n", sess.Identity.Username, sess.Identity.Role)
}

// HomePath returns the landing path for the signed-in user's role, or the
// login path when signed out.
func (s *Shell) HomePath() string {
	sess := s.store.Current()
	if sess == nil {
		return LoginPath
	}
	if home, ok := domain.HomePath[sess.Identity.Role]; ok {
		return home
	}
	return LoginPath
}

// Logout clears the session and returns the path to navigate to next.
func (s *Shell) Logout() string {
	s.gw.Logout()
	return LoginPath
}
