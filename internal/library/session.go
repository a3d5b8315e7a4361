package library

import (
	"log/slog"
	"net"
	"net/http"
	"path"
	"strings"

	"github.com/bornholm/libraryms/internal/navigation"
	"github.com/bornholm/libraryms/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

const (
	sessionKeyID              = "id"
	sessionKeyLocation        = "location"
	sessionKeyMobileMenuOpen  = "mobileMenuOpen"
	sessionKeyFinanceMenuOpen = "financeMenuOpen"
	sessionKeySearchQuery     = "searchQuery"
)

// uiSession binds the navigation state of a browser session to the request.
type uiSession struct {
	session *sessions.Session
	state   *navigation.State
}

// loadSession restores the navigation state and mirrors the given location
// into it, the stored one when empty. Overlays left open on another
// location are dismissed.
func (h *Handler) loadSession(r *http.Request, location string) (*uiSession, *http.Request, error) {
	session, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		// Sessions signed with rotated keys are replaced by a fresh one
		slog.WarnContext(r.Context(), "could not decode ui session", log.Error(errors.WithStack(err)))

		session, err = h.sessionStore.New(r, h.sessionName)
		if err != nil && session == nil {
			return nil, r, errors.WithStack(err)
		}
	}

	id, _ := session.Values[sessionKeyID].(string)
	if id == "" {
		id = xid.New().String()
		session.Values[sessionKeyID] = id
	}

	ctx := log.WithAttrs(r.Context(), slog.String("session", id))
	r = r.WithContext(ctx)

	previousLocation, _ := session.Values[sessionKeyLocation].(string)
	if location == "" {
		location = previousLocation
	}

	state := navigation.NewState(location)

	if previousLocation == "" || previousLocation == state.CurrentPath() {
		mobileMenuOpen, _ := session.Values[sessionKeyMobileMenuOpen].(bool)
		financeMenuOpen, _ := session.Values[sessionKeyFinanceMenuOpen].(bool)

		state.MobileMenu.SetOpen(mobileMenuOpen)
		state.FinanceMenu.SetOpen(financeMenuOpen)
	}

	state.SearchQuery, _ = session.Values[sessionKeySearchQuery].(string)

	state.MobileMenu.OnChange(h.onPanelChange(r, navigation.PanelMobile))
	state.FinanceMenu.OnChange(h.onPanelChange(r, navigation.PanelFinance))

	return &uiSession{session: session, state: state}, r, nil
}

func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request, s *uiSession) error {
	s.session.Values[sessionKeyLocation] = s.state.CurrentPath()
	s.session.Values[sessionKeyMobileMenuOpen] = s.state.MobileMenu.IsOpen()
	s.session.Values[sessionKeyFinanceMenuOpen] = s.state.FinanceMenu.IsOpen()
	s.session.Values[sessionKeySearchQuery] = s.state.SearchQuery

	if err := s.session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) onPanelChange(r *http.Request, panel navigation.Panel) func(open bool) {
	return func(open bool) {
		state := "closed"
		if open {
			state = "open"
		}

		slog.DebugContext(r.Context(), "panel state changed", slog.String("panel", string(panel)), slog.String("state", state))
		h.panelChanges.Increment(string(panel), state)
	}
}

// rateLimitKey keys search submissions on the client address. Session ids
// are minted on demand and cannot bound a client.
func (h *Handler) rateLimitKey(r *http.Request) (string, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "addr-" + r.RemoteAddr, nil
	}

	return "addr-" + host, nil
}

// safeLocation restricts a client provided location to a local path.
func safeLocation(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return navigation.PathHome
	}

	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}

	return path.Clean(raw)
}
