package library

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bornholm/libraryms/internal/navigation"
	"github.com/bornholm/libraryms/pkg/log"
	"github.com/pkg/errors"
)

// handlePanelChange handles an open-state change request for one of the
// navigation bar panels.
func (h *Handler) handlePanelChange(w http.ResponseWriter, r *http.Request) {
	panel, err := navigation.ParsePanel(r.PathValue("panel"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	open, err := strconv.ParseBool(r.PostFormValue("open"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	location := safeLocation(r.PostFormValue("path"))

	s, r, err := h.loadSession(r, location)
	if err != nil {
		h.serveError(w, r, errors.WithStack(err))
		return
	}

	ctx := r.Context()

	toggle, err := s.state.Toggle(panel)
	if err != nil {
		h.serveError(w, r, errors.WithStack(err))
		return
	}

	toggle.SetOpen(open)

	if err := h.saveSession(w, r, s); err != nil {
		h.serveError(w, r, errors.WithStack(err))
		return
	}

	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, s.state.CurrentPath(), http.StatusSeeOther)
		return
	}

	if err := templates.ExecuteTemplate(w, "navbar", h.getNavbarData(r, s.state)); err != nil {
		slog.ErrorContext(ctx, "could not execute partial template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// handleNavigate follows a link living inside a panel: the panel is closed
// before redirecting to the destination.
func (h *Handler) handleNavigate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	panel, err := navigation.ParsePanel(query.Get("panel"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	destination, exists := h.catalog.Lookup(query.Get("to"))
	if !exists {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	s, r, err := h.loadSession(r, "")
	if err != nil {
		h.serveError(w, r, errors.WithStack(err))
		return
	}

	if err := s.state.SelectLink(panel); err != nil {
		h.serveError(w, r, errors.WithStack(err))
		return
	}

	if err := h.saveSession(w, r, s); err != nil {
		h.serveError(w, r, errors.WithStack(err))
		return
	}

	slog.DebugContext(r.Context(), "navigating from panel", slog.String("panel", string(panel)), slog.String("to", destination.Path))

	http.Redirect(w, r, destination.Path, http.StatusSeeOther)
}
