package library

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/libraryms/internal/navigation"
	"github.com/bornholm/libraryms/internal/ui"
	"github.com/bornholm/libraryms/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) {
	s, r, err := h.loadSession(r, r.URL.Path)
	if err != nil {
		h.serveError(w, r, errors.WithStack(err))
		return
	}

	ctx := r.Context()

	item, _ := h.catalog.Lookup(s.state.CurrentPath())

	data := PageTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: item.Label,
		},
		Navbar:      h.getNavbarData(r, s.state),
		Title:       item.Label,
		Description: item.Description,
		Icon:        string(item.Icon),
	}

	if err := h.saveSession(w, r, s); err != nil {
		slog.ErrorContext(ctx, "could not save ui session", log.Error(errors.WithStack(err)))
	}

	if err := templates.ExecuteTemplate(w, "page", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		return
	}
}

func (h *Handler) serveSearchResults(w http.ResponseWriter, r *http.Request) {
	s, r, err := h.loadSession(r, r.URL.Path)
	if err != nil {
		h.serveError(w, r, errors.WithStack(err))
		return
	}

	ctx := r.Context()

	data := SearchTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Search",
		},
		Navbar: h.getNavbarData(r, s.state),
		Query:  strings.TrimSpace(r.URL.Query().Get("q")),
	}

	if err := h.saveSession(w, r, s); err != nil {
		slog.ErrorContext(ctx, "could not save ui session", log.Error(errors.WithStack(err)))
	}

	if err := templates.ExecuteTemplate(w, "search", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		return
	}
}

// getNavbarData builds the navbar view model. Missing figures are
// logged and rendered as zero.
func (h *Handler) getNavbarData(r *http.Request, state *navigation.State) ui.NavbarTemplateData {
	ctx := r.Context()

	pendingFines, err := h.stats.PendingFines(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve pending fines", log.Error(errors.WithStack(err)))
		pendingFines = 0
	}

	totalRevenue, err := h.stats.TotalRevenue(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve total revenue", log.Error(errors.WithStack(err)))
		totalRevenue = 0
	}

	return ui.NewNavbarTemplateData(state, h.catalog, ui.NavbarOptions{
		PendingFines: pendingFines,
		TotalRevenue: totalRevenue,
		Formatter:    h.formatter,
	})
}

func (h *Handler) serveError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "could not handle request", log.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
