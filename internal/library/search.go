package library

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/libraryms/internal/navigation"
	"github.com/pkg/errors"
)

const (
	searchOutcomeSubmitted = "submitted"
	searchOutcomeIgnored   = "ignored"
	searchOutcomeFailed    = "failed"
)

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
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

	s.state.SearchQuery = r.PostFormValue("q")

	redirectURL := s.state.CurrentPath()

	navigator := navigation.SearchNavigatorFunc(func(ctx context.Context, query string) error {
		resultsURL, err := h.resolver.ResultsURL(query)
		if err != nil {
			return errors.WithStack(err)
		}

		slog.DebugContext(ctx, "navigating to search results", slog.String("query", query), slog.String("url", resultsURL))

		redirectURL = resultsURL

		return nil
	})

	submitted, err := navigation.SubmitSearch(ctx, s.state.SearchQuery, navigator)
	if err != nil {
		h.searchSubmissions.Increment(searchOutcomeFailed)
		h.serveError(w, r, errors.WithStack(err))
		return
	}

	if submitted {
		h.searchSubmissions.Increment(searchOutcomeSubmitted)
	} else {
		h.searchSubmissions.Increment(searchOutcomeIgnored)
	}

	if err := h.saveSession(w, r, s); err != nil {
		h.serveError(w, r, errors.WithStack(err))
		return
	}

	http.Redirect(w, r, redirectURL, http.StatusSeeOther)
}
