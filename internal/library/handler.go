package library

import (
	"fmt"
	"net/http"

	"github.com/bornholm/libraryms/internal/navigation"
	"github.com/bornholm/libraryms/internal/ratelimit"
	"github.com/bornholm/libraryms/internal/ui"
	"github.com/bornholm/libraryms/pkg/metric"
	"github.com/bornholm/libraryms/pkg/search"
	"github.com/gorilla/sessions"
)

type Handler struct {
	mux               *http.ServeMux
	catalog           *navigation.Catalog
	sessionStore      sessions.Store
	sessionName       string
	resolver          search.Resolver
	stats             FinanceStats
	formatter         *navigation.CurrencyFormatter
	searchRateLimiter *ratelimit.RateLimiter
	panelChanges      metric.IncrementalCounter
	searchSubmissions metric.IncrementalCounter
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:               &http.ServeMux{},
		catalog:           navigation.NewCatalog(),
		sessionStore:      sessionStore,
		sessionName:       opts.SessionName,
		resolver:          opts.Resolver,
		stats:             opts.Stats,
		formatter:         opts.Formatter,
		searchRateLimiter: opts.SearchRateLimiter,
		panelChanges:      opts.PanelChanges,
		searchSubmissions: opts.SearchSubmissions,
	}

	// Destinations
	h.mux.HandleFunc("GET /{$}", h.servePage)
	for _, item := range h.catalog.Primary() {
		if item.Path == navigation.PathHome {
			continue
		}

		h.mux.HandleFunc(fmt.Sprintf("GET %s", item.Path), h.servePage)
	}
	for _, item := range h.catalog.Finance(0) {
		h.mux.HandleFunc(fmt.Sprintf("GET %s", item.Path), h.servePage)
	}
	h.mux.HandleFunc("GET /search", h.serveSearchResults)

	// Navigation bar interactions
	h.mux.HandleFunc(fmt.Sprintf("POST %s{panel}", ui.PanelsPrefix), h.handlePanelChange)
	h.mux.HandleFunc(fmt.Sprintf("GET %s", ui.NavigatePath), h.handleNavigate)

	var searchHandler http.Handler = http.HandlerFunc(h.handleSearch)
	if h.searchRateLimiter != nil {
		searchHandler = h.searchRateLimiter.Middleware(h.rateLimitKey)(searchHandler)
	}
	h.mux.Handle(fmt.Sprintf("POST %s", ui.SearchPath), searchHandler)

	return h
}

var _ http.Handler = &Handler{}
