package setup

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/libraryms/internal/config"
	"github.com/bornholm/libraryms/internal/library"
	"github.com/bornholm/libraryms/internal/navigation"
	"github.com/bornholm/libraryms/internal/pprof"
	"github.com/bornholm/libraryms/internal/ratelimit"
	"github.com/bornholm/libraryms/pkg/metric"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resolver, err := NewSearchResolverFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	registry := prometheus.NewRegistry()

	panelChanges := metric.NewCounterWithRegistry(
		registry,
		"libraryms_panel_changes_total",
		"Number of navigation bar panel state changes",
		"panel", "state",
	)

	searchSubmissions := metric.NewCounterWithRegistry(
		registry,
		"libraryms_search_submissions_total",
		"Number of search form submissions",
		"outcome",
	)

	formatter := navigation.NewCurrencyFormatter(string(conf.Finance.Locale), string(conf.Finance.Symbol))

	libraryOptions := []library.OptionFunc{
		library.WithSessionName(string(conf.HTTP.Session.Name)),
		library.WithResolver(resolver),
		library.WithFinanceStats(&library.StaticFinanceStats{
			Fines:   int(conf.Finance.PendingFines),
			Revenue: int64(conf.Finance.TotalRevenue),
		}),
		library.WithCurrencyFormatter(formatter),
		library.WithCounters(panelChanges, searchSubmissions),
	}

	// A zero rate disables search rate limiting
	if conf.Search.Rate > 0 {
		libraryOptions = append(libraryOptions, library.WithSearchRateLimiter(
			ratelimit.New(rate.Limit(conf.Search.Rate), int(conf.Search.Burst)),
		))
	}

	libraryHandler := library.NewHandler(sessionStore, libraryOptions...)

	if conf.Metrics.Enabled {
		mux.Handle(string(conf.Metrics.Path), metric.GetHandlerForRegistry(registry))
	}

	if conf.Debug.Enabled {
		prefix := strings.TrimSuffix(string(conf.Debug.Prefix), "/")
		mux.Handle(prefix+"/", pprof.NewHandler(prefix, bool(conf.Debug.AllowRemote)))
	}

	mux.Handle("/", slogMiddleware(libraryHandler))

	return mux, nil
}
