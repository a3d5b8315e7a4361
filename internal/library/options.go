package library

import (
	"github.com/bornholm/libraryms/internal/navigation"
	"github.com/bornholm/libraryms/internal/ratelimit"
	"github.com/bornholm/libraryms/pkg/metric"
	"github.com/bornholm/libraryms/pkg/search"
	"github.com/bornholm/libraryms/pkg/search/local"
)

const DefaultSessionName = "libraryms_ui"

type Options struct {
	SessionName       string
	Resolver          search.Resolver
	Stats             FinanceStats
	Formatter         *navigation.CurrencyFormatter
	SearchRateLimiter *ratelimit.RateLimiter
	PanelChanges      metric.IncrementalCounter
	SearchSubmissions metric.IncrementalCounter
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SessionName:       DefaultSessionName,
		Resolver:          local.NewResolver(local.DefaultPath, local.DefaultParam),
		Stats:             &StaticFinanceStats{},
		Formatter:         navigation.NewCurrencyFormatter(navigation.DefaultCurrencyLocale, navigation.DefaultCurrencySymbol),
		SearchRateLimiter: nil,
		PanelChanges:      metric.Discard,
		SearchSubmissions: metric.Discard,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

func WithResolver(resolver search.Resolver) OptionFunc {
	return func(opts *Options) {
		opts.Resolver = resolver
	}
}

func WithFinanceStats(stats FinanceStats) OptionFunc {
	return func(opts *Options) {
		opts.Stats = stats
	}
}

func WithCurrencyFormatter(formatter *navigation.CurrencyFormatter) OptionFunc {
	return func(opts *Options) {
		opts.Formatter = formatter
	}
}

func WithSearchRateLimiter(limiter *ratelimit.RateLimiter) OptionFunc {
	return func(opts *Options) {
		opts.SearchRateLimiter = limiter
	}
}

func WithCounters(panelChanges metric.IncrementalCounter, searchSubmissions metric.IncrementalCounter) OptionFunc {
	return func(opts *Options) {
		opts.PanelChanges = panelChanges
		opts.SearchSubmissions = searchSubmissions
	}
}
