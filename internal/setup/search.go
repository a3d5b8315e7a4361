package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/libraryms/internal/config"
	"github.com/bornholm/libraryms/pkg/log"
	"github.com/bornholm/libraryms/pkg/search"
	"github.com/bornholm/libraryms/pkg/search/external"
	"github.com/pkg/errors"

	_ "github.com/bornholm/libraryms/pkg/search/all"
)

var NewSearchResolverFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (search.Resolver, error) {
	var options any
	if conf.Search.Options != nil {
		options = conf.Search.Options.Data
	}

	resolverType := search.Type(conf.Search.Type)

	resolver, err := search.New(resolverType, options)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create search resolver '%s'", resolverType)
	}

	attrs := []any{slog.String("type", string(resolverType))}
	if resolverType == external.Type && conf.Search.Options != nil {
		if rawURL, ok := conf.Search.Options.Data["url"].(string); ok {
			attrs = append(attrs, log.ScrubbedURL("url", rawURL))
		}
	}

	slog.InfoContext(ctx, "search resolver configured", attrs...)

	return resolver, nil
})
