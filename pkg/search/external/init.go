package external

import (
	"github.com/bornholm/libraryms/pkg/search"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const Type search.Type = "external"

func init() {
	search.Register(Type, CreateResolverFromOptions)
}

type Options struct {
	URL   string `mapstructure:"url"`
	Param string `mapstructure:"param"`
}

func CreateResolverFromOptions(options any) (search.Resolver, error) {
	opts := Options{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &opts,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not create '%s' search resolver options decoder", Type)
	}

	if err := decoder.Decode(options); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' search resolver options", Type)
	}

	resolver, err := NewResolver(opts.URL, opts.Param)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return resolver, nil
}
