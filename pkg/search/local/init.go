package local

import (
	"github.com/bornholm/libraryms/pkg/search"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const Type search.Type = "local"

func init() {
	search.Register(Type, CreateResolverFromOptions)
}

type Options struct {
	Path  string `mapstructure:"path"`
	Param string `mapstructure:"param"`
}

func CreateResolverFromOptions(options any) (search.Resolver, error) {
	opts := Options{}

	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' search resolver options", Type)
	}

	return NewResolver(opts.Path, opts.Param), nil
}
