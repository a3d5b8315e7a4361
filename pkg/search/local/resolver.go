package local

import (
	"net/url"
	"strings"

	"github.com/bornholm/libraryms/pkg/search"
	"github.com/pkg/errors"
)

const (
	DefaultPath  = "/search"
	DefaultParam = "q"
)

// Resolver targets a results page served by the application itself.
type Resolver struct {
	path  string
	param string
}

// ResultsURL implements search.Resolver.
func (r *Resolver) ResultsURL(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errors.WithStack(search.ErrEmptyQuery)
	}

	values := url.Values{}
	values.Set(r.param, query)

	return r.path + "?" + values.Encode(), nil
}

func NewResolver(path string, param string) *Resolver {
	if path == "" {
		path = DefaultPath
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if param == "" {
		param = DefaultParam
	}

	return &Resolver{
		path:  path,
		param: param,
	}
}

var _ search.Resolver = &Resolver{}
