package external

import (
	"net/url"
	"strings"

	"github.com/bornholm/libraryms/pkg/search"
	"github.com/pkg/errors"
)

// Resolver targets a results page hosted by a third-party catalog.
type Resolver struct {
	baseURL *url.URL
	param   string
}

// ResultsURL implements search.Resolver.
func (r *Resolver) ResultsURL(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errors.WithStack(search.ErrEmptyQuery)
	}

	target := *r.baseURL

	values := target.Query()
	values.Set(r.param, query)
	target.RawQuery = values.Encode()

	return target.String(), nil
}

func NewResolver(rawURL string, param string) (*Resolver, error) {
	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse url '%s'", rawURL)
	}

	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, errors.Errorf("unexpected url scheme '%s'", baseURL.Scheme)
	}

	if baseURL.Host == "" {
		return nil, errors.Errorf("missing host in url '%s'", rawURL)
	}

	if param == "" {
		param = "q"
	}

	return &Resolver{
		baseURL: baseURL,
		param:   param,
	}, nil
}

var _ search.Resolver = &Resolver{}
