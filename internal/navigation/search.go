package navigation

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// SearchNavigator leads the user to the results of a search query.
type SearchNavigator interface {
	NavigateToSearch(ctx context.Context, query string) error
}

type SearchNavigatorFunc func(ctx context.Context, query string) error

// NavigateToSearch implements SearchNavigator.
func (fn SearchNavigatorFunc) NavigateToSearch(ctx context.Context, query string) error {
	return fn(ctx, query)
}

var _ SearchNavigator = SearchNavigatorFunc(nil)

// SubmitSearch trims the query and forwards it to the navigator.
// A blank query is a no-op: it returns false and no error.
func SubmitSearch(ctx context.Context, query string, navigator SearchNavigator) (bool, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return false, nil
	}

	if err := navigator.NavigateToSearch(ctx, trimmed); err != nil {
		return false, errors.WithStack(err)
	}

	return true, nil
}
