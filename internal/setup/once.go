package setup

import (
	"context"
	"sync"

	"github.com/bornholm/libraryms/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes a config based factory: the first
// call builds the value, subsequent calls return it.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = factory(ctx, conf)
		})

		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		return value, nil
	}
}
