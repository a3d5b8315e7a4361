package search

import (
	"slices"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrNotRegistered = errors.New("not registered")
	ErrEmptyQuery    = errors.New("empty query")
)

type Type string

// Resolver builds the location of the results page for a query.
type Resolver interface {
	ResultsURL(query string) (string, error)
}

type FactoryFunc func(options any) (Resolver, error)

var (
	registry      = map[Type]FactoryFunc{}
	registryMutex sync.RWMutex
)

func Register(resolverType Type, factory FactoryFunc) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	registry[resolverType] = factory
}

func Registered() []Type {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}

	slices.Sort(types)

	return types
}

func New(resolverType Type, options any) (Resolver, error) {
	registryMutex.RLock()
	factory, exists := registry[resolverType]
	registryMutex.RUnlock()

	if !exists {
		return nil, errors.Wrapf(ErrNotRegistered, "search resolver '%s'", resolverType)
	}

	resolver, err := factory(options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return resolver, nil
}
