// Package registry maps adapter names to their implementations.
// This package is separate from the adapter packages to keep the
// intermediate-representation types free of producer imports.
package registry

import (
	"fmt"

	"github.com/agentstation/livingdoc/pkg/adapters"
	"github.com/agentstation/livingdoc/pkg/errors"

	// Import adapter implementations for the registry.
	"github.com/agentstation/livingdoc/pkg/adapters/collectorgh"
)

// registry maps adapter names to constructor functions.
var registry = map[string]func() adapters.Adapter{
	collectorgh.Name: func() adapters.Adapter { return collectorgh.New() },
}

// Get returns the adapter registered under name, or an adapter error when
// the name is unknown.
func Get(name string) (adapters.Adapter, error) {
	newAdapter, ok := registry[name]
	if !ok {
		return nil, errors.NewAdapterError("",
			fmt.Sprintf("unsupported adapter: %s", name), nil)
	}
	return newAdapter(), nil
}

// Has checks if an adapter name has an implementation.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// List returns all registered adapter names.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Detect returns the single adapter that recognizes the payload, or an
// adapter error when none does.
func Detect(payload map[string]any) (adapters.Adapter, error) {
	for _, newAdapter := range registry {
		adapter := newAdapter()
		if adapter.CanHandle(payload) {
			return adapter, nil
		}
	}
	return nil, errors.NewAdapterError("",
		"input does not match any known adapter format", nil)
}
