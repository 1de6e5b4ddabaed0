// Package container wires the application's components with dig.
package container

import (
	"verto/internal/config"
	"verto/internal/httpclient"
	"verto/internal/registry"
	"verto/internal/resolver"
	"verto/internal/translator"

	"go.uber.org/dig"
)

// BuildContainer creates and configures the dependency injection
// container. Constructors run lazily, on first demand, so flag overrides
// applied to the config manager before anything needs the translator
// still take effect.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []interface{}{
		config.NewManager,
		registry.Default,
		resolver.New,
		httpclient.NewManager,
		translator.New,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}
