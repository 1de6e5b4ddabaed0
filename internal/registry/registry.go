// Package registry holds the static table of supported models: which
// provider serves them, which endpoint they live on, and which environment
// variable carries their credential.
package registry

import (
	"sort"
	"strings"
	"sync"
)

// Provider display names.
const (
	ProviderOpenAI = "OpenAI"
	ProviderGemini = "Google Gemini"
	ProviderOther  = "Other"
)

// DefaultModel is used when no model flag is given.
const DefaultModel = "gemini-2.5-flash-lite"

// Built-in endpoint base URLs. Both are OpenAI-compatible chat surfaces;
// the Gemini one is Google's compatibility layer.
const (
	GeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/openai"
	OpenAIEndpoint = "https://api.openai.com/v1"
)

// Credential console URLs, referenced by remediation text.
const (
	openAIKeysURL = "https://platform.openai.com/api-keys"
	geminiKeysURL = "https://aistudio.google.com/app/apikey"
)

// Environment variables holding provider credentials.
const (
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvGeminiKey = "GOOGLE_AI_API_KEY"
)

// ModelConfig describes one supported model.
type ModelConfig struct {
	Name     string
	Provider string
	URL      string
}

// ProviderGroup is one provider with its models, ready for listings and
// error output. Models are sorted.
type ProviderGroup struct {
	Provider string
	URL      string
	Models   []string
}

// Registry maps model names to their configuration. Immutable after
// construction; all methods are read-only and safe for concurrent use.
type Registry struct {
	models map[string]ModelConfig
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the shared registry, built on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// New builds a registry with the built-in model table.
func New() *Registry {
	entries := []ModelConfig{
		{Name: "gemini-2.5-pro", Provider: ProviderGemini, URL: GeminiEndpoint},
		{Name: "gemini-2.5-flash", Provider: ProviderGemini, URL: GeminiEndpoint},
		{Name: "gemini-2.5-flash-lite", Provider: ProviderGemini, URL: GeminiEndpoint},
		{Name: "gemini-1.5-pro", Provider: ProviderGemini, URL: GeminiEndpoint},
		{Name: "gemini-1.5-flash", Provider: ProviderGemini, URL: GeminiEndpoint},
		{Name: "gpt-4", Provider: ProviderOpenAI, URL: OpenAIEndpoint},
		{Name: "gpt-4-turbo", Provider: ProviderOpenAI, URL: OpenAIEndpoint},
		{Name: "gpt-4o", Provider: ProviderOpenAI, URL: OpenAIEndpoint},
		{Name: "gpt-4o-mini", Provider: ProviderOpenAI, URL: OpenAIEndpoint},
		{Name: "gpt-3.5-turbo", Provider: ProviderOpenAI, URL: OpenAIEndpoint},
		{Name: "gpt-3.5-turbo-16k", Provider: ProviderOpenAI, URL: OpenAIEndpoint},
	}

	models := make(map[string]ModelConfig, len(entries))
	for _, entry := range entries {
		models[entry.Name] = entry
	}
	return &Registry{models: models}
}

// LookupURL returns the endpoint base URL for a model. Names are matched
// exactly: no trimming, no case folding.
func (r *Registry) LookupURL(model string) (string, bool) {
	cfg, ok := r.models[model]
	if !ok {
		return "", false
	}
	return cfg.URL, true
}

// IsSupported reports whether a model is in the table.
func (r *Registry) IsSupported(model string) bool {
	_, ok := r.models[model]
	return ok
}

// ProviderName identifies the provider behind a model name or a raw URL.
// Registered models resolve through their endpoint; anything else is
// treated as a URL and matched by host substring.
func (r *Registry) ProviderName(modelOrURL string) string {
	target := modelOrURL
	if cfg, ok := r.models[modelOrURL]; ok {
		target = cfg.URL
	}
	switch {
	case strings.Contains(target, "generativelanguage.googleapis.com"):
		return ProviderGemini
	case strings.Contains(target, "api.openai.com"):
		return ProviderOpenAI
	default:
		return ProviderOther
	}
}

// EnvVarForProvider returns the credential environment variable for a
// provider, if one is defined.
func EnvVarForProvider(provider string) (string, bool) {
	switch provider {
	case ProviderOpenAI:
		return EnvOpenAIKey, true
	case ProviderGemini:
		return EnvGeminiKey, true
	default:
		return "", false
	}
}

// EnvVarForModel returns the credential environment variable for a
// registered model. Unknown models have no determinable variable.
func (r *Registry) EnvVarForModel(model string) (string, bool) {
	cfg, ok := r.models[model]
	if !ok {
		return "", false
	}
	return EnvVarForProvider(cfg.Provider)
}

// CredentialURL returns the console URL where keys for a provider are
// issued, or an empty string for unknown providers.
func CredentialURL(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return openAIKeysURL
	case ProviderGemini:
		return geminiKeysURL
	default:
		return ""
	}
}

// AllModels returns every model sorted by provider, then by name.
func (r *Registry) AllModels() []ModelConfig {
	all := make([]ModelConfig, 0, len(r.models))
	for _, cfg := range r.models {
		all = append(all, cfg)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Provider != all[j].Provider {
			return all[i].Provider < all[j].Provider
		}
		return all[i].Name < all[j].Name
	})
	return all
}

// ModelNames returns the names of AllModels in the same order.
func (r *Registry) ModelNames() []string {
	all := r.AllModels()
	names := make([]string, len(all))
	for i, cfg := range all {
		names[i] = cfg.Name
	}
	return names
}

// GroupedByProvider returns providers in alphabetical order, each with its
// sorted model names and endpoint.
func (r *Registry) GroupedByProvider() []ProviderGroup {
	byProvider := make(map[string]*ProviderGroup)
	for _, cfg := range r.models {
		group, ok := byProvider[cfg.Provider]
		if !ok {
			group = &ProviderGroup{Provider: cfg.Provider, URL: cfg.URL}
			byProvider[cfg.Provider] = group
		}
		group.Models = append(group.Models, cfg.Name)
	}

	groups := make([]ProviderGroup, 0, len(byProvider))
	for _, group := range byProvider {
		sort.Strings(group.Models)
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Provider < groups[j].Provider
	})
	return groups
}
