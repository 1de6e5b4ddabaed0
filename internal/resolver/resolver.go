// Package resolver turns raw invocation inputs into a fully resolved
// request: which endpoint to call, which credential to send, and the text
// and prompt to carry. Validation is ordered and the first failure wins:
// text, then credential, then endpoint.
package resolver

import (
	"os"
	"strings"

	"verto/internal/errors"
	"verto/internal/registry"
)

// KeySource records where the credential came from, for logging.
type KeySource string

const (
	KeySourceFlag KeySource = "flag"
	KeySourceEnv  KeySource = "env"
)

// Request is the raw, flag-parsed input.
type Request struct {
	Text   string
	Model  string
	URL    string
	Key    string
	Prompt string
}

// Resolved is a request ready to send.
type Resolved struct {
	Text        string
	Model       string
	EndpointURL string
	APIKey      string
	KeySource   KeySource
	Prompt      string
	Provider    string
}

// Resolver resolves requests against a model registry and the process
// environment.
type Resolver struct {
	registry *registry.Registry
}

// New creates a resolver backed by the given registry.
func New(reg *registry.Registry) *Resolver {
	return &Resolver{registry: reg}
}

// Resolve validates the request and fills in everything derived. Checks
// run in a fixed order — text, credential, endpoint — so for a request
// with several problems the reported error is deterministic.
func (r *Resolver) Resolve(req *Request) (*Resolved, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, errors.NewValidationError("text", "must not be empty or whitespace-only")
	}

	apiKey, keySource, err := r.resolveKey(req)
	if err != nil {
		return nil, err
	}

	endpointURL, err := r.resolveEndpoint(req)
	if err != nil {
		return nil, err
	}

	// Provider identity follows the effective target: a custom URL names
	// its own provider, otherwise the model does.
	target := req.URL
	if target == "" {
		target = req.Model
	}

	return &Resolved{
		Text:        req.Text,
		Model:       req.Model,
		EndpointURL: endpointURL,
		APIKey:      apiKey,
		KeySource:   keySource,
		Prompt:      req.Prompt,
		Provider:    r.registry.ProviderName(target),
	}, nil
}

// resolveKey applies the credential priority: an explicit key is used
// verbatim no matter what; otherwise the model's provider names the
// environment variable. Unset and set-but-blank variables are distinct
// failures. A value read from the environment is not trimmed.
func (r *Resolver) resolveKey(req *Request) (string, KeySource, error) {
	if req.Key != "" {
		return req.Key, KeySourceFlag, nil
	}

	envVar, ok := r.registry.EnvVarForModel(req.Model)
	if !ok {
		return "", "", errors.NewEnvVarUndetermined(req.Model)
	}

	provider := r.registry.ProviderName(req.Model)
	value, exists := os.LookupEnv(envVar)
	if !exists {
		return "", "", errors.NewAuthMissing(envVar, provider, req.Model)
	}
	if strings.TrimSpace(value) == "" {
		return "", "", errors.NewAuthEmpty(envVar, provider, req.Model)
	}
	return value, KeySourceEnv, nil
}

// resolveEndpoint applies the endpoint priority: an explicit URL is used
// verbatim and skips model validation entirely; otherwise the model must
// be registered.
func (r *Resolver) resolveEndpoint(req *Request) (string, error) {
	if req.URL != "" {
		return req.URL, nil
	}

	url, ok := r.registry.LookupURL(req.Model)
	if !ok {
		return "", errors.NewModelNotFound(req.Model, r.registry.GroupedByProvider())
	}
	return url, nil
}
