// Package provider implements the wire dialects spoken by translation
// endpoints: how requests are built, where they go, how credentials are
// attached, and how the translated text is pulled out of the response.
package provider

import (
	"fmt"
	"sort"
	"strings"

	"verto/internal/errors"

	"github.com/go-resty/resty/v2"
)

// Dialect is one endpoint wire format. Implementations are stateless.
type Dialect interface {
	// Name identifies the dialect in logs.
	Name() string
	// BuildRequest produces the JSON request body. The prompt message
	// always precedes the text message.
	BuildRequest(model, prompt, text string) ([]byte, error)
	// Endpoint derives the full request URL from the configured base URL.
	Endpoint(baseURL, model string) string
	// ApplyAuth attaches the API key the way this dialect expects it.
	ApplyAuth(req *resty.Request, apiKey string)
	// ParseResponse extracts the translation from a 2xx response body.
	ParseResponse(body []byte) (string, error)
}

type dialectConstructor func() Dialect

var dialectRegistry = make(map[string]dialectConstructor)

// Register adds a dialect constructor to the registry.
func Register(name string, constructor dialectConstructor) {
	if _, exists := dialectRegistry[name]; exists {
		panic(fmt.Sprintf("dialect '%s' is already registered", name))
	}
	dialectRegistry[name] = constructor
}

// Get returns a dialect by name.
func Get(name string) (Dialect, bool) {
	constructor, exists := dialectRegistry[name]
	if !exists {
		return nil, false
	}
	return constructor(), true
}

// Names returns the registered dialect names, sorted.
func Names() []string {
	names := make([]string, 0, len(dialectRegistry))
	for name := range dialectRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForEndpoint picks the dialect for an endpoint URL. Google's native API
// lives on generativelanguage.googleapis.com, but the same host also
// serves an OpenAI-compatible surface under /openai; everything else
// speaks the OpenAI chat format.
func ForEndpoint(endpointURL string) Dialect {
	name := "openai"
	if strings.Contains(endpointURL, "generativelanguage.googleapis.com") &&
		!strings.Contains(endpointURL, "/openai") {
		name = "gemini"
	}
	dialect, _ := Get(name)
	return dialect
}

// joinChoices applies the shared result policy: non-empty choice contents
// joined with a newline, final result trimmed. Zero choices and
// all-blank choices are reported as distinct failures.
func joinChoices(contents []string) (string, error) {
	if len(contents) == 0 {
		return "", errors.NewEmptyResult(errors.CodeNoChoices, "")
	}

	nonEmpty := make([]string, 0, len(contents))
	for _, content := range contents {
		if content != "" {
			nonEmpty = append(nonEmpty, content)
		}
	}

	joined := strings.TrimSpace(strings.Join(nonEmpty, "\n"))
	if joined == "" {
		return "", errors.NewEmptyResult(errors.CodeEmptyChoices, "")
	}
	return joined, nil
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.NewValidationError("text", "must not be empty or whitespace-only")
	}
	return nil
}
