package resolver

import (
	"os"
	"testing"

	"verto/internal/errors"
	"verto/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	return New(registry.New())
}

// unsetEnv removes a variable for the duration of the test. t.Setenv
// registers the restore; os.Unsetenv clears the value.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestResolveExplicitKeyWins(t *testing.T) {
	t.Setenv(registry.EnvOpenAIKey, "sk-from-env")

	resolved, err := newTestResolver().Resolve(&Request{
		Text:  "hello",
		Model: "gpt-4",
		Key:   "X",
	})

	require.NoError(t, err)
	assert.Equal(t, "X", resolved.APIKey)
	assert.Equal(t, KeySourceFlag, resolved.KeySource)
	assert.Equal(t, registry.OpenAIEndpoint, resolved.EndpointURL)
	assert.Equal(t, registry.ProviderOpenAI, resolved.Provider)
}

func TestResolveKeyFromEnvironment(t *testing.T) {
	tests := []struct {
		name   string
		model  string
		envVar string
	}{
		{
			name:   "openai model reads OPENAI_API_KEY",
			model:  "gpt-4o",
			envVar: registry.EnvOpenAIKey,
		},
		{
			name:   "gemini model reads GOOGLE_AI_API_KEY",
			model:  "gemini-2.5-flash",
			envVar: registry.EnvGeminiKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, "env-secret")

			resolved, err := newTestResolver().Resolve(&Request{
				Text:  "hello",
				Model: tt.model,
			})

			require.NoError(t, err)
			assert.Equal(t, "env-secret", resolved.APIKey)
			assert.Equal(t, KeySourceEnv, resolved.KeySource)
		})
	}
}

func TestResolveEnvironmentKeyNotTrimmed(t *testing.T) {
	// A non-blank value is passed through verbatim, whitespace included.
	t.Setenv(registry.EnvOpenAIKey, "  sk-padded  ")

	resolved, err := newTestResolver().Resolve(&Request{
		Text:  "hello",
		Model: "gpt-4",
	})

	require.NoError(t, err)
	assert.Equal(t, "  sk-padded  ", resolved.APIKey)
}

func TestResolveKeyFailures(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		setup    func(t *testing.T)
		wantCode string
	}{
		{
			name:  "env var unset",
			model: "gpt-4",
			setup: func(t *testing.T) {
				unsetEnv(t, registry.EnvOpenAIKey)
			},
			wantCode: errors.CodeEnvVarNotSet,
		},
		{
			name:  "env var empty",
			model: "gpt-4",
			setup: func(t *testing.T) {
				t.Setenv(registry.EnvOpenAIKey, "")
			},
			wantCode: errors.CodeEnvVarEmpty,
		},
		{
			name:  "env var whitespace-only is treated as empty",
			model: "gemini-1.5-pro",
			setup: func(t *testing.T) {
				t.Setenv(registry.EnvGeminiKey, "   ")
			},
			wantCode: errors.CodeEnvVarEmpty,
		},
		{
			name:     "unknown model has no determinable env var",
			model:    "claude-3-opus",
			setup:    func(t *testing.T) {},
			wantCode: errors.CodeEnvVarUndetermined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			_, err := newTestResolver().Resolve(&Request{
				Text:  "hello",
				Model: tt.model,
			})

			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestResolveUnsetAndEmptyAreDistinct(t *testing.T) {
	unsetEnv(t, registry.EnvOpenAIKey)
	_, unsetErr := newTestResolver().Resolve(&Request{Text: "hi", Model: "gpt-4"})

	t.Setenv(registry.EnvOpenAIKey, "   ")
	_, emptyErr := newTestResolver().Resolve(&Request{Text: "hi", Model: "gpt-4"})

	require.Error(t, unsetErr)
	require.Error(t, emptyErr)
	assert.True(t, errors.HasCode(unsetErr, errors.CodeEnvVarNotSet))
	assert.True(t, errors.HasCode(emptyErr, errors.CodeEnvVarEmpty))
	assert.NotEqual(t, unsetErr.Error(), emptyErr.Error())
}

func TestResolveExplicitURLBypassesModelValidation(t *testing.T) {
	resolved, err := newTestResolver().Resolve(&Request{
		Text:  "hello",
		Model: "my-local-model",
		URL:   "http://localhost:11434/v1",
		Key:   "local-key",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434/v1", resolved.EndpointURL)
	assert.Equal(t, registry.ProviderOther, resolved.Provider)
}

func TestResolveUnknownModelFailsWithGroupedListing(t *testing.T) {
	_, err := newTestResolver().Resolve(&Request{
		Text:  "hello",
		Model: "unknown-model",
		Key:   "X",
	})

	require.Error(t, err)
	assert.Equal(t, errors.KindModelNotFound, errors.KindOf(err))

	var te *errors.TranslationError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "unknown-model", te.Model)
	require.Len(t, te.Groups, 2)
	assert.Equal(t, registry.ProviderGemini, te.Groups[0].Provider)
	assert.Equal(t, registry.ProviderOpenAI, te.Groups[1].Provider)
}

func TestResolveValidationOrder(t *testing.T) {
	// Text is checked first: with blank text every other problem in the
	// request goes unreported.
	unsetEnv(t, registry.EnvOpenAIKey)

	_, err := newTestResolver().Resolve(&Request{
		Text:  "   ",
		Model: "unknown-model",
	})

	require.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))

	// Key is checked before the model lookup: an unresolvable credential
	// masks the unknown model.
	_, err = newTestResolver().Resolve(&Request{
		Text:  "hello",
		Model: "unknown-model",
	})

	require.Error(t, err)
	assert.Equal(t, errors.KindConfig, errors.KindOf(err))
}

func TestResolveCarriesPromptAndText(t *testing.T) {
	resolved, err := newTestResolver().Resolve(&Request{
		Text:   "bonjour",
		Model:  "gpt-4",
		Key:    "sk-test",
		Prompt: "translate to English",
	})

	require.NoError(t, err)
	assert.Equal(t, "bonjour", resolved.Text)
	assert.Equal(t, "translate to English", resolved.Prompt)
	assert.Equal(t, "gpt-4", resolved.Model)
}
