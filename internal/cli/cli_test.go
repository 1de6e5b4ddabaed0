package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"verto/internal/errors"
	"verto/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	for _, key := range []string{"LOG_LEVEL", "REQUEST_TIMEOUT", "CONNECT_TIMEOUT", "VERTO_LANG", "LC_ALL", "LANG"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	cmd := NewRootCommand()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestListModels(t *testing.T) {
	stdout, _, err := executeCommand(t, "--list-models")

	require.NoError(t, err)
	assert.Contains(t, stdout, registry.ProviderOpenAI)
	assert.Contains(t, stdout, registry.ProviderGemini)
	for _, name := range registry.Default().ModelNames() {
		assert.Contains(t, stdout, name)
	}
	assert.Contains(t, stdout, registry.DefaultModel)
}

func TestListModelsSkipsValidation(t *testing.T) {
	// No text, no credentials: --list-models still succeeds.
	_, _, err := executeCommand(t, "--list-models", "-m", "no-such-model")
	require.NoError(t, err)
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := executeCommand(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "verto")
}

func TestMissingTextFailsValidation(t *testing.T) {
	_, _, err := executeCommand(t, "-k", "sk-test")

	require.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
}

func TestUnknownModelFailsBeforeAnyNetworkCall(t *testing.T) {
	_, _, err := executeCommand(t, "-m", "unknown-model", "-k", "sk-test", "hello")

	require.Error(t, err)
	assert.Equal(t, errors.KindModelNotFound, errors.KindOf(err))

	buf := new(bytes.Buffer)
	RenderError(buf, err)
	rendered := buf.String()
	assert.Contains(t, rendered, "unknown-model")
	assert.Contains(t, rendered, registry.ProviderOpenAI)
	assert.Contains(t, rendered, registry.ProviderGemini)
	assert.Contains(t, rendered, "--list-models")
}

func TestTranslateEndToEnd(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		gotBody = buf.String()
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  你好  "}}]}`))
	}))
	defer server.Close()

	stdout, _, err := executeCommand(t, "-u", server.URL, "-k", "sk-test", "-m", "gpt-4", "hello")

	require.NoError(t, err)
	assert.Equal(t, "你好\n", stdout)
	assert.Equal(t, "gpt-4", gjson.Get(gotBody, "model").String())
	assert.Equal(t, "hello", gjson.Get(gotBody, "messages.1.content").String())
}

func TestInvalidTimeoutFlag(t *testing.T) {
	_, _, err := executeCommand(t, "--timeout", "0", "-k", "sk-test", "hello")

	require.Error(t, err)
	assert.Equal(t, errors.KindConfig, errors.KindOf(err))
}

func TestRenderErrorNeverLeaksKey(t *testing.T) {
	err := errors.NewAuthRejected("gpt-4", "https://api.openai.com/v1", 401,
		`Incorrect API key provided: sk-abcdefghijklmnopqrstuvwxyz123456`)

	buf := new(bytes.Buffer)
	RenderError(buf, err)
	rendered := buf.String()

	assert.NotContains(t, rendered, "sk-abcdefghijklmnopqrstuvwxyz123456")
	assert.Contains(t, rendered, "Error:")
}
