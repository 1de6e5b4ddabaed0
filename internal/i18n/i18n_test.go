package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLanguageCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"zh", "zh-CN"},
		{"zh-CN", "zh-CN"},
		{"zh_CN.UTF-8", "zh-CN"},
		{"zh-Hans", "zh-CN"},
		{"en", "en-US"},
		{"en_US.UTF-8", "en-US"},
		{"en-GB", "en-US"},
		{"ja_JP.UTF-8", "en-US"},
		{"C", "en-US"},
		{"", "en-US"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeLanguageCode(tt.input))
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	t.Run("verto lang wins", func(t *testing.T) {
		t.Setenv("VERTO_LANG", "zh-CN")
		t.Setenv("LC_ALL", "en_US.UTF-8")
		t.Setenv("LANG", "en_US.UTF-8")
		assert.Equal(t, "zh-CN", DetectLanguage())
	})

	t.Run("falls back to posix locale", func(t *testing.T) {
		t.Setenv("VERTO_LANG", "")
		t.Setenv("LC_ALL", "")
		t.Setenv("LANG", "zh_CN.UTF-8")
		assert.Equal(t, "zh-CN", DetectLanguage())
	})

	t.Run("defaults to english", func(t *testing.T) {
		t.Setenv("VERTO_LANG", "")
		t.Setenv("LC_ALL", "")
		t.Setenv("LANG", "")
		assert.Equal(t, "en-US", DetectLanguage())
	})
}

func TestLocalize(t *testing.T) {
	require.NoError(t, Init())

	t.Run("english template data", func(t *testing.T) {
		loc := GetLocalizer("en-US")
		msg := T(loc, "hint.model_not_found", map[string]any{"Model": "gpt-99"})
		assert.Contains(t, msg, "gpt-99")
		assert.Contains(t, msg, "--list-models")
	})

	t.Run("chinese catalog", func(t *testing.T) {
		loc := GetLocalizer("zh-CN")
		msg := T(loc, "hint.network_timeout")
		assert.Contains(t, msg, "超时")
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		loc := GetLocalizer("fr-FR")
		msg := T(loc, "hint.network_timeout")
		assert.Contains(t, msg, "timed out")
	})

	t.Run("unknown message id returned verbatim", func(t *testing.T) {
		loc := GetLocalizer("en-US")
		assert.Equal(t, "no.such.message", T(loc, "no.such.message"))
	})
}
