// Package i18n localizes the user-facing portions of error output and the
// model listing. Technical error detail stays English; remediation blocks
// and hints follow the detected language.
package i18n

import (
	"os"
	"strings"

	"verto/internal/i18n/locales"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var bundle *i18n.Bundle

// Init builds the message bundle from the compiled-in locale maps.
func Init() error {
	bundle = i18n.NewBundle(language.AmericanEnglish)

	languages := map[string]map[string]string{
		"en-US": locales.MessagesEnUS,
		"zh-CN": locales.MessagesZhCN,
	}
	for lang, messages := range languages {
		tag := language.MustParse(lang)
		for id, msg := range messages {
			bundle.AddMessages(tag, &i18n.Message{
				ID:    id,
				Other: msg,
			})
		}
	}

	return nil
}

// DetectLanguage picks the UI language: VERTO_LANG wins, then the POSIX
// locale variables, then English.
func DetectLanguage() string {
	for _, env := range []string{"VERTO_LANG", "LC_ALL", "LANG"} {
		if value, ok := os.LookupEnv(env); ok && strings.TrimSpace(value) != "" {
			return normalizeLanguageCode(value)
		}
	}
	return "en-US"
}

// GetLocalizer returns a localizer for the given language code, falling
// back to English for anything the bundle does not carry.
func GetLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		_ = Init()
	}
	if lang == "" {
		lang = "en-US"
	}
	return i18n.NewLocalizer(bundle, normalizeLanguageCode(lang), "en-US")
}

// normalizeLanguageCode maps locale spellings ("zh_CN.UTF-8", "en", "C")
// onto bundle languages.
func normalizeLanguageCode(lang string) string {
	lang = strings.TrimSpace(lang)
	// POSIX locales look like zh_CN.UTF-8; keep the language_REGION part.
	if idx := strings.IndexAny(lang, ".@"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ReplaceAll(lang, "_", "-")

	switch lower := strings.ToLower(lang); {
	case lower == "zh" || strings.HasPrefix(lower, "zh-"):
		return "zh-CN"
	case lower == "en" || strings.HasPrefix(lower, "en-"):
		return "en-US"
	default:
		return "en-US"
	}
}

// T translates a message, returning the message ID when no translation
// exists so broken catalogs stay visible instead of silent.
func T(localizer *i18n.Localizer, msgID string, data ...map[string]any) string {
	config := &i18n.LocalizeConfig{
		MessageID: msgID,
	}
	if len(data) > 0 {
		config.TemplateData = data[0]
	}

	msg, err := localizer.Localize(config)
	if err != nil {
		return msgID
	}
	return msg
}
