package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"verto/internal/i18n"
	"verto/internal/registry"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

// Render formats an error for the terminal: the technical detail followed
// by the localized remediation block, plus a short localized hint. Both
// strings are credential-free because every message field was sanitized on
// construction.
func Render(err error, loc *goi18n.Localizer) (detail, hint string) {
	var te *TranslationError
	if !stderrors.As(err, &te) {
		return err.Error(), ""
	}

	detail = te.Error()
	if remedy := remediation(te, loc); remedy != "" {
		detail += "\n\n" + remedy
	}
	if te.happenedDuringCall() {
		detail += "\n\n" + i18n.T(loc, "trouble.footer")
	}
	return detail, shortHint(te, loc)
}

// happenedDuringCall reports whether the failure occurred while talking to
// the endpoint, which earns the troubleshooting footer.
func (e *TranslationError) happenedDuringCall() bool {
	switch e.Kind {
	case KindAPICall, KindNetwork, KindEmptyResult:
		return true
	case KindAuthentication:
		return e.Code == CodeAuthRejected
	case KindModelNotFound:
		return e.StatusCode != 0
	}
	return false
}

func remediation(e *TranslationError, loc *goi18n.Localizer) string {
	switch e.Code {
	case CodeInvalidInput:
		if e.Field == "text" {
			return i18n.T(loc, "remedy.validation_text")
		}
		return ""
	case CodeEnvVarUndetermined:
		return i18n.T(loc, "remedy.config_no_env_var", map[string]any{"Model": e.Model})
	case CodeEnvVarNotSet:
		return i18n.T(loc, "remedy.auth_unset", map[string]any{
			"EnvVar":        e.EnvVar,
			"CredentialURL": e.CredentialURL,
		})
	case CodeEnvVarEmpty:
		return i18n.T(loc, "remedy.auth_empty", map[string]any{
			"EnvVar":        e.EnvVar,
			"CredentialURL": e.CredentialURL,
		})
	case CodeAuthRejected:
		return i18n.T(loc, "remedy.auth_rejected", map[string]any{"Model": e.Model})
	case CodeModelNotFound:
		return i18n.T(loc, "remedy.model_not_found_header") + "\n\n" +
			FormatModelGroups(e.Groups) + "\n\n" +
			i18n.T(loc, "remedy.model_not_found_footer")
	case CodeRateLimited:
		return i18n.T(loc, "remedy.rate_limited")
	case CodeEndpointNotFound:
		return i18n.T(loc, "remedy.endpoint_not_found")
	case CodeUpstreamError:
		return i18n.T(loc, "remedy.api")
	case CodeNetworkTimeout, CodeNetworkConnect, CodeNetworkOther:
		return i18n.T(loc, "remedy.network")
	case CodeNoChoices, CodeEmptyChoices:
		return i18n.T(loc, "remedy.empty")
	}
	return ""
}

func shortHint(e *TranslationError, loc *goi18n.Localizer) string {
	switch e.Code {
	case CodeInvalidInput:
		return i18n.T(loc, "hint.validation", map[string]any{"Reason": e.Message})
	case CodeEnvVarUndetermined, CodeConfigInvalid:
		return i18n.T(loc, "hint.config")
	case CodeEnvVarNotSet, CodeEnvVarEmpty, CodeAuthRejected:
		return i18n.T(loc, "hint.auth")
	case CodeModelNotFound:
		return i18n.T(loc, "hint.model_not_found", map[string]any{"Model": e.Model})
	case CodeRateLimited:
		return i18n.T(loc, "hint.rate_limited")
	case CodeEndpointNotFound:
		return i18n.T(loc, "hint.api_client", map[string]any{"Status": 404})
	case CodeUpstreamError:
		switch {
		case e.StatusCode >= 500:
			return i18n.T(loc, "hint.api_server", map[string]any{"Status": e.StatusCode})
		case e.StatusCode >= 400:
			return i18n.T(loc, "hint.api_client", map[string]any{"Status": e.StatusCode})
		default:
			return i18n.T(loc, "hint.api")
		}
	case CodeNetworkTimeout:
		return i18n.T(loc, "hint.network_timeout")
	case CodeNetworkConnect:
		return i18n.T(loc, "hint.network_connect")
	case CodeNetworkOther:
		return i18n.T(loc, "hint.network")
	case CodeNoChoices:
		return i18n.T(loc, "hint.empty_no_choices")
	case CodeEmptyChoices:
		return i18n.T(loc, "hint.empty_blank")
	}
	return i18n.T(loc, "hint.api")
}

// FormatModelGroups renders the grouped model listing used in
// model-not-found output and by --list-models.
func FormatModelGroups(groups []registry.ProviderGroup) string {
	var b strings.Builder
	for i, group := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (%s)\n", group.Provider, group.URL)
		for _, model := range group.Models {
			fmt.Fprintf(&b, "  %s\n", model)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
