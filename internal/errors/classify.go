package errors

import (
	stderrors "errors"
	"net"
	"strings"
	"syscall"

	"verto/internal/registry"
)

// Classification is heuristic. Providers word their failures differently,
// so after the concrete checks these tables match lowercased substrings in
// a fixed order; the first match wins and anything unmatched falls through
// to the generic bucket. Unconventional provider text can land in the
// wrong bucket, which costs a less specific remediation message, never a
// wrong translation.

type statusRule struct {
	match func(status int, lowerMsg string) bool
	build func(status int, message, endpoint, model string) *TranslationError
}

// statusRules is evaluated in order against a non-2xx response and its
// parsed message.
var statusRules = []statusRule{
	{
		// Credential problems. Google reports invalid keys as HTTP 400,
		// so the message substrings matter as much as the status.
		match: func(status int, lowerMsg string) bool {
			return status == 401 || status == 403 ||
				containsAny(lowerMsg,
					"invalid api key",
					"incorrect api key",
					"api key not valid",
					"api key expired",
					"authentication",
					"unauthorized",
					"permission denied",
				)
		},
		build: func(status int, message, endpoint, model string) *TranslationError {
			return NewAuthRejected(model, endpoint, status, message)
		},
	},
	{
		// The endpoint knows the URL but not the model.
		match: func(status int, lowerMsg string) bool {
			if status == 404 && strings.Contains(lowerMsg, "model") {
				return true
			}
			return strings.Contains(lowerMsg, "model not found") ||
				(strings.Contains(lowerMsg, "model") && strings.Contains(lowerMsg, "does not exist"))
		},
		build: func(status int, message, endpoint, model string) *TranslationError {
			return NewModelRejected(model, endpoint, status, message, registry.Default().GroupedByProvider())
		},
	},
	{
		// A 404 without model talk is about the URL itself.
		match: func(status int, lowerMsg string) bool {
			return status == 404
		},
		build: func(status int, message, endpoint, model string) *TranslationError {
			return NewEndpointNotFound(endpoint, message)
		},
	},
	{
		match: func(status int, lowerMsg string) bool {
			return status == 429 ||
				containsAny(lowerMsg,
					"rate limit",
					"too many requests",
					"quota",
					"resource has been exhausted",
					"resource_exhausted",
				)
		},
		build: func(status int, message, endpoint, model string) *TranslationError {
			return NewRateLimited(endpoint, status, message)
		},
	},
}

// ClassifyStatus maps a non-2xx upstream response to a structured error.
// message should come from ParseUpstreamError.
func ClassifyStatus(status int, message, endpoint, model string) *TranslationError {
	lowerMsg := strings.ToLower(message)
	for _, rule := range statusRules {
		if rule.match(status, lowerMsg) {
			return rule.build(status, message, endpoint, model)
		}
	}
	return NewAPICallFailed(endpoint, status, message)
}

type transportRule struct {
	code       string
	substrings []string
}

// transportRules is the substring fallback for transport failures that the
// concrete type checks above it do not recognize.
var transportRules = []transportRule{
	{CodeNetworkTimeout, []string{"timeout", "deadline exceeded"}},
	{CodeNetworkConnect, []string{
		"connection refused",
		"no such host",
		"no route to host",
		"network is unreachable",
		"dial tcp",
	}},
}

// ClassifyTransport maps an error from the HTTP round trip to a network
// error. Concrete error types are checked before the substring rules.
func ClassifyTransport(err error, endpoint string) *TranslationError {
	if err == nil {
		return nil
	}

	// Errors that were already classified pass through untouched.
	var te *TranslationError
	if stderrors.As(err, &te) {
		return te
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return NewNetworkError(CodeNetworkTimeout, endpoint, err)
	}
	if stderrors.Is(err, syscall.ECONNREFUSED) {
		return NewNetworkError(CodeNetworkConnect, endpoint, err)
	}

	lowerMsg := strings.ToLower(err.Error())
	for _, rule := range transportRules {
		if containsAny(lowerMsg, rule.substrings...) {
			return NewNetworkError(rule.code, endpoint, err)
		}
	}
	return NewNetworkError(CodeNetworkOther, endpoint, err)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
