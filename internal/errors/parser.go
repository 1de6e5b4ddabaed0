package errors

import (
	"strings"

	"verto/internal/utils"

	"github.com/tidwall/gjson"
)

// maxErrorBodyLength caps how much upstream error text is kept. Provider
// error bodies occasionally include whole HTML pages.
const maxErrorBodyLength = 2048

// upstreamMessagePaths lists the JSON fields providers put their error
// text in, most common first.
var upstreamMessagePaths = []string{
	"error.message", // OpenAI, Gemini
	"error_msg",     // some vendor gateways
	"error",         // bare string form
	"message",       // root-level form
}

// ParseUpstreamError extracts a human-readable message from an error
// response body. Falls back to the raw body when no known field matches;
// the result is always length-capped.
func ParseUpstreamError(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	if gjson.Valid(trimmed) {
		for _, path := range upstreamMessagePaths {
			result := gjson.Get(trimmed, path)
			if result.Exists() && result.Type == gjson.String && result.String() != "" {
				return utils.TruncateString(result.String(), maxErrorBodyLength)
			}
		}
	}

	return utils.TruncateString(trimmed, maxErrorBodyLength)
}
