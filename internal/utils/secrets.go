// Package utils provides small shared helpers: credential masking,
// log sanitizing, and string utilities.
package utils

import (
	"regexp"
	"strings"
)

// Compiled redaction patterns. Pre-compiled because sanitizing runs on
// every non-2xx response body before it is logged or echoed.
var (
	// OpenAI-style keys (sk-..., sk-proj-...).
	openAIKeyPattern = regexp.MustCompile(`\bsk-[a-zA-Z0-9][a-zA-Z0-9-]{19,}\b`)
	// Google AI Studio keys (AIza + 35 URL-safe chars).
	googleKeyPattern = regexp.MustCompile(`\bAIza[0-9A-Za-z_\-]{35}\b`)
	// Bearer token values (single line).
	bearerPattern = regexp.MustCompile(`(?i)\bBearer[ \t]+[a-zA-Z0-9\-._~+/]+=*`)
	// Full Authorization header values.
	authHeaderPattern = regexp.MustCompile(`(?im)\bAuthorization:\s*[^\r\n]*`)
	// key=... query parameters (Gemini native auth travels in the query).
	keyParamPattern = regexp.MustCompile(`(?i)([?&](?:key|api_key|apikey)=)[^&\s"']+`)
	// Secret-bearing JSON fields.
	secretJSONPattern = regexp.MustCompile(`(?i)"(api_key|apikey|secret|password|token|auth|authorization|credential|private_key)":\s*"[^"]*"`)
)

// MaskAPIKey masks an API key for safe logging.
// Example: "sk-1234567890abcdef" -> "sk-1****cdef"
func MaskAPIKey(key string) string {
	length := len(key)
	if length <= 8 {
		return key
	}
	var b strings.Builder
	b.Grow(12)
	b.WriteString(key[:4])
	b.WriteString("****")
	b.WriteString(key[length-4:])
	return b.String()
}

// SanitizeErrorBody removes credentials from upstream error text before it
// is logged or shown to the user.
//
// Always sanitize BEFORE truncating: a truncated token may no longer match
// the redaction patterns.
func SanitizeErrorBody(body string) string {
	if body == "" {
		return body
	}

	result := body

	// JSON secret fields first (most specific).
	result = secretJSONPattern.ReplaceAllStringFunc(result, func(match string) string {
		idx := strings.Index(match, ":")
		if idx > 0 {
			return match[:idx+1] + ` "[REDACTED]"`
		}
		return "[REDACTED_SECRET]"
	})

	result = openAIKeyPattern.ReplaceAllString(result, "[REDACTED_API_KEY]")
	result = googleKeyPattern.ReplaceAllString(result, "[REDACTED_API_KEY]")
	result = bearerPattern.ReplaceAllString(result, "Bearer [REDACTED]")
	result = authHeaderPattern.ReplaceAllString(result, "Authorization: [REDACTED]")
	result = keyParamPattern.ReplaceAllString(result, "${1}[REDACTED]")

	return result
}

// TruncateString shortens a string to a maximum length.
func TruncateString(s string, maxLength int) string {
	if len(s) > maxLength {
		return s[:maxLength]
	}
	return s
}
