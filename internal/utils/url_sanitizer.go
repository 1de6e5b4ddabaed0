package utils

import (
	"net/url"
	"strings"
)

// credentialParams lists query parameters whose values are credentials.
var credentialParams = map[string]bool{
	"key":     true,
	"api_key": true,
	"apikey":  true,
}

// SanitizeURLForLog returns a loggable form of a request URL with user info
// removed and credential query parameters masked. Gemini-native endpoints
// carry the key as ?key=..., so raw URLs must never reach the logs.
func SanitizeURLForLog(rawURL string) string {
	s := strings.TrimSpace(rawURL)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		// Best-effort: strip userinfo and everything after '?'.
		if qIdx := strings.Index(s, "?"); qIdx >= 0 {
			s = s[:qIdx]
		}
		schemeIdx := strings.Index(s, "://")
		atIdx := strings.LastIndex(s, "@")
		if schemeIdx >= 0 && atIdx > schemeIdx+3 {
			return s[:schemeIdx+3] + s[atIdx+1:]
		}
		return s
	}

	u.User = nil
	if u.RawQuery != "" {
		q := u.Query()
		for name := range q {
			if credentialParams[strings.ToLower(name)] {
				q.Set(name, "[REDACTED]")
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String()
}
