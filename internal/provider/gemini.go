package provider

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

func init() {
	Register("gemini", func() Dialect { return &GeminiDialect{} })
}

// GeminiDialect speaks Google's native generateContent format:
// /v1beta/models/<model>:generateContent, key-in-query auth,
// candidates[].content.parts[].text.
type GeminiDialect struct{}

func (d *GeminiDialect) Name() string {
	return "gemini"
}

// BuildRequest produces two contents: the translation instruction first,
// the text second. The model is not part of the body; it rides in the URL.
func (d *GeminiDialect) BuildRequest(model, prompt, text string) ([]byte, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}

	body := "{}"
	body, _ = sjson.Set(body, "contents.0.parts.0.text", prompt)
	body, _ = sjson.Set(body, "contents.1.parts.0.text", text)
	return []byte(body), nil
}

func (d *GeminiDialect) Endpoint(baseURL, model string) string {
	base := strings.TrimRight(baseURL, "/")
	switch {
	case strings.Contains(base, ":generateContent"):
		// The caller supplied a complete method URL.
		return base
	case strings.HasSuffix(base, "/v1beta"):
		return base + "/models/" + model + ":generateContent"
	default:
		return base + "/v1beta/models/" + model + ":generateContent"
	}
}

func (d *GeminiDialect) ApplyAuth(req *resty.Request, apiKey string) {
	req.SetQueryParam("key", apiKey)
}

func (d *GeminiDialect) ParseResponse(body []byte) (string, error) {
	candidates := gjson.GetBytes(body, "candidates")
	if !candidates.IsArray() {
		return joinChoices(nil)
	}

	var contents []string
	for _, candidate := range candidates.Array() {
		// Parts are fragments of a single message; concatenate them
		// without separators.
		var b strings.Builder
		for _, part := range candidate.Get("content.parts").Array() {
			b.WriteString(part.Get("text").String())
		}
		contents = append(contents, b.String())
	}
	return joinChoices(contents)
}
