package provider

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

func init() {
	Register("openai", func() Dialect { return &OpenAIDialect{} })
}

// OpenAIDialect speaks the chat completions format: /chat/completions,
// bearer auth, choices[].message.content. This covers api.openai.com,
// Google's /openai compatibility surface, and most self-hosted gateways.
type OpenAIDialect struct{}

func (d *OpenAIDialect) Name() string {
	return "openai"
}

// BuildRequest produces two user-role messages: the translation
// instruction first, the text second. Both ride as "user" because several
// compatible backends score system prompts differently or drop them.
func (d *OpenAIDialect) BuildRequest(model, prompt, text string) ([]byte, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}

	body := "{}"
	body, _ = sjson.Set(body, "model", model)
	body, _ = sjson.Set(body, "messages.0.role", "user")
	body, _ = sjson.Set(body, "messages.0.content", prompt)
	body, _ = sjson.Set(body, "messages.1.role", "user")
	body, _ = sjson.Set(body, "messages.1.content", text)
	return []byte(body), nil
}

func (d *OpenAIDialect) Endpoint(baseURL, model string) string {
	return strings.TrimRight(baseURL, "/") + "/chat/completions"
}

func (d *OpenAIDialect) ApplyAuth(req *resty.Request, apiKey string) {
	req.SetHeader("Authorization", "Bearer "+apiKey)
}

func (d *OpenAIDialect) ParseResponse(body []byte) (string, error) {
	choices := gjson.GetBytes(body, "choices")
	if !choices.IsArray() {
		return joinChoices(nil)
	}

	var contents []string
	for _, choice := range choices.Array() {
		contents = append(contents, choice.Get("message.content").String())
	}
	return joinChoices(contents)
}
