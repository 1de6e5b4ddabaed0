// Package translator orchestrates one translation: pick the dialect for
// the resolved endpoint, build the request, make exactly one HTTP call,
// and turn the outcome into either the translated text or a classified
// error. Nothing here retries.
package translator

import (
	"context"

	"verto/internal/config"
	"verto/internal/errors"
	"verto/internal/httpclient"
	"verto/internal/provider"
	"verto/internal/resolver"
	"verto/internal/utils"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultPrompt is the minimalist bidirectional instruction used when no
// -p flag is given: Chinese input is translated to English and vice
// versa, only the translation is emitted, and single-word results keep
// their casing.
const DefaultPrompt = "你是一个极简翻译工具，接下来我将输入一段内容，请按照以下规则将它翻译：" +
	"1、如果输入内容是中文则翻译成英文，反之亦然。" +
	"2、仅输出翻译后的内容，不要携带其他内容。" +
	"3、如果翻译后的内容是单个词语，则首字母不需要大写。"

// Translator performs translations over a shared HTTP client.
type Translator struct {
	client *resty.Client
}

// New creates a translator using a client from the manager's cache,
// configured per the config manager's timeouts.
func New(configManager *config.Manager, clients *httpclient.Manager) *Translator {
	return &Translator{
		client: clients.GetClient(configManager.ClientConfig()),
	}
}

// Translate sends the resolved request and returns the trimmed
// translation. Every failure comes back as a *errors.TranslationError;
// the single network call is never repeated.
func (t *Translator) Translate(ctx context.Context, resolved *resolver.Resolved) (string, error) {
	dialect := provider.ForEndpoint(resolved.EndpointURL)
	endpoint := dialect.Endpoint(resolved.EndpointURL, resolved.Model)
	loggableEndpoint := utils.SanitizeURLForLog(endpoint)

	prompt := resolved.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	body, err := dialect.BuildRequest(resolved.Model, prompt, resolved.Text)
	if err != nil {
		return "", err
	}

	log := logrus.WithFields(logrus.Fields{
		"request_id": uuid.New().String(),
		"model":      resolved.Model,
		"provider":   resolved.Provider,
		"dialect":    dialect.Name(),
		"endpoint":   loggableEndpoint,
	})
	log.WithFields(logrus.Fields{
		"api_key":    utils.MaskAPIKey(resolved.APIKey),
		"key_source": resolved.KeySource,
		"body_bytes": len(body),
	}).Debug("Sending translation request")

	req := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept-Encoding", "gzip, br, zstd").
		SetBody(body)
	dialect.ApplyAuth(req, resolved.APIKey)

	resp, err := req.Post(endpoint)
	if err != nil {
		log.WithError(err).Debug("Transport failure")
		return "", errors.ClassifyTransport(err, loggableEndpoint)
	}

	respBody := httpclient.DecompressResponse(resp.Header().Get("Content-Encoding"), resp.Body())

	if resp.IsError() {
		message := errors.ParseUpstreamError(respBody)
		log.WithFields(logrus.Fields{
			"status":  resp.StatusCode(),
			"message": message,
		}).Debug("Upstream returned an error")
		return "", errors.ClassifyStatus(resp.StatusCode(), message, loggableEndpoint, resolved.Model)
	}

	result, err := dialect.ParseResponse(respBody)
	if err != nil {
		return "", err
	}

	log.WithField("result_bytes", len(result)).Debug("Translation complete")
	return result, nil
}
