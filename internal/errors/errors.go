// Package errors defines the structured error type returned by every
// failure path, plus the parsing, classification, and rendering that turn
// provider failures into actionable messages. Errors capture their full
// context at the point of detection and are rendered exactly once, at the
// top level.
package errors

import (
	stderrors "errors"
	"fmt"

	"verto/internal/registry"
	"verto/internal/utils"
)

// Kind is the top-level error category.
type Kind string

const (
	KindValidation     Kind = "VALIDATION_ERROR"
	KindConfig         Kind = "CONFIG_ERROR"
	KindAuthentication Kind = "AUTHENTICATION_ERROR"
	KindModelNotFound  Kind = "MODEL_NOT_FOUND"
	KindAPICall        Kind = "API_CALL_FAILED"
	KindNetwork        Kind = "NETWORK_ERROR"
	KindEmptyResult    Kind = "EMPTY_RESULT"
)

// Codes refine a Kind into the specific failure the renderer acts on.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeEnvVarUndetermined = "ENV_VAR_UNDETERMINED"
	CodeConfigInvalid      = "CONFIG_INVALID"
	CodeEnvVarNotSet       = "ENV_VAR_NOT_SET"
	CodeEnvVarEmpty        = "ENV_VAR_EMPTY"
	CodeAuthRejected       = "AUTH_REJECTED"
	CodeModelNotFound      = "MODEL_NOT_FOUND"
	CodeRateLimited        = "RATE_LIMITED"
	CodeEndpointNotFound   = "ENDPOINT_NOT_FOUND"
	CodeUpstreamError      = "UPSTREAM_ERROR"
	CodeNetworkTimeout     = "NETWORK_TIMEOUT"
	CodeNetworkConnect     = "NETWORK_CONNECT"
	CodeNetworkOther       = "NETWORK_ERROR"
	CodeNoChoices          = "NO_CHOICES"
	CodeEmptyChoices       = "EMPTY_CHOICES"
)

// TranslationError carries everything the renderer needs: the category,
// the specific code, and the context gathered where the failure was
// detected. Message fields are sanitized on construction so raw
// credentials can never reach a log line or the terminal.
type TranslationError struct {
	Kind          Kind
	Code          string
	Model         string
	Field         string
	EnvVar        string
	Provider      string
	CredentialURL string
	Endpoint      string
	StatusCode    int
	Groups        []registry.ProviderGroup
	Message       string
	Err           error
}

// Error renders the technical detail line. Remediation and hints are the
// renderer's job.
func (e *TranslationError) Error() string {
	switch e.Code {
	case CodeInvalidInput:
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	case CodeEnvVarUndetermined:
		return fmt.Sprintf("cannot determine the API key environment variable for model %q", e.Model)
	case CodeConfigInvalid:
		return e.Message
	case CodeEnvVarNotSet:
		return fmt.Sprintf("environment variable %s is not set", e.EnvVar)
	case CodeEnvVarEmpty:
		return fmt.Sprintf("environment variable %s is set but empty", e.EnvVar)
	case CodeAuthRejected:
		if e.Message != "" {
			return fmt.Sprintf("authentication rejected (HTTP %d): %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("authentication rejected (HTTP %d)", e.StatusCode)
	case CodeModelNotFound:
		if e.StatusCode != 0 {
			return fmt.Sprintf("model %q was rejected by the endpoint (HTTP %d): %s", e.Model, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("model %q is not supported", e.Model)
	case CodeRateLimited:
		if e.Message != "" {
			return fmt.Sprintf("rate limited (HTTP %d): %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("rate limited (HTTP %d)", e.StatusCode)
	case CodeEndpointNotFound:
		if e.Message != "" {
			return fmt.Sprintf("endpoint not found (HTTP 404): %s", e.Message)
		}
		return "endpoint not found (HTTP 404)"
	case CodeUpstreamError:
		if e.Message != "" {
			return fmt.Sprintf("API call failed (HTTP %d): %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("API call failed (HTTP %d)", e.StatusCode)
	case CodeNetworkTimeout:
		return fmt.Sprintf("request timed out: %v", e.Err)
	case CodeNetworkConnect:
		return fmt.Sprintf("connection failed: %v", e.Err)
	case CodeNetworkOther:
		return fmt.Sprintf("network error: %v", e.Err)
	case CodeNoChoices:
		return "the response contained no choices"
	case CodeEmptyChoices:
		return "the response choices were all empty"
	}
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *TranslationError) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or an empty Kind for foreign errors.
func KindOf(err error) Kind {
	var te *TranslationError
	if stderrors.As(err, &te) {
		return te.Kind
	}
	return ""
}

// HasCode reports whether err is a TranslationError with the given code.
func HasCode(err error, code string) bool {
	var te *TranslationError
	return stderrors.As(err, &te) && te.Code == code
}

// NewValidationError reports rejected user input. field names the input,
// reason says what was expected.
func NewValidationError(field, reason string) *TranslationError {
	return &TranslationError{
		Kind:    KindValidation,
		Code:    CodeInvalidInput,
		Field:   field,
		Message: reason,
	}
}

// NewEnvVarUndetermined reports a model whose provider has no known
// credential environment variable.
func NewEnvVarUndetermined(model string) *TranslationError {
	return &TranslationError{
		Kind:  KindConfig,
		Code:  CodeEnvVarUndetermined,
		Model: model,
	}
}

// NewConfigError reports invalid configuration outside the credential
// path, such as an unparseable timeout value.
func NewConfigError(message string) *TranslationError {
	return &TranslationError{
		Kind:    KindConfig,
		Code:    CodeConfigInvalid,
		Message: message,
	}
}

// NewAuthMissing reports a credential environment variable that is not set
// at all.
func NewAuthMissing(envVar, provider, model string) *TranslationError {
	return &TranslationError{
		Kind:          KindAuthentication,
		Code:          CodeEnvVarNotSet,
		EnvVar:        envVar,
		Provider:      provider,
		Model:         model,
		CredentialURL: registry.CredentialURL(provider),
	}
}

// NewAuthEmpty reports a credential environment variable that is set but
// blank. Kept distinct from the unset case so the message can say which
// one happened.
func NewAuthEmpty(envVar, provider, model string) *TranslationError {
	return &TranslationError{
		Kind:          KindAuthentication,
		Code:          CodeEnvVarEmpty,
		EnvVar:        envVar,
		Provider:      provider,
		Model:         model,
		CredentialURL: registry.CredentialURL(provider),
	}
}

// NewAuthRejected reports credentials the provider refused.
func NewAuthRejected(model, endpoint string, status int, message string) *TranslationError {
	return &TranslationError{
		Kind:       KindAuthentication,
		Code:       CodeAuthRejected,
		Model:      model,
		Endpoint:   endpoint,
		StatusCode: status,
		Message:    sanitize(message),
	}
}

// NewModelNotFound reports an unregistered model, carrying the full
// grouped listing so the renderer can show every alternative.
func NewModelNotFound(model string, groups []registry.ProviderGroup) *TranslationError {
	return &TranslationError{
		Kind:   KindModelNotFound,
		Code:   CodeModelNotFound,
		Model:  model,
		Groups: groups,
	}
}

// NewModelRejected reports a model the endpoint itself turned away.
func NewModelRejected(model, endpoint string, status int, message string, groups []registry.ProviderGroup) *TranslationError {
	return &TranslationError{
		Kind:       KindModelNotFound,
		Code:       CodeModelNotFound,
		Model:      model,
		Endpoint:   endpoint,
		StatusCode: status,
		Message:    sanitize(message),
		Groups:     groups,
	}
}

// NewRateLimited reports provider throttling.
func NewRateLimited(endpoint string, status int, message string) *TranslationError {
	return &TranslationError{
		Kind:       KindAPICall,
		Code:       CodeRateLimited,
		Endpoint:   endpoint,
		StatusCode: status,
		Message:    sanitize(message),
	}
}

// NewEndpointNotFound reports a 404 that is about the URL, not the model.
func NewEndpointNotFound(endpoint, message string) *TranslationError {
	return &TranslationError{
		Kind:       KindAPICall,
		Code:       CodeEndpointNotFound,
		Endpoint:   endpoint,
		StatusCode: 404,
		Message:    sanitize(message),
	}
}

// NewAPICallFailed reports any other non-2xx response.
func NewAPICallFailed(endpoint string, status int, message string) *TranslationError {
	return &TranslationError{
		Kind:       KindAPICall,
		Code:       CodeUpstreamError,
		Endpoint:   endpoint,
		StatusCode: status,
		Message:    sanitize(message),
	}
}

// NewNetworkError reports a transport failure. code must be one of the
// network codes.
func NewNetworkError(code, endpoint string, err error) *TranslationError {
	return &TranslationError{
		Kind:     KindNetwork,
		Code:     code,
		Endpoint: endpoint,
		Err:      err,
	}
}

// NewEmptyResult reports a well-formed response with nothing usable in it.
// code is CodeNoChoices or CodeEmptyChoices.
func NewEmptyResult(code, endpoint string) *TranslationError {
	return &TranslationError{
		Kind:     KindEmptyResult,
		Code:     code,
		Endpoint: endpoint,
	}
}

func sanitize(message string) string {
	return utils.SanitizeErrorBody(message)
}
