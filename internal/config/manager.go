// Package config owns process configuration: defaults, environment
// variables (with optional .env file), and the flag overrides layered on
// top. Flags always win over environment values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"verto/internal/errors"
	"verto/internal/httpclient"
	"verto/internal/i18n"
	"verto/internal/version"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Defaults applied when the environment is silent.
const (
	DefaultLogLevel       = "info"
	DefaultRequestTimeout = 60 * time.Second
	DefaultConnectTimeout = 15 * time.Second
)

// Manager holds the resolved configuration and exposes typed getters.
// Built once per invocation; the Set* overrides are applied right after
// flag parsing, before anything reads the values.
type Manager struct {
	logLevel       string
	requestTimeout time.Duration
	connectTimeout time.Duration
	language       string
}

// NewManager loads the optional .env file and reads the configuration
// from the environment. Invalid values fail construction with a
// ConfigError rather than being silently replaced.
func NewManager() (*Manager, error) {
	if err := godotenv.Load(); err == nil {
		logrus.Debug("Loaded .env file")
	}

	m := &Manager{
		logLevel:       DefaultLogLevel,
		requestTimeout: DefaultRequestTimeout,
		connectTimeout: DefaultConnectTimeout,
		language:       i18n.DetectLanguage(),
	}

	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		m.logLevel = strings.ToLower(level)
	}

	requestTimeout, err := envSeconds("REQUEST_TIMEOUT", DefaultRequestTimeout)
	if err != nil {
		return nil, err
	}
	m.requestTimeout = requestTimeout

	connectTimeout, err := envSeconds("CONNECT_TIMEOUT", DefaultConnectTimeout)
	if err != nil {
		return nil, err
	}
	m.connectTimeout = connectTimeout

	return m, nil
}

// envSeconds reads an environment variable holding a positive number of
// seconds.
func envSeconds(name string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewConfigError(fmt.Sprintf("%s must be a whole number of seconds, got %q", name, raw))
	}
	if seconds <= 0 {
		return 0, errors.NewConfigError(fmt.Sprintf("%s must be positive, got %d", name, seconds))
	}
	return time.Duration(seconds) * time.Second, nil
}

// LogLevel returns the logrus level name.
func (m *Manager) LogLevel() string {
	return m.logLevel
}

// RequestTimeout returns the overall per-request timeout.
func (m *Manager) RequestTimeout() time.Duration {
	return m.requestTimeout
}

// ConnectTimeout returns the dial timeout.
func (m *Manager) ConnectTimeout() time.Duration {
	return m.connectTimeout
}

// Language returns the UI language code for localized output.
func (m *Manager) Language() string {
	return m.language
}

// SetLogLevel overrides the log level, used by --verbose.
func (m *Manager) SetLogLevel(level string) {
	m.logLevel = strings.ToLower(strings.TrimSpace(level))
}

// SetRequestTimeout overrides the request timeout, used by --timeout.
func (m *Manager) SetRequestTimeout(timeout time.Duration) {
	m.requestTimeout = timeout
}

// ClientConfig derives the HTTP client configuration for upstream calls.
func (m *Manager) ClientConfig() *httpclient.Config {
	return &httpclient.Config{
		ConnectTimeout: m.connectTimeout,
		RequestTimeout: m.requestTimeout,
		UserAgent:      version.UserAgent(),
	}
}
