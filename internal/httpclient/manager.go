// Package httpclient builds and caches the HTTP clients used to reach
// translation endpoints, and decompresses their response bodies.
package httpclient

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const maxRedirects = 10

// Config defines the parameters for creating a client. It doubles as the
// cache key: configs with the same fingerprint share a client.
type Config struct {
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	UserAgent      string
}

// fingerprint generates a unique string representation of the config.
func (c *Config) fingerprint() string {
	return fmt.Sprintf("ct:%.0fs|rt:%.0fs|ua:%s",
		c.ConnectTimeout.Seconds(),
		c.RequestTimeout.Seconds(),
		c.UserAgent,
	)
}

// Manager creates and caches resty clients by configuration fingerprint.
type Manager struct {
	clients map[string]*resty.Client
	lock    sync.RWMutex
}

// NewManager creates an empty client cache.
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*resty.Client),
	}
}

// GetClient returns a client matching the configuration, creating and
// caching it on first use.
func (m *Manager) GetClient(config *Config) *resty.Client {
	fingerprint := config.fingerprint()

	m.lock.RLock()
	client, exists := m.clients[fingerprint]
	m.lock.RUnlock()
	if exists {
		return client
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	// Double-check in case another goroutine created the client while we
	// were waiting for the lock.
	if client, exists = m.clients[fingerprint]; exists {
		return client
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   config.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		Proxy:                 http.ProxyFromEnvironment,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   2,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	client = resty.NewWithClient(&http.Client{
		Transport: transport,
		Timeout:   config.RequestTimeout,
	})
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))
	if config.UserAgent != "" {
		client.SetHeader("User-Agent", config.UserAgent)
	}

	m.clients[fingerprint] = client

	logrus.WithFields(logrus.Fields{
		"fingerprint": fingerprint,
		"timeout":     config.RequestTimeout,
	}).Debug("Created new HTTP client")

	return client
}

// CloseIdleConnections releases pooled connections for all cached clients.
func (m *Manager) CloseIdleConnections() {
	m.lock.RLock()
	defer m.lock.RUnlock()

	for _, client := range m.clients {
		client.GetClient().CloseIdleConnections()
	}
}
