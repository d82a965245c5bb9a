package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/aalvaropc/byobox/internal/domain"
)

type Config struct {
	// Timeout bounds a whole submission. A context deadline can still cut it short.
	Timeout time.Duration

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConnsPerHost int

	// Jar keeps the storefront cart cookie between requests when set.
	Jar http.CookieJar
}

func DefaultConfig() Config {
	return Config{
		Timeout:             30 * time.Second,
		DialTimeout:         5 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        5 * time.Second,
		ResponseHeader:      15 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 4,
	}
}

// ConfigFromStore derives client settings from the workspace store section.
func ConfigFromStore(s domain.StoreConfig) Config {
	cfg := DefaultConfig()
	if s.Timeout > 0 {
		cfg.Timeout = s.Timeout
		if cfg.ResponseHeader > s.Timeout {
			cfg.ResponseHeader = s.Timeout
		}
	}
	return cfg
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
		Jar:       cfg.Jar,
	}
}
