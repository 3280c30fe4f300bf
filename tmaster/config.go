package tmaster

import (
	"fmt"
	"strings"
	"time"

	"github.com/dimitarvdimitrov/planwatch/config"
)

const (
	DefaultQueryPath        = "/get_current_physical_plan"
	defaultRequestTimeout   = 10 * time.Second
	defaultMaxResponseBytes = 64 << 20
	defaultDNSRefresh       = 5 * time.Minute
)

type Config struct {
	QueryPath        string          `toml:"query_path"`
	RequestTimeout   config.Duration `toml:"request_timeout"`
	MaxResponseBytes int64           `toml:"max_response_bytes"`

	// DNSCache makes the http client resolve master host names through a
	// cache that is refreshed every DNSRefresh.
	DNSCache   bool            `toml:"dns_cache"`
	DNSRefresh config.Duration `toml:"dns_refresh"`
}

func (c *Config) Normalize() {
	if c.QueryPath == "" {
		c.QueryPath = DefaultQueryPath
	}
	if !strings.HasPrefix(c.QueryPath, "/") {
		c.QueryPath = "/" + c.QueryPath
	}
	if c.RequestTimeout.Duration == 0 {
		c.RequestTimeout.Duration = defaultRequestTimeout
	}
	if c.MaxResponseBytes == 0 {
		c.MaxResponseBytes = defaultMaxResponseBytes
	}
	if c.DNSRefresh.Duration == 0 {
		c.DNSRefresh.Duration = defaultDNSRefresh
	}
}

func (c Config) Validate() error {
	if c.RequestTimeout.Duration < 0 {
		return fmt.Errorf("tmaster: negative request_timeout")
	}
	if c.MaxResponseBytes < 0 {
		return fmt.Errorf("tmaster: negative max_response_bytes")
	}
	if c.DNSRefresh.Duration <= 0 {
		return fmt.Errorf("tmaster: dns_refresh must be positive")
	}
	return nil
}
