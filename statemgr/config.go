package statemgr

import (
	"fmt"
	"time"

	"github.com/dimitarvdimitrov/planwatch/config"
)

const (
	KindEtcd    = "etcd"
	KindLocalFS = "localfs"
	KindStatic  = "static"
)

type Config struct {
	Kind string `toml:"kind"`
	Root string `toml:"root"`

	// etcd
	Endpoints   []string        `toml:"endpoints"`
	DialTimeout config.Duration `toml:"dial_timeout"`

	// static
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

func (c *Config) Normalize() {
	if c.Kind == "" {
		c.Kind = KindLocalFS
	}
	if c.Root == "" {
		c.Root = "heron"
	}
	if c.DialTimeout.Duration == 0 {
		c.DialTimeout.Duration = 5 * time.Second
	}
}

func (c Config) Validate() error {
	switch c.Kind {
	case KindEtcd:
		if len(c.Endpoints) == 0 {
			return fmt.Errorf("state_manager: etcd needs at least one endpoint")
		}
	case KindLocalFS:
		if c.Root == "" {
			return fmt.Errorf("state_manager: localfs needs a root directory")
		}
	case KindStatic:
		if c.Host == "" || c.Port <= 0 {
			return fmt.Errorf("state_manager: static needs host and port")
		}
	default:
		return fmt.Errorf("state_manager: unknown kind %q", c.Kind)
	}
	return nil
}

// New builds the locator described by cfg. The returned close function
// releases any connection the locator holds.
func New(cfg Config) (Locator, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Kind {
	case KindEtcd:
		l, err := NewEtcdLocator(cfg.Endpoints, cfg.DialTimeout.Duration, cfg.Root)
		if err != nil {
			return nil, noop, err
		}
		return l, l.Close, nil
	case KindLocalFS:
		return NewLocalFSLocator(cfg.Root), noop, nil
	case KindStatic:
		return NewStaticLocator(cfg.Host, cfg.Port), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown state manager %q", cfg.Kind)
	}
}
