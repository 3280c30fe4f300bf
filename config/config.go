// Package config decodes toml configuration files.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration is a time.Duration that decodes from strings like "1m30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load decodes the toml file at location into cfg and rejects keys that
// cfg doesn't know about.
func Load(location string, cfg interface{}) error {
	md, err := toml.DecodeFile(location, cfg)
	if err != nil {
		return fmt.Errorf("decoding config %s: %w", location, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("decoding config %s: unknown keys %v", location, undecoded)
	}
	return nil
}
