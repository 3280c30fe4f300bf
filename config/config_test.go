package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string   `toml:"name"`
	Timeout Duration `toml:"timeout"`
}

func writeConfig(t *testing.T, contents string) string {
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, ioutil.WriteFile(file, []byte(contents), 0644))
	return file
}

func TestLoad(t *testing.T) {
	file := writeConfig(t, "name = \"wordcount\"\ntimeout = \"1m30s\"\n")

	var cfg testConfig
	require.NoError(t, Load(file, &cfg))
	assert.Equal(t, "wordcount", cfg.Name)
	assert.Equal(t, 90*time.Second, cfg.Timeout.Duration)
}

func TestLoadBadDuration(t *testing.T) {
	file := writeConfig(t, "timeout = \"soon\"\n")

	var cfg testConfig
	assert.Error(t, Load(file, &cfg))
}

func TestLoadUnknownKey(t *testing.T) {
	file := writeConfig(t, "name = \"wordcount\"\nmount_point = \"/mnt\"\n")

	var cfg testConfig
	err := Load(file, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mount_point")
}

func TestLoadMissingFile(t *testing.T) {
	var cfg testConfig
	assert.Error(t, Load(filepath.Join(t.TempDir(), "nope.toml"), &cfg))
}

func TestDurationMarshalText(t *testing.T) {
	text, err := Duration{Duration: 5 * time.Second}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "5s", string(text))
}
