package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/philipparndt/goendo/internal/navigation"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesNavigationDefaults(t *testing.T) {
	conf := Default()
	require.True(t, conf.Collision)
	require.NoError(t, conf.Validate())
	require.Equal(t, navigation.DefaultSettings(), conf.Navigation())
}

func TestLoadMissingFile(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.Equal(t, Default(), conf)

	conf, err = Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), conf)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goendo.json")
	err := os.WriteFile(path, []byte(`{"collision": false, "forward_factor": 4, "log_level": "debug"}`), 0644)
	require.NoError(t, err)

	conf, err := Load(path)
	require.NoError(t, err)
	require.False(t, conf.Collision)
	require.Equal(t, 4.0, conf.ForwardFactor)
	require.Equal(t, "debug", conf.LogLevel)
	require.Equal(t, navigation.BackwardDollyFactor, conf.BackwardFactor)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goendo.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"collision": `), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goendo.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"near_clip": 10, "far_clip": 5}`), 0644))

	_, err := Load(path)
	require.Equal(t, ErrTypeInvalid, errors.Type(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero forward factor", func(c *Config) { c.ForwardFactor = 0 }},
		{"negative radius", func(c *Config) { c.ProxyRadius = -1 }},
		{"low resolution", func(c *Config) { c.ProxyPhiResolution = 2 }},
		{"inverted clipping", func(c *Config) { c.FarClip = c.NearClip }},
		{"NaN forward factor", func(c *Config) { c.ForwardFactor = math.NaN() }},
		{"NaN far clip", func(c *Config) { c.FarClip = math.NaN() }},
		{"zero rotation step", func(c *Config) { c.RotationStep = 0 }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			conf := Default()
			test.modify(&conf)
			require.Equal(t, ErrTypeInvalid, errors.Type(conf.Validate()))
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "goendo.json")
	conf := Default()
	conf.ProxyRadius = 0.5
	conf.MetricsAddr = ":9100"

	require.NoError(t, Save(path, conf))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, conf, loaded)
}

func TestProxy(t *testing.T) {
	conf := Default()
	conf.ProxyRadius = 2
	proxy := conf.Proxy()
	require.Equal(t, 2.0, proxy.Radius())
	require.InDelta(t, 4, proxy.Output().BoundingBox().Size().Z, 1e-9)
}
