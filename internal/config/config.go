// Package config holds the runtime configuration of the viewer and the
// navigation controller.
package config

import (
	"os"
	"path/filepath"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/philipparndt/goendo/internal/navigation"
	"github.com/philipparndt/goendo/pkg/collision"
	"github.com/segmentio/encoding/json"
)

// ErrTypeInvalid is the error type of a configuration that fails validation
const ErrTypeInvalid = "config-invalid"

// Config is persisted as JSON. Fields missing from the file keep their defaults.
type Config struct {
	Collision            bool    `json:"collision"`
	ProbeHalfWidth       float64 `json:"probe_half_width"`
	ProxyRadius          float64 `json:"proxy_radius"`
	ProxyThetaResolution int     `json:"proxy_theta_resolution"`
	ProxyPhiResolution   int     `json:"proxy_phi_resolution"`
	ForwardFactor        float64 `json:"forward_factor"`
	BackwardFactor       float64 `json:"backward_factor"`
	ForwardCorrection    float64 `json:"forward_correction"`
	BackwardCorrection   float64 `json:"backward_correction"`
	RotationStep         float64 `json:"rotation_step"`
	FocalDistance        float64 `json:"focal_distance"`
	NearClip             float64 `json:"near_clip"`
	FarClip              float64 `json:"far_clip"`
	LogLevel             string  `json:"log_level"`
	WindowWidth          int     `json:"window_width"`
	WindowHeight         int     `json:"window_height"`
	MetricsAddr          string  `json:"metrics_addr,omitempty"`
}

// Default returns the stock configuration: collision on, unit-sized probe.
func Default() Config {
	return Config{
		Collision:            true,
		ProbeHalfWidth:       navigation.ProbeHalfWidth,
		ProxyRadius:          collision.DefaultSphereRadius,
		ProxyThetaResolution: collision.DefaultThetaResolution,
		ProxyPhiResolution:   collision.DefaultPhiResolution,
		ForwardFactor:        navigation.ForwardDollyFactor,
		BackwardFactor:       navigation.BackwardDollyFactor,
		ForwardCorrection:    navigation.ForwardCorrectionFactor,
		BackwardCorrection:   navigation.BackwardCorrectionFactor,
		RotationStep:         navigation.RotationStep,
		FocalDistance:        navigation.FocalDistance,
		NearClip:             navigation.NearClip,
		FarClip:              navigation.FarClip,
		LogLevel:             logs.InfoLevel.String(),
		WindowWidth:          1400,
		WindowHeight:         900,
	}
}

// Load reads the configuration at path on top of the defaults. An empty path
// or a missing file yields the defaults.
func Load(path string) (Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logs.WithTag("path", path).Debug("config file not found, using defaults")
		return conf, nil
	}
	if err != nil {
		return conf, errors.New("reading config failed").
			WithTag("path", path).
			Wrap(err)
	}

	if err := json.Unmarshal(data, &conf); err != nil {
		return Default(), errors.New("decoding config failed").
			WithTag("path", path).
			Wrap(err)
	}
	return conf, conf.Validate()
}

// Save writes conf to path, creating the parent directory if needed
func Save(path string, conf Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New("creating config directory failed").Wrap(err)
	}
	data, err := json.MarshalIndent(conf, "", "\t")
	if err != nil {
		return errors.New("encoding config failed").Wrap(err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the controller cannot work with
func (c Config) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"probe_half_width", c.ProbeHalfWidth},
		{"proxy_radius", c.ProxyRadius},
		{"forward_factor", c.ForwardFactor},
		{"backward_factor", c.BackwardFactor},
		{"forward_correction", c.ForwardCorrection},
		{"backward_correction", c.BackwardCorrection},
		{"focal_distance", c.FocalDistance},
		{"near_clip", c.NearClip},
		{"rotation_step", c.RotationStep},
	}
	for _, p := range positives {
		if !(p.value > 0) {
			return errors.New("value must be positive").
				WithType(ErrTypeInvalid).
				WithTag("field", p.name).
				WithTag("value", p.value)
		}
	}

	if !(c.FarClip > c.NearClip) {
		return errors.New("far clip must be beyond near clip").
			WithType(ErrTypeInvalid).
			WithTag("near_clip", c.NearClip).
			WithTag("far_clip", c.FarClip)
	}
	if c.ProxyThetaResolution < 3 || c.ProxyPhiResolution < 3 {
		return errors.New("proxy resolution must be at least 3").
			WithType(ErrTypeInvalid).
			WithTag("theta", c.ProxyThetaResolution).
			WithTag("phi", c.ProxyPhiResolution)
	}
	return nil
}

// Navigation returns the controller settings described by c
func (c Config) Navigation() navigation.Settings {
	return navigation.Settings{
		ForwardFactor:      c.ForwardFactor,
		BackwardFactor:     c.BackwardFactor,
		ForwardCorrection:  c.ForwardCorrection,
		BackwardCorrection: c.BackwardCorrection,
		RotationStep:       c.RotationStep,
		ProbeHalfWidth:     c.ProbeHalfWidth,
		FocalDistance:      c.FocalDistance,
		NearClip:           c.NearClip,
		FarClip:            c.FarClip,
	}
}

// Proxy builds the bounding sphere described by c
func (c Config) Proxy() *collision.SphereSource {
	proxy := collision.NewSphereSource()
	proxy.SetRadius(c.ProxyRadius)
	proxy.SetResolution(c.ProxyThetaResolution, c.ProxyPhiResolution)
	return proxy
}
