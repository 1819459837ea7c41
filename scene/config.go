package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// ParamsCfg overrides individual startup parameters. Omitted keys keep
// their DefaultParams value.
type ParamsCfg struct {
	RotX        *float64 `json:"rotX,omitempty"`
	RotY        *float64 `json:"rotY,omitempty"`
	RotZ        *float64 `json:"rotZ,omitempty"`
	TransX      *float64 `json:"transX,omitempty"`
	TransY      *float64 `json:"transY,omitempty"`
	TransZ      *float64 `json:"transZ,omitempty"`
	Scale       *float64 `json:"scale,omitempty"`
	Perspective *float64 `json:"persp,omitempty"`
}

type Config struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Side       float64   `json:"side"`
	AutoRotate bool      `json:"autoRotate,omitempty"`
	Params     ParamsCfg `json:"params"`
}

// DefaultConfig is used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Width:  600,
		Height: 600,
		Side:   DefaultSide,
	}
}

// LoadConfig reads a JSON config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a surface cannot work with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Side <= 0 {
		return fmt.Errorf("invalid cube side %g", c.Side)
	}
	return nil
}

// Override sets one startup parameter, the same as the matching key under
// "params" in a config file.
func (c *Config) Override(id ParamID, v float64) {
	if !id.valid() {
		return
	}
	fields := [NumParams]**float64{
		&c.Params.RotX, &c.Params.RotY, &c.Params.RotZ,
		&c.Params.TransX, &c.Params.TransY, &c.Params.TransZ,
		&c.Params.Scale, &c.Params.Perspective,
	}
	*fields[id] = &v
}

// StartParams applies the overrides to DefaultParams.
func (c Config) StartParams() Params {
	p := DefaultParams()
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.RotX, c.Params.RotX)
	set(&p.RotY, c.Params.RotY)
	set(&p.RotZ, c.Params.RotZ)
	set(&p.TransX, c.Params.TransX)
	set(&p.TransY, c.Params.TransY)
	set(&p.TransZ, c.Params.TransZ)
	set(&p.Scale, c.Params.Scale)
	set(&p.Perspective, c.Params.Perspective)
	return p
}
