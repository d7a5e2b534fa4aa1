// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpulist

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/vshapes/layout"
)

// Config is the file form of the list options.
//
//	label = "discs"
//	force_uniform = false
//	max_binding_size = 65536
type Config struct {
	// Label is the debug label of the list's GPU buffers.
	Label string `toml:"label"`

	// ForceUniform selects the uniform fallback regardless of the device.
	ForceUniform bool `toml:"force_uniform"`

	// MaxBindingSize overrides MaxReasonableUniformBindingSize. Zero keeps
	// the default.
	MaxBindingSize uint64 `toml:"max_binding_size"`
}

// ParseConfig decodes a TOML config and validates it.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("gpulist: parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gpulist: read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports whether the config can produce a usable list.
func (c Config) Validate() error {
	if c.MaxBindingSize != 0 && c.MaxBindingSize < layout.UniformArrayAlign {
		return fmt.Errorf("%w: max_binding_size %d is below %d bytes",
			ErrInvalidConfig, c.MaxBindingSize, layout.UniformArrayAlign)
	}
	return nil
}

// Options converts the config into list options.
func (c Config) Options() []Option {
	var opts []Option
	if c.Label != "" {
		opts = append(opts, WithLabel(c.Label))
	}
	if c.ForceUniform {
		opts = append(opts, WithForceUniform(true))
	}
	if c.MaxBindingSize != 0 {
		opts = append(opts, WithBindingSizeCap(c.MaxBindingSize))
	}
	return opts
}
