// Package config loads settings for the randomcolor command from a TOML or
// YAML file overlaid on defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/irfansharif/randomcolor/internal/hue"
)

const (
	minCount = 1
	maxCount = 10000
)

// Output formats.
const (
	FormatHex = "hex"
	FormatRGB = "rgb"
	FormatHSV = "hsv"
)

type Config struct {
	Scheme     string `toml:"scheme" yaml:"scheme"`
	Luminosity string `toml:"luminosity" yaml:"luminosity"`
	Count      int    `toml:"count" yaml:"count"`
	// Format is one of hex, rgb or hsv.
	Format string `toml:"format" yaml:"format"`
	// Seed is nil when the generator should seed from the clock.
	Seed *int64 `toml:"seed" yaml:"seed"`
	// Colors lists explicit per-color options and overrides Count.
	Colors []Entry `toml:"colors" yaml:"colors"`
}

// Entry is one explicitly requested color.
type Entry struct {
	Scheme     string `toml:"scheme" yaml:"scheme"`
	Luminosity string `toml:"luminosity" yaml:"luminosity"`
}

// Request is a resolved (scheme, luminosity) pair.
type Request struct {
	Scheme     hue.ColorScheme
	Luminosity hue.Luminosity
}

func Defaults() *Config {
	return &Config{
		Scheme:     "random",
		Luminosity: "bright",
		Count:      1,
		Format:     FormatHex,
	}
}

// Load overlays the file at path onto the defaults. An empty path yields the
// defaults. The decoder is chosen by extension: .yaml and .yml use YAML,
// anything else TOML.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return Defaults(), errors.Wrap(err, "parse yaml config")
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return Defaults(), errors.Wrap(err, "parse toml config")
		}
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps and defaults values after decoding or flag overrides.
func (c *Config) Normalize() {
	c.Count = clampInt(c.Count, minCount, maxCount, 1)
	c.Format = strings.ToLower(c.Format)
	if !validFormat(c.Format) {
		c.Format = FormatHex
	}
	if c.Scheme == "" {
		c.Scheme = "random"
	}
	if c.Luminosity == "" {
		c.Luminosity = "bright"
	}
}

// Requests resolves the configured colors. Explicit entries take precedence
// over the scheme/luminosity/count triple. Entries that leave a field blank
// inherit the top-level value.
func (c *Config) Requests() ([]Request, error) {
	scheme, err := hue.ParseColorScheme(c.Scheme)
	if err != nil {
		return nil, err
	}
	lum, err := hue.ParseLuminosity(c.Luminosity)
	if err != nil {
		return nil, err
	}
	if len(c.Colors) == 0 {
		out := make([]Request, c.Count)
		for i := range out {
			out[i] = Request{Scheme: scheme, Luminosity: lum}
		}
		return out, nil
	}

	out := make([]Request, 0, len(c.Colors))
	for i, e := range c.Colors {
		r := Request{Scheme: scheme, Luminosity: lum}
		if e.Scheme != "" {
			if r.Scheme, err = hue.ParseColorScheme(e.Scheme); err != nil {
				return nil, errors.Wrapf(err, "colors[%d]", i)
			}
		}
		if e.Luminosity != "" {
			if r.Luminosity, err = hue.ParseLuminosity(e.Luminosity); err != nil {
				return nil, errors.Wrapf(err, "colors[%d]", i)
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func clampInt(val, min, max, fallback int) int {
	if val == 0 && fallback != 0 {
		val = fallback
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func validFormat(f string) bool {
	switch f {
	case FormatHex, FormatRGB, FormatHSV:
		return true
	}
	return false
}
