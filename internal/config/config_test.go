package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/randomcolor/internal/config"
	"github.com/irfansharif/randomcolor/internal/hue"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)

	reqs, err := cfg.Requests()
	require.NoError(t, err)
	assert.Equal(t, []config.Request{{Scheme: hue.Random, Luminosity: hue.Bright}}, reqs)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "randomcolor.toml", `
scheme = "blue"
luminosity = "light"
count = 3
format = "RGB"
seed = 42
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "blue", cfg.Scheme)
	assert.Equal(t, "light", cfg.Luminosity)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, config.FormatRGB, cfg.Format)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)

	reqs, err := cfg.Requests()
	require.NoError(t, err)
	require.Len(t, reqs, 3)
	for _, r := range reqs {
		assert.Equal(t, config.Request{Scheme: hue.Blue, Luminosity: hue.Light}, r)
	}
}

func TestLoadTOMLColors(t *testing.T) {
	path := writeFile(t, "randomcolor.toml", `
luminosity = "dark"

[[colors]]
scheme = "red"

[[colors]]
scheme = "pink"
luminosity = "bright"

[[colors]]
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	reqs, err := cfg.Requests()
	require.NoError(t, err)
	assert.Equal(t, []config.Request{
		{Scheme: hue.Red, Luminosity: hue.Dark},
		{Scheme: hue.Pink, Luminosity: hue.Bright},
		{Scheme: hue.Random, Luminosity: hue.Dark},
	}, reqs)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "randomcolor.yaml", `
scheme: green
count: 2
format: hsv
colors:
  - scheme: monochrome
    luminosity: random
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.FormatHSV, cfg.Format)
	assert.Nil(t, cfg.Seed)

	reqs, err := cfg.Requests()
	require.NoError(t, err)
	assert.Equal(t, []config.Request{{Scheme: hue.Monochrome, Luminosity: hue.RandomLuminosity}}, reqs)
}

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		count, wantCount int
		format, wantFmt  string
	}{
		{0, 1, "", config.FormatHex},
		{-5, 1, "css", config.FormatHex},
		{20000, 10000, "Hex", config.FormatHex},
		{7, 7, "hsv", config.FormatHSV},
	} {
		cfg := &config.Config{Count: tc.count, Format: tc.format}
		cfg.Normalize()
		assert.Equal(t, tc.wantCount, cfg.Count)
		assert.Equal(t, tc.wantFmt, cfg.Format)
		assert.Equal(t, "random", cfg.Scheme)
		assert.Equal(t, "bright", cfg.Luminosity)
	}
}

func TestLoadErrors(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	assert.Equal(t, config.Defaults(), cfg)

	path := writeFile(t, "bad.toml", "count = [")
	cfg, err = config.Load(path)
	assert.Error(t, err)
	assert.Equal(t, config.Defaults(), cfg)

	path = writeFile(t, "bad.yml", "count: [1, 2")
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestRequestsUnknownNames(t *testing.T) {
	cfg := config.Defaults()
	cfg.Scheme = "teal"
	_, err := cfg.Requests()
	assert.ErrorIs(t, err, hue.ErrUnknownScheme)

	cfg = config.Defaults()
	cfg.Colors = []config.Entry{{Luminosity: "dim"}}
	_, err = cfg.Requests()
	assert.ErrorIs(t, err, hue.ErrUnknownLuminosity)
	assert.Contains(t, err.Error(), "colors[0]")
}
