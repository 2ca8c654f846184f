// Package randomcolor generates attractive random colors. A color is drawn
// from a named hue family (the color scheme) and shaped by a luminosity
// profile, using a small hand-tuned table of hue, saturation and brightness
// bounds.
//
// Generators are safe for concurrent use: every draw and every reseed goes
// through one mutex-guarded random source.
package randomcolor

import (
	"image/color"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/irfansharif/randomcolor/internal/bounds"
	"github.com/irfansharif/randomcolor/internal/hue"
	"github.com/irfansharif/randomcolor/internal/palette"
	"github.com/irfansharif/randomcolor/internal/source"
)

// ErrInvalidArgument is returned by GetColorsFor when given a nil options
// slice.
var ErrInvalidArgument = errors.New("invalid argument")

type (
	ColorScheme = hue.ColorScheme
	Luminosity  = hue.Luminosity
	HSV         = palette.HSV

	// Source draws uniform integers in [lower, upper]. Implementations that
	// also provide Seed(int64) can be reseeded through Generator.Seed.
	Source = source.Source
)

const (
	Monochrome = hue.Monochrome
	Red        = hue.Red
	Orange     = hue.Orange
	Yellow     = hue.Yellow
	Green      = hue.Green
	Blue       = hue.Blue
	Purple     = hue.Purple
	Pink       = hue.Pink
	Random     = hue.Random

	Bright           = hue.Bright
	Dark             = hue.Dark
	Light            = hue.Light
	RandomLuminosity = hue.RandomLuminosity
)

var (
	ErrUnknownScheme     = hue.ErrUnknownScheme
	ErrUnknownLuminosity = hue.ErrUnknownLuminosity
)

// ParseColorScheme resolves a case-insensitive scheme name such as "blue".
func ParseColorScheme(name string) (ColorScheme, error) { return hue.ParseColorScheme(name) }

// ParseLuminosity resolves a case-insensitive luminosity name such as "dark".
func ParseLuminosity(name string) (Luminosity, error) { return hue.ParseLuminosity(name) }

// Options pairs a scheme with a luminosity for GetColorsFor.
type Options struct {
	Scheme     ColorScheme
	Luminosity Luminosity
}

// Generator produces colors from a shared random source.
type Generator struct {
	src     source.Source
	seeder  source.Seeder // nil when the injected source cannot be reseeded
	table   *bounds.Table
	logger  *zap.Logger
	sampler *palette.Sampler
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource injects the random source. If it also implements Seed(int64),
// Generator.Seed reseeds it.
func WithSource(src Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithSeed uses a fresh locked source started from seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.src = source.NewLocked(seed) }
}

func withTable(t *bounds.Table) Option {
	return func(g *Generator) { g.table = t }
}

// WithLogger sets the logger draws are reported to at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New returns a generator. Without options it uses the built-in bounds table
// and a clock-seeded source.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = source.NewLockedNow()
	}
	if g.table == nil {
		g.table = bounds.Default()
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	g.seeder, _ = g.src.(source.Seeder)
	g.sampler = palette.NewSampler(g.table, g.src, g.logger)
	return g
}

// GetHSV draws a hue, saturation and brightness without converting them.
func (g *Generator) GetHSV(scheme ColorScheme, lum Luminosity) HSV {
	return g.sampler.Pick(scheme, lum)
}

// GetColor draws a single opaque color.
func (g *Generator) GetColor(scheme ColorScheme, lum Luminosity) color.RGBA {
	return g.sampler.Pick(scheme, lum).RGBA()
}

// GetColors draws count independent colors. Duplicates are possible.
func (g *Generator) GetColors(scheme ColorScheme, lum Luminosity, count int) []color.RGBA {
	if count < 0 {
		count = 0
	}
	out := make([]color.RGBA, count)
	for i := range out {
		out[i] = g.GetColor(scheme, lum)
	}
	return out
}

// GetColorsFor draws one color per options entry, in order. A nil slice is
// rejected; an empty one yields an empty result.
func (g *Generator) GetColorsFor(opts []Options) ([]color.RGBA, error) {
	if opts == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil options")
	}
	out := make([]color.RGBA, len(opts))
	for i, o := range opts {
		out[i] = g.GetColor(o.Scheme, o.Luminosity)
	}
	return out, nil
}

// Seed restarts the random source from seed. It is a no-op for injected
// sources that cannot be reseeded.
func (g *Generator) Seed(seed int64) {
	if g.seeder == nil {
		g.logger.Warn("source cannot be reseeded", zap.Int64("seed", seed))
		return
	}
	g.seeder.Seed(seed)
	g.logger.Debug("reseeded", zap.Int64("seed", seed))
}

// SeedNow restarts the random source from the wall clock.
func (g *Generator) SeedNow() { g.Seed(time.Now().UnixNano()) }

// Process-wide generator backing the package-level functions.
var std = New()

// GetColor draws a color from the process-wide generator.
func GetColor(scheme ColorScheme, lum Luminosity) color.RGBA { return std.GetColor(scheme, lum) }

// GetColors draws count colors from the process-wide generator.
func GetColors(scheme ColorScheme, lum Luminosity, count int) []color.RGBA {
	return std.GetColors(scheme, lum, count)
}

// GetColorsFor draws one color per options entry from the process-wide
// generator.
func GetColorsFor(opts []Options) ([]color.RGBA, error) { return std.GetColorsFor(opts) }

// Seed reseeds the process-wide generator.
func Seed(seed int64) { std.Seed(seed) }

// SeedNow reseeds the process-wide generator from the wall clock.
func SeedNow() { std.SeedNow() }
