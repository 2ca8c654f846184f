package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/irfansharif/randomcolor"
	"github.com/irfansharif/randomcolor/internal/config"
)

var (
	configPath = flag.String("config", "", "path to a TOML or YAML config file")
	scheme     = flag.String("scheme", "", "color scheme: monochrome, red, orange, yellow, green, blue, purple, pink, random")
	luminosity = flag.String("luminosity", "", "luminosity: bright, dark, light, random")
	count      = flag.Int("count", 0, "number of colors to generate")
	format     = flag.String("format", "", "output format: hex, rgb, hsv")
	seedFlag   = flag.String("seed", "", "seed for the random source (default $RANDOMCOLOR_SEED, then the clock)")
)

func newLogger() *zap.Logger {
	if os.Getenv("RANDOMCOLOR_DEBUG") == "1" {
		l, err := zap.NewDevelopment()
		if err == nil {
			return l
		}
	}
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func main() {
	flag.Parse()

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", *configPath), zap.Error(err))
	}
	applyFlags(cfg)

	s, err := seed(cfg)
	if err != nil {
		logger.Fatal("invalid seed", zap.Error(err))
	}
	logger.Debug("starting", zap.Int64("seed", s), zap.String("format", cfg.Format))

	reqs, err := cfg.Requests()
	if err != nil {
		logger.Fatal("invalid color request", zap.Error(err))
	}

	gen := randomcolor.New(randomcolor.WithSeed(s), randomcolor.WithLogger(logger))
	if err := run(os.Stdout, gen, reqs, cfg.Format); err != nil {
		logger.Fatal("failed to write colors", zap.Error(err))
	}
}

// applyFlags overrides config values with any flags set on the command line.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scheme":
			cfg.Scheme = *scheme
		case "luminosity":
			cfg.Luminosity = *luminosity
		case "count":
			cfg.Count = *count
			cfg.Colors = nil
		case "format":
			cfg.Format = *format
		}
	})
	cfg.Normalize()
}

func seed(cfg *config.Config) (int64, error) {
	seedStr := *seedFlag
	if seedStr == "" {
		seedStr = os.Getenv("RANDOMCOLOR_SEED")
	}
	if seedStr == "" {
		if cfg.Seed != nil {
			return *cfg.Seed, nil
		}
		return time.Now().UnixNano(), nil
	}
	v, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "seed %q", seedStr)
	}
	return v, nil
}

func run(w io.Writer, gen *randomcolor.Generator, reqs []config.Request, format string) error {
	opts := make([]randomcolor.Options, len(reqs))
	for i, r := range reqs {
		opts[i] = randomcolor.Options{Scheme: r.Scheme, Luminosity: r.Luminosity}
	}
	colors, err := gen.GetColorsFor(opts)
	if err != nil {
		return err
	}
	for _, c := range colors {
		if _, err := fmt.Fprintln(w, formatColor(c, format)); err != nil {
			return err
		}
	}
	return nil
}

func formatColor(c color.RGBA, format string) string {
	cf, _ := colorful.MakeColor(c)
	switch format {
	case config.FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case config.FormatHSV:
		h, s, v := cf.Hsv()
		return fmt.Sprintf("hsv(%.0f, %.0f%%, %.0f%%)", h, s*100, v*100)
	default:
		return cf.Hex()
	}
}
