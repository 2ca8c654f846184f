// Package palette samples colors from a hue family. It draws hue, then
// saturation, then brightness, each bounded by the bounds table and shaped by
// the requested luminosity.
package palette

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"

	"github.com/irfansharif/randomcolor/internal/bounds"
	"github.com/irfansharif/randomcolor/internal/hsv"
	"github.com/irfansharif/randomcolor/internal/hue"
	"github.com/irfansharif/randomcolor/internal/source"
)

// HSV is a sampled hue (degrees), saturation and brightness (percent).
type HSV struct {
	H, S, V int
}

// RGBA converts the triple to an opaque color.
func (c HSV) RGBA() color.RGBA { return hsv.ToRGBA(c.H, c.S, c.V) }

// Sampler draws HSV triples. It holds no mutable state of its own; all
// randomness comes from the injected source.
type Sampler struct {
	table  *bounds.Table
	src    source.Source
	logger *zap.Logger
}

// NewSampler returns a sampler over table drawing from src. A nil logger
// disables logging.
func NewSampler(table *bounds.Table, src source.Source, logger *zap.Logger) *Sampler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sampler{table: table, src: src, logger: logger}
}

// Pick draws a full triple for the given scheme and luminosity.
func (s *Sampler) Pick(scheme hue.ColorScheme, lum hue.Luminosity) HSV {
	h := s.PickHue(scheme)
	sat := s.PickSaturation(h, lum, scheme)
	v := s.PickBrightness(h, sat, lum)
	s.logger.Debug("sampled color",
		zap.Stringer("scheme", scheme),
		zap.Stringer("luminosity", lum),
		zap.Int("hue", h),
		zap.Int("saturation", sat),
		zap.Int("brightness", v),
	)
	return HSV{H: h, S: sat, V: v}
}

// PickHue draws from the scheme's hue range, wrapping negative draws onto the
// top of the wheel. The result lies in [0, 360].
func (s *Sampler) PickHue(scheme hue.ColorScheme) int {
	r := s.table.HueRange(scheme)
	h := s.src.Between(r.Lower, r.Upper)
	if h < 0 {
		h += 360
	}
	return h
}

// PickSaturation draws a saturation for hue h.
func (s *Sampler) PickSaturation(h int, lum hue.Luminosity, scheme hue.ColorScheme) int {
	if scheme == hue.Monochrome {
		return 0
	}
	if lum == hue.RandomLuminosity {
		return s.src.Between(0, 100)
	}

	lo, hi := 0, 100
	if e, ok := s.table.Lookup(h); ok {
		lo, hi = e.SaturationRange.Lower, e.SaturationRange.Upper
	}
	switch lum {
	case hue.Bright:
		lo = 55
	case hue.Dark:
		lo = hi - 10
	case hue.Light:
		hi = 55
	default:
		panic(fmt.Sprintf("palette: unhandled luminosity %s", lum))
	}
	return s.draw("saturation", lo, hi)
}

// PickBrightness draws a brightness above the family's lower-bound curve.
//
// Random luminosity always yields 100: the lower bound is pinned to the upper
// one. This matches the long-standing behavior callers depend on.
func (s *Sampler) PickBrightness(h, sat int, lum hue.Luminosity) int {
	lo, hi := s.table.MinimumBrightness(h, sat), 100
	switch lum {
	case hue.Bright:
	case hue.Dark:
		hi = clamp(lo+20, lo, 100)
	case hue.Light:
		lo = (lo + hi) / 2
	case hue.RandomLuminosity:
		lo = 100
	default:
		panic(fmt.Sprintf("palette: unhandled luminosity %s", lum))
	}
	return s.draw("brightness", lo, hi)
}

// draw takes a bounded sample, collapsing an inverted interval onto lo.
func (s *Sampler) draw(what string, lo, hi int) int {
	if lo > hi {
		s.logger.Debug("degenerate range", zap.String("component", what), zap.Int("lower", lo), zap.Int("upper", hi))
		return lo
	}
	return s.src.Between(lo, hi)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
