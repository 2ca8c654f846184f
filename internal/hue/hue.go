// Package hue defines the named inputs to color generation: the hue family a
// color is drawn from and the brightness/saturation profile applied on top.
package hue

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownScheme     = errors.New("unknown color scheme")
	ErrUnknownLuminosity = errors.New("unknown luminosity")
)

// ColorScheme names a hue family. Random places no constraint on hue;
// Monochrome forces saturation to zero.
type ColorScheme int

const (
	Monochrome ColorScheme = iota
	Red
	Orange
	Yellow
	Green
	Blue
	Purple
	Pink
	Random
)

// Schemes lists every scheme in declaration order.
var Schemes = []ColorScheme{Monochrome, Red, Orange, Yellow, Green, Blue, Purple, Pink, Random}

var schemeNames = [...]string{
	Monochrome: "monochrome",
	Red:        "red",
	Orange:     "orange",
	Yellow:     "yellow",
	Green:      "green",
	Blue:       "blue",
	Purple:     "purple",
	Pink:       "pink",
	Random:     "random",
}

func (c ColorScheme) String() string {
	if c < 0 || int(c) >= len(schemeNames) {
		return "ColorScheme(" + strconv.Itoa(int(c)) + ")"
	}
	return schemeNames[c]
}

// Valid reports whether c is one of the declared schemes.
func (c ColorScheme) Valid() bool { return c >= Monochrome && c <= Random }

// ParseColorScheme resolves a case-insensitive scheme name.
func ParseColorScheme(name string) (ColorScheme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range schemeNames {
		if s == n {
			return ColorScheme(i), nil
		}
	}
	return Random, errors.Wrapf(ErrUnknownScheme, "%q", name)
}

// Luminosity shapes the saturation and brightness draws.
type Luminosity int

const (
	Bright Luminosity = iota
	Dark
	Light
	RandomLuminosity
)

// Luminosities lists every luminosity in declaration order.
var Luminosities = []Luminosity{Bright, Dark, Light, RandomLuminosity}

var luminosityNames = [...]string{
	Bright:           "bright",
	Dark:             "dark",
	Light:            "light",
	RandomLuminosity: "random",
}

func (l Luminosity) String() string {
	if l < 0 || int(l) >= len(luminosityNames) {
		return "Luminosity(" + strconv.Itoa(int(l)) + ")"
	}
	return luminosityNames[l]
}

// Valid reports whether l is one of the declared luminosities.
func (l Luminosity) Valid() bool { return l >= Bright && l <= RandomLuminosity }

// ParseLuminosity resolves a case-insensitive luminosity name.
func ParseLuminosity(name string) (Luminosity, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range luminosityNames {
		if s == n {
			return Luminosity(i), nil
		}
	}
	return RandomLuminosity, errors.Wrapf(ErrUnknownLuminosity, "%q", name)
}
