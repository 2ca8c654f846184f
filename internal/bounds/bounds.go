// Package bounds holds the hand-tuned hue, saturation and brightness limits
// for every hue family, along with the piecewise-linear lower-bound curve
// that keeps generated colors away from murky near-black tones.
package bounds

import (
	"math"
	"sync"

	"github.com/pkg/errors"

	"github.com/irfansharif/randomcolor/internal/hue"
)

var (
	ErrInvalidRange  = errors.New("invalid range")
	ErrEmptyCurve    = errors.New("lower-bound curve needs at least two points")
	ErrUnsortedCurve = errors.New("lower-bound curve is not strictly increasing in saturation")
)

// Range is a closed integer interval.
type Range struct {
	Lower int
	Upper int
}

// MakeRange returns [lower, upper], failing if lower > upper.
func MakeRange(lower, upper int) (Range, error) {
	if lower > upper {
		return Range{}, errors.Wrapf(ErrInvalidRange, "[%d, %d]", lower, upper)
	}
	return Range{Lower: lower, Upper: upper}, nil
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v int) bool { return v >= r.Lower && v <= r.Upper }

// Point is a control point on a lower-bound curve.
type Point struct {
	Saturation    int
	MinBrightness int
}

// Entry is the bounds for a single hue family.
type Entry struct {
	Scheme          hue.ColorScheme
	HueRange        *Range // nil for Monochrome
	LowerBounds     []Point
	SaturationRange Range
	BrightnessRange Range
}

// Spec describes an entry before its derived ranges are computed.
type Spec struct {
	Scheme      hue.ColorScheme
	HueRange    *Range
	LowerBounds []Point
}

// Table maps hue families to their bounds. It is immutable once built.
type Table struct {
	entries []*Entry
	byKey   map[hue.ColorScheme]*Entry
}

// NewTable validates the given specs and derives saturation and brightness
// ranges from each lower-bound curve.
func NewTable(specs []Spec) (*Table, error) {
	t := &Table{byKey: make(map[hue.ColorScheme]*Entry, len(specs))}
	for _, s := range specs {
		if s.Scheme == hue.Random || !s.Scheme.Valid() {
			return nil, errors.Errorf("scheme %s cannot carry bounds", s.Scheme)
		}
		if _, ok := t.byKey[s.Scheme]; ok {
			return nil, errors.Errorf("duplicate bounds for scheme %s", s.Scheme)
		}
		if s.HueRange != nil {
			if _, err := MakeRange(s.HueRange.Lower, s.HueRange.Upper); err != nil {
				return nil, errors.Wrapf(err, "hue range for %s", s.Scheme)
			}
		}
		if err := validateCurve(s.LowerBounds); err != nil {
			return nil, errors.Wrapf(err, "scheme %s", s.Scheme)
		}

		first, last := s.LowerBounds[0], s.LowerBounds[len(s.LowerBounds)-1]
		sat, err := MakeRange(first.Saturation, last.Saturation)
		if err != nil {
			return nil, errors.Wrapf(err, "saturation range for %s", s.Scheme)
		}
		// First point carries the maximum brightness, last the minimum.
		bright, err := MakeRange(last.MinBrightness, first.MinBrightness)
		if err != nil {
			return nil, errors.Wrapf(err, "brightness range for %s", s.Scheme)
		}

		e := &Entry{
			Scheme:          s.Scheme,
			HueRange:        copyRange(s.HueRange),
			LowerBounds:     append([]Point(nil), s.LowerBounds...),
			SaturationRange: sat,
			BrightnessRange: bright,
		}
		t.entries = append(t.entries, e)
		t.byKey[s.Scheme] = e
	}
	return t, nil
}

func copyRange(r *Range) *Range {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func validateCurve(points []Point) error {
	if len(points) < 2 {
		return ErrEmptyCurve
	}
	for i := 1; i < len(points); i++ {
		if points[i].Saturation <= points[i-1].Saturation {
			return errors.Wrapf(ErrUnsortedCurve, "point %d (saturation %d) follows saturation %d",
				i, points[i].Saturation, points[i-1].Saturation)
		}
	}
	return nil
}

// Entry returns the bounds for a scheme. Random never has an entry.
func (t *Table) Entry(scheme hue.ColorScheme) (*Entry, bool) {
	e, ok := t.byKey[scheme]
	return e, ok
}

// Entries returns the entries in the order they were supplied.
func (t *Table) Entries() []*Entry {
	return append([]*Entry(nil), t.entries...)
}

// HueRange returns the range hues for scheme are drawn from: [0, 360] when
// the scheme places no constraint on hue.
func (t *Table) HueRange(scheme hue.ColorScheme) Range {
	if e, ok := t.byKey[scheme]; ok && e.HueRange != nil {
		return *e.HueRange
	}
	return Range{Lower: 0, Upper: 360}
}

// Lookup finds the entry whose hue range contains h. Hues at or past 334 are
// shifted down by a full turn so Red's negative tail catches them.
func (t *Table) Lookup(h int) (*Entry, bool) {
	if h >= 334 && h <= 360 {
		h -= 360
	}
	for _, e := range t.entries {
		if e.HueRange != nil && e.HueRange.Contains(h) {
			return e, true
		}
	}
	return nil, false
}

// MinimumBrightness interpolates the lower-bound curve of the family owning
// hue h at the given saturation. It returns 0 when no family owns h or the
// saturation falls outside the curve.
func (t *Table) MinimumBrightness(h, saturation int) int {
	e, ok := t.Lookup(h)
	if !ok {
		return 0
	}
	for i := 0; i < len(e.LowerBounds)-1; i++ {
		s1, v1 := e.LowerBounds[i].Saturation, e.LowerBounds[i].MinBrightness
		s2, v2 := e.LowerBounds[i+1].Saturation, e.LowerBounds[i+1].MinBrightness
		if saturation >= s1 && saturation <= s2 {
			slope := float64(v2-v1) / float64(s2-s1)
			intercept := float64(v1) - slope*float64(s1)
			return int(math.Floor(slope*float64(saturation) + intercept))
		}
	}
	return 0
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table, constructing it on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable(DefaultSpecs())
		if err != nil {
			panic(errors.Wrap(err, "built-in bounds table"))
		}
		defaultTable = t
	})
	return defaultTable
}

func hueRange(lower, upper int) *Range { return &Range{Lower: lower, Upper: upper} }

// DefaultSpecs returns a fresh copy of the built-in bounds.
func DefaultSpecs() []Spec {
	return []Spec{
		{
			Scheme:      hue.Monochrome,
			LowerBounds: []Point{{0, 0}, {100, 0}},
		},
		{
			Scheme:   hue.Red,
			HueRange: hueRange(-26, 18),
			LowerBounds: []Point{
				{20, 100}, {30, 92}, {40, 89}, {50, 85}, {60, 78},
				{70, 70}, {80, 60}, {90, 55}, {100, 50},
			},
		},
		{
			Scheme:   hue.Orange,
			HueRange: hueRange(19, 46),
			LowerBounds: []Point{
				{20, 100}, {30, 93}, {40, 88}, {50, 86}, {60, 85},
				{70, 70}, {100, 70},
			},
		},
		{
			Scheme:   hue.Yellow,
			HueRange: hueRange(47, 62),
			LowerBounds: []Point{
				{25, 100}, {40, 94}, {50, 89}, {60, 86}, {70, 84},
				{80, 82}, {90, 80}, {100, 75},
			},
		},
		{
			Scheme:   hue.Green,
			HueRange: hueRange(63, 178),
			LowerBounds: []Point{
				{30, 100}, {40, 90}, {50, 85}, {60, 81}, {70, 74},
				{80, 64}, {90, 50}, {100, 40},
			},
		},
		{
			Scheme:   hue.Blue,
			HueRange: hueRange(179, 257),
			LowerBounds: []Point{
				{20, 100}, {30, 86}, {40, 80}, {50, 74}, {60, 60},
				{70, 52}, {80, 44}, {90, 39}, {100, 35},
			},
		},
		{
			Scheme:   hue.Purple,
			HueRange: hueRange(258, 282),
			LowerBounds: []Point{
				{20, 100}, {30, 87}, {40, 79}, {50, 70}, {60, 65},
				{70, 59}, {80, 52}, {90, 45}, {100, 42},
			},
		},
		{
			Scheme:   hue.Pink,
			HueRange: hueRange(283, 334),
			LowerBounds: []Point{
				{20, 100}, {30, 90}, {40, 86}, {60, 84}, {80, 80},
				{90, 75}, {100, 73},
			},
		},
	}
}
