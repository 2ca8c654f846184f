// Package hsv converts integer hue/saturation/brightness triples to opaque
// RGBA colors.
package hsv

import (
	"fmt"
	"image/color"
	"math"
)

// ToRGBA converts h in [0, 360], s and v in [0, 100] to an opaque color. The
// wheel boundaries are nudged inward (0 to 1, 360 to 359) so the sector math
// never lands exactly on a seam. Channels are floored, not rounded.
func ToRGBA(h, s, v int) color.RGBA {
	switch h {
	case 0:
		h = 1
	case 360:
		h = 359
	}

	hf := float64(h) / 360
	sf := float64(s) / 100
	vf := float64(v) / 100

	i := math.Floor(hf * 6)
	f := hf*6 - i
	p := vf * (1 - sf)
	q := vf * (1 - f*sf)
	t := vf * (1 - (1-f)*sf)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = vf, t, p
	case 1:
		r, g, b = q, vf, p
	case 2:
		r, g, b = p, vf, t
	case 3:
		r, g, b = p, q, vf
	case 4:
		r, g, b = t, p, vf
	case 5:
		r, g, b = vf, p, q
	default:
		panic(fmt.Sprintf("hsv: sector %v out of range for hue %d", i, h))
	}

	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(c float64) uint8 {
	return uint8(math.Floor(c * 255))
}
