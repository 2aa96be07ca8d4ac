package hsb

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrShortHex is returned for hex strings with fewer than six digits.
	ErrShortHex = errors.New("hex color needs 6 digits")
	// ErrInvalidHex is returned when a digit pair is not base-16.
	ErrInvalidHex = errors.New("invalid hex digit")
)

// ToRGB converts an HSB color with the six-sector algorithm. The sector is
// taken modulo 6 so any integer hue is accepted; 360 behaves like 0.
func ToRGB(c HSB) RGB {
	h := float64(c.H) / 360
	s := float64(c.S) / 100
	v := float64(c.B) / 100

	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch ((int(i) % 6) + 6) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return RGB{R: round(r * 255), G: round(g * 255), B: round(b * 255)}
}

// ToHSB converts an RGB color. Hue is 0 for grays and saturation is 0 for
// black.
func ToHSB(c RGB) HSB {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	d := max - min

	var s float64
	if max != 0 {
		s = d / max
	}

	var h float64
	switch max {
	case min:
		h = 0
	case r:
		h = g - b
		if g < b {
			h += 6 * d
		}
		h /= 6 * d
	case g:
		h = (b - r + 2*d) / (6 * d)
	case b:
		h = (r - g + 4*d) / (6 * d)
	}

	return HSB{
		H: round(h * 360),
		S: round(s * 100),
		B: round(max / 255 * 100),
	}
}

// PartialFromRGB converts a group of RGB fields keyed "r", "g" and "b". An
// empty group yields an empty Partial; otherwise absent channels read as 0
// and the result carries all three components.
func PartialFromRGB(fields map[string]int) Partial {
	if len(fields) == 0 {
		return Partial{}
	}
	return FromHSB(ToHSB(RGB{R: fields["r"], G: fields["g"], B: fields["b"]}))
}

// ParseHex decodes the first six digits of s, two per channel. A single
// leading '#' is skipped.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) < 6 {
		return RGB{}, ErrShortHex
	}
	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s[i*2:i*2+2])
		}
		ch[i] = int(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// HexToHSB decodes a hex string and converts it to HSB.
func HexToHSB(s string) (HSB, error) {
	c, err := ParseHex(s)
	if err != nil {
		return HSB{}, err
	}
	return ToHSB(c), nil
}

// ToHex formats c as six uppercase hex digits without a prefix.
func ToHex(c RGB) string {
	var sb strings.Builder
	sb.Grow(6)
	for _, v := range [3]int{c.R, c.G, c.B} {
		d := strconv.FormatInt(int64(v), 16)
		if len(d) < 2 {
			sb.WriteByte('0')
		}
		sb.WriteString(d)
	}
	return strings.ToUpper(sb.String())
}

// Fill is the fully saturated, fully bright color of c's hue. Palettes use
// it as the base of the saturation/brightness plane.
func Fill(c HSB) RGB {
	return ToRGB(HSB{H: c.H, S: 100, B: 100})
}
