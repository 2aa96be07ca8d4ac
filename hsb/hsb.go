// Package hsb converts between the hue/saturation/brightness, RGB and
// hexadecimal forms of one opaque color, and maps palette pointer
// coordinates onto color axes.
//
// Every function here is pure. Range checks belong to callers.
package hsb

import (
	"image/color"
	"math"
)

// HSB is a color in the hue/saturation/brightness model. H is in degrees,
// S and B are percentages.
type HSB struct {
	H, S, B int
}

// RGB is a color with 8-bit channels stored as ints.
type RGB struct {
	R, G, B int
}

// RGBA returns the color for image code. Channels are clamped to [0,255].
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: clampByte(c.R), G: clampByte(c.G), B: clampByte(c.B), A: 0xff}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Channel is a bit set naming HSB components.
type Channel uint8

const (
	ChannelH Channel = 1 << iota
	ChannelS
	ChannelB

	ChannelAll = ChannelH | ChannelS | ChannelB
)

// Partial is a subset of HSB components awaiting a merge. The zero value is
// empty.
type Partial struct {
	H, S, B float64
	set     Channel
}

// WithH returns p with hue present.
func (p Partial) WithH(v float64) Partial {
	p.H = v
	p.set |= ChannelH
	return p
}

// WithS returns p with saturation present.
func (p Partial) WithS(v float64) Partial {
	p.S = v
	p.set |= ChannelS
	return p
}

// WithB returns p with brightness present.
func (p Partial) WithB(v float64) Partial {
	p.B = v
	p.set |= ChannelB
	return p
}

// FromHSB returns a partial with all three components present.
func FromHSB(c HSB) Partial {
	return Partial{}.WithH(float64(c.H)).WithS(float64(c.S)).WithB(float64(c.B))
}

// Has reports whether every channel in ch is present.
func (p Partial) Has(ch Channel) bool { return p.set&ch == ch }

// Empty reports whether no component is present.
func (p Partial) Empty() bool { return p.set == 0 }

// Apply merges the present components into c, rounding each on write.
func (p Partial) Apply(c HSB) HSB {
	if p.Has(ChannelH) {
		c.H = round(p.H)
	}
	if p.Has(ChannelS) {
		c.S = round(p.S)
	}
	if p.Has(ChannelB) {
		c.B = round(p.B)
	}
	return c
}

// round rounds half up, so 0.5 becomes 1 and -0.5 becomes 0.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
