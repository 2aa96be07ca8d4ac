package eui

import (
	"encoding/json"
	"image/color"
	"strings"

	"colorpicker/hsb"
)

// Color is an opaque theme color.
type Color color.RGBA

// NewColor returns an opaque color.
func NewColor(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xff} }

func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// ToRGBA converts c for image APIs.
func (c Color) ToRGBA() color.RGBA { return color.RGBA(c) }

// MarshalJSON writes c as "#RRGGBB".
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal("#" + hsb.ToHex(hsb.RGB{R: int(c.R), G: int(c.G), B: int(c.B)}))
}

// UnmarshalJSON accepts a named color from the loading theme or a hex
// string with an optional leading '#'.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if named, ok := namedColors[strings.ToLower(s)]; ok {
		*c = named
		return nil
	}
	rgb, err := hsb.ParseHex(s)
	if err != nil {
		return err
	}
	*c = Color(rgb.RGBA())
	return nil
}
