package hsb

import (
	"errors"
	"image/color"
	"regexp"
	"testing"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func hueDist(a, b int) int {
	d := abs(a-b) % 360
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestToRGBPrimaries(t *testing.T) {
	tests := []struct {
		in   HSB
		want RGB
	}{
		{HSB{0, 100, 100}, RGB{255, 0, 0}},
		{HSB{60, 100, 100}, RGB{255, 255, 0}},
		{HSB{120, 100, 100}, RGB{0, 255, 0}},
		{HSB{180, 100, 100}, RGB{0, 255, 255}},
		{HSB{240, 100, 100}, RGB{0, 0, 255}},
		{HSB{300, 100, 100}, RGB{255, 0, 255}},
		{HSB{360, 100, 100}, RGB{255, 0, 0}},
		{HSB{0, 0, 100}, RGB{255, 255, 255}},
		{HSB{0, 0, 0}, RGB{0, 0, 0}},
		{HSB{210, 50, 50}, RGB{64, 96, 128}},
		{HSB{-120, 100, 100}, RGB{0, 0, 255}},
	}
	for _, tt := range tests {
		if got := ToRGB(tt.in); got != tt.want {
			t.Errorf("ToRGB(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestToHSBScenarios(t *testing.T) {
	tests := []struct {
		in   RGB
		want HSB
	}{
		{RGB{0, 255, 0}, HSB{120, 100, 100}},
		{RGB{255, 0, 0}, HSB{0, 100, 100}},
		{RGB{0, 0, 255}, HSB{240, 100, 100}},
		{RGB{255, 0, 128}, HSB{330, 100, 100}},
		{RGB{255, 255, 255}, HSB{0, 0, 100}},
		{RGB{0, 0, 0}, HSB{0, 0, 0}},
		{RGB{128, 128, 128}, HSB{0, 0, 50}},
		{RGB{64, 96, 128}, HSB{210, 50, 50}},
	}
	for _, tt := range tests {
		if got := ToHSB(tt.in); got != tt.want {
			t.Errorf("ToHSB(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

var hexPattern = regexp.MustCompile(`^[0-9A-F]{6}$`)

func TestToHexAlwaysSixUppercaseDigits(t *testing.T) {
	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g += 3 {
			for b := 0; b < 256; b += 5 {
				c := RGB{r, g, b}
				h := ToHex(c)
				if !hexPattern.MatchString(h) {
					t.Fatalf("ToHex(%+v) = %q", c, h)
				}
				back, err := ParseHex(h)
				if err != nil || back != c {
					t.Fatalf("ParseHex(%q) = %+v, %v", h, back, err)
				}
			}
		}
	}
	if got := ToHex(RGB{255, 0, 0}); got != "FF0000" {
		t.Fatalf("red = %q", got)
	}
	if got := ToHex(RGB{10, 11, 12}); got != "0A0B0C" {
		t.Fatalf("padding = %q", got)
	}
}

// Integer HSB has 101 brightness levels for 256 channel values, so a trip
// through it can move the dimmer channels by up to three. The brightest
// channel survives within one.
func TestRGBRoundTrip(t *testing.T) {
	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g++ {
			for b := 0; b < 256; b++ {
				in := RGB{r, g, b}
				out := ToRGB(ToHSB(in))
				if abs(out.R-r) > 3 || abs(out.G-g) > 3 || abs(out.B-b) > 3 {
					t.Fatalf("%+v -> %+v", in, out)
				}
				max, got := r, out.R
				if g > max {
					max, got = g, out.G
				}
				if b > max {
					max, got = b, out.B
				}
				if abs(got-max) > 1 {
					t.Fatalf("%+v -> %+v: brightest channel moved %d", in, out, got-max)
				}
			}
		}
	}
}

func TestHSBRoundTrip(t *testing.T) {
	for h := 0; h < 360; h++ {
		for s := 1; s <= 100; s++ {
			for b := 30; b <= 100; b++ {
				in := HSB{h, s, b}
				out := ToHSB(ToRGB(in))
				if abs(out.S-s) > 1 || abs(out.B-b) > 1 {
					t.Fatalf("%+v -> %+v", in, out)
				}
				if s >= 40 && b >= 40 && hueDist(out.H, h) > 1 {
					t.Fatalf("%+v -> %+v: hue drifted", in, out)
				}
			}
		}
	}
}

func TestHexToHSB(t *testing.T) {
	c, err := HexToHSB("0000FF")
	if err != nil {
		t.Fatalf("HexToHSB: %v", err)
	}
	if c != (HSB{240, 100, 100}) {
		t.Fatalf("got %+v", c)
	}
	if rgb := ToRGB(c); rgb != (RGB{0, 0, 255}) {
		t.Fatalf("back to rgb: %+v", rgb)
	}
	if c, err := HexToHSB("#00ff00"); err != nil || c != (HSB{120, 100, 100}) {
		t.Fatalf("lowercase with prefix: %+v, %v", c, err)
	}
}

func TestParseHexErrors(t *testing.T) {
	if _, err := ParseHex("FFF"); !errors.Is(err, ErrShortHex) {
		t.Fatalf("short: %v", err)
	}
	if _, err := ParseHex(""); !errors.Is(err, ErrShortHex) {
		t.Fatalf("empty: %v", err)
	}
	if _, err := ParseHex("FFGG00"); !errors.Is(err, ErrInvalidHex) {
		t.Fatalf("bad digit: %v", err)
	}
	if _, err := ParseHex("+F0000"); !errors.Is(err, ErrInvalidHex) {
		t.Fatalf("sign: %v", err)
	}
	c, err := ParseHex("12345678")
	if err != nil || c != (RGB{0x12, 0x34, 0x56}) {
		t.Fatalf("long input: %+v, %v", c, err)
	}
}

func TestPartialFromRGB(t *testing.T) {
	if p := PartialFromRGB(nil); !p.Empty() {
		t.Fatalf("empty group produced %+v", p)
	}
	p := PartialFromRGB(map[string]int{"g": 255})
	if !p.Has(ChannelAll) {
		t.Fatalf("expected all channels, got %+v", p)
	}
	if got := p.Apply(HSB{}); got != (HSB{120, 100, 100}) {
		t.Fatalf("got %+v", got)
	}
}

func TestPartialApplyRounds(t *testing.T) {
	start := HSB{10, 20, 30}
	if got := (Partial{}).Apply(start); got != start {
		t.Fatalf("empty partial changed %+v to %+v", start, got)
	}
	got := Partial{}.WithS(49.5).WithB(12.4).Apply(start)
	if got != (HSB{10, 50, 12}) {
		t.Fatalf("got %+v", got)
	}
}

func TestFill(t *testing.T) {
	if got := Fill(HSB{H: 120, S: 3, B: 7}); got != (RGB{0, 255, 0}) {
		t.Fatalf("got %+v", got)
	}
}

func TestRGBA(t *testing.T) {
	want := color.RGBA{R: 0, G: 128, B: 255, A: 255}
	if got := (RGB{-4, 128, 300}).RGBA(); got != want {
		t.Fatalf("got %+v", got)
	}
}
