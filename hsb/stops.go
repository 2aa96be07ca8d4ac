package hsb

import "math"

// DefaultHueSteps is the number of gradient segments across the hue strip.
const DefaultHueSteps = 20

// Stop is one color stop of the hue strip gradient.
type Stop struct {
	Offset float64
	Color  RGB
}

// HueStops returns steps+1 stops spanning hue 0 through 360, each the fully
// saturated color of its hue at an offset rounded to two decimals.
func HueStops(steps int) []Stop {
	if steps <= 0 {
		steps = DefaultHueSteps
	}
	stops := make([]Stop, 0, steps+1)
	for i := 0; i <= steps; i++ {
		hue := float64(i) * 360 / float64(steps)
		stops = append(stops, Stop{
			Offset: math.Round(hue/360*100) / 100,
			Color:  ToRGB(HSB{H: round(hue), S: 100, B: 100}),
		})
	}
	return stops
}

// HueAt interpolates the stops at offset t in [0,1], the way a linear
// gradient paints between neighbouring stops. Offsets outside the first and
// last stop take the end colors.
func HueAt(stops []Stop, t float64) RGB {
	if len(stops) == 0 {
		return RGB{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		k := (t - a.Offset) / span
		return RGB{
			R: round(float64(a.Color.R) + (float64(b.Color.R)-float64(a.Color.R))*k),
			G: round(float64(a.Color.G) + (float64(b.Color.G)-float64(a.Color.G))*k),
			B: round(float64(a.Color.B) + (float64(b.Color.B)-float64(a.Color.B))*k),
		}
	}
	return last.Color
}
