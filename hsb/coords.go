package hsb

// HandleInset keeps the hue handle's ring inside the strip.
const HandleInset = 5

// Geometry is the pixel size of a palette's hit area.
type Geometry struct {
	Width, Height float64
}

// Valid reports whether both dimensions are positive. The mapping functions
// divide by them.
func (g Geometry) Valid() bool { return g.Width > 0 && g.Height > 0 }

// Point is a position relative to a palette's top-left corner.
type Point struct {
	X, Y float64
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PositionToHue maps x within a strip of the given width onto [0,360].
// Positions outside the strip clamp rather than wrap.
func PositionToHue(x, width float64) float64 {
	return clamp(x, 0, width) / width * 360
}

// PositionToSaturation maps x within the plane onto [0,100].
func PositionToSaturation(x, width float64) float64 {
	return clamp(x, 0, width) / width * 100
}

// PositionToBrightness maps y within the plane onto [0,100]. The top edge is
// full brightness.
func PositionToBrightness(y, height float64) float64 {
	return (1 - clamp(y, 0, height)/height) * 100
}

// HueToHandleX places the hue handle for h, kept HandleInset pixels away from
// either end of the strip.
func HueToHandleX(h int, width float64) float64 {
	return clamp(float64(h)/360*width, HandleInset, width-HandleInset)
}

// ColorToPlaneHandle places the plane handle for c's saturation and
// brightness. The result is not clamped.
func ColorToPlaneHandle(c HSB, g Geometry) Point {
	return Point{
		X: float64(c.S) / 100 * g.Width,
		Y: (1 - float64(c.B)/100) * g.Height,
	}
}

// PickHue returns the partial update for a pointer at x on the hue strip.
func PickHue(x float64, g Geometry) Partial {
	return Partial{}.WithH(PositionToHue(x, g.Width))
}

// PickPlane returns the partial update for a pointer at p on the plane.
func PickPlane(p Point, g Geometry) Partial {
	return Partial{}.
		WithS(PositionToSaturation(p.X, g.Width)).
		WithB(PositionToBrightness(p.Y, g.Height))
}
