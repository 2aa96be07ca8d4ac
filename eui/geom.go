package eui

import "colorpicker/picker"

// Unscaled picker layout, in pixels.
const (
	pickerMargin = 10

	planeWidth  = 200
	planeHeight = 150
	planeRadius = 3

	stripTop    = 160
	stripHeight = 10
	stripRadius = 5

	sectionGap    = 10
	rowHeight     = 20
	labelWidth    = 18
	numericWidth  = 39
	contentBottom = stripTop + stripHeight + 3*(sectionGap+rowHeight)

	handleRadius = 3
	handleStroke = 2

	fontSize = 12
)

// Point is a screen position.
type Point struct {
	X, Y float32
}

type rect struct {
	X0, Y0, X1, Y1 float32
}

func (r rect) containsPoint(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

func (r rect) width() float32  { return r.X1 - r.X0 }
func (r rect) height() float32 { return r.Y1 - r.Y0 }

// place converts an unscaled rect relative to the content origin into screen
// coordinates.
func place(origin Point, scale float32, x, y, w, h float32) rect {
	x0 := origin.X + (pickerMargin+x)*scale
	y0 := origin.Y + (pickerMargin+y)*scale
	return rect{X0: x0, Y0: y0, X1: x0 + w*scale, Y1: y0 + h*scale}
}

func planeRect(origin Point, scale float32) rect {
	return place(origin, scale, 0, 0, planeWidth, planeHeight)
}

func stripRect(origin Point, scale float32) rect {
	return place(origin, scale, 0, stripTop, planeWidth, stripHeight)
}

// fieldRects returns the label and input boxes of a field. Numeric fields
// sit three to a row, spread across the palette width; the hex field takes
// a whole row.
func fieldRects(id picker.Field, origin Point, scale float32) (label, box rect) {
	row, col := 0, 0
	switch {
	case id.IsHSB():
		col = indexOf(picker.HSBFields, id)
	case id.IsRGB():
		row, col = 1, indexOf(picker.RGBFields, id)
	default:
		row = 2
	}
	y := float32(stripTop + stripHeight + sectionGap + row*(sectionGap+rowHeight))
	if id == picker.FieldHex {
		label = place(origin, scale, 0, y, labelWidth, rowHeight)
		box = place(origin, scale, labelWidth, y, planeWidth-labelWidth, rowHeight)
		return label, box
	}
	w := float32(labelWidth + numericWidth)
	x := float32(col) * (planeWidth - w) / 2
	label = place(origin, scale, x, y, labelWidth, rowHeight)
	box = place(origin, scale, x+labelWidth, y, numericWidth, rowHeight)
	return label, box
}

func indexOf(list []picker.Field, id picker.Field) int {
	for i, f := range list {
		if f == id {
			return i
		}
	}
	return 0
}
