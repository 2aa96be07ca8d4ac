package eui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"colorpicker/hsb"
	"colorpicker/logger"
	"colorpicker/picker"
)

// Picker draws a color picker with Ebiten and feeds pointer and keyboard
// input back into its state. It is the state's presentation sink.
type Picker struct {
	Position Point
	Scale    float32

	state *picker.State
	input *picker.Input
	drag  *picker.Drag
	frame picker.Frame

	fields  []*field
	focused *field
	hovered *field

	stops    []hsb.Stop
	strip    *ebiten.Image
	planes   *rasterCache
	lastPos  Point
	inputBuf []rune
}

// NewPicker attaches a picker widget to st and renders the current color.
func NewPicker(st *picker.State) *Picker {
	if err := EnsureFontSource(nil); err != nil {
		logger.Log.Warn("font load failed", zap.Error(err))
	}
	p := &Picker{
		Scale:  1,
		state:  st,
		input:  picker.NewInput(st),
		drag:   picker.NewDrag(st),
		fields: newFields(),
		stops:  hsb.HueStops(hsb.DefaultHueSteps),
		planes: newRasterCache(),
	}
	st.SetSink(p)
	st.Refresh()
	return p
}

// State returns the picker's color state.
func (p *Picker) State() *picker.State { return p.state }

// Size returns the picker's size on screen.
func (p *Picker) Size() (int, int) {
	w := float32(planeWidth+2*pickerMargin) * p.Scale
	h := float32(contentBottom+2*pickerMargin) * p.Scale
	return int(w + 0.5), int(h + 0.5)
}

// SetScale changes the scale and drops rasters painted at the old size.
func (p *Picker) SetScale(s float32) {
	if s <= 0 || s == p.Scale {
		return
	}
	p.Scale = s
	p.Dispose()
	p.state.Refresh()
}

// Layout reports the on-screen palette sizes.
func (p *Picker) Layout() (hue, plane hsb.Geometry) {
	s := float64(p.Scale)
	return hsb.Geometry{Width: planeWidth * s, Height: stripHeight * s},
		hsb.Geometry{Width: planeWidth * s, Height: planeHeight * s}
}

// Render stores the frame and rewrites every field except the one being
// edited.
func (p *Picker) Render(f picker.Frame) {
	p.frame = f
	for _, fd := range p.fields {
		if fd.id == f.Keep {
			fd.invalid = fd.validate() != nil
			continue
		}
		fd.text = fieldText(f.Snapshot, fd.id)
		fd.invalid = false
	}
}

// Update processes pointer and keyboard input for one tick.
func (p *Picker) Update() error {
	x, y := pointerPosition()
	pos := Point{X: x, Y: y}

	p.hovered = nil
	for _, f := range p.fields {
		if label, _ := fieldRects(f.id, p.Position, p.Scale); label.containsPoint(pos) {
			p.hovered = f
			break
		}
	}

	switch {
	case pointerJustPressed():
		p.press(pos)
	case p.drag.Active() && !pointerPressed():
		p.drag.End()
	case p.drag.Active() && pos != p.lastPos:
		p.dragTo(pos)
	}
	p.lastPos = pos

	if stripRect(p.Position, p.Scale).containsPoint(pos) {
		if d := pointerWheel(); d != 0 {
			p.drag.Nudge(d)
		}
	}

	p.updateKeys()
	return nil
}

func (p *Picker) press(pos Point) {
	if r := planeRect(p.Position, p.Scale); r.containsPoint(pos) {
		p.blur()
		p.begin(picker.TargetPlane, r, pos)
		return
	}
	if r := stripRect(p.Position, p.Scale); r.containsPoint(pos) {
		p.blur()
		p.begin(picker.TargetHue, r, pos)
		return
	}
	for _, f := range p.fields {
		label, box := fieldRects(f.id, p.Position, p.Scale)
		if box.containsPoint(pos) || label.containsPoint(pos) {
			p.focus(f)
			return
		}
	}
	p.blur()
}

func (p *Picker) begin(t picker.Target, r rect, pos Point) {
	if err := p.drag.Begin(t, float64(pos.X-r.X0), float64(pos.Y-r.Y0)); err != nil {
		logger.Log.Warn("drag rejected", zap.Stringer("target", t), zap.Error(err))
	}
}

func (p *Picker) dragTo(pos Point) {
	r := planeRect(p.Position, p.Scale)
	if p.drag.Target() == picker.TargetHue {
		r = stripRect(p.Position, p.Scale)
	}
	if err := p.drag.Move(float64(pos.X-r.X0), float64(pos.Y-r.Y0)); err != nil {
		logger.Log.Warn("drag move rejected", zap.Error(err))
		p.drag.End()
	}
}

func (p *Picker) stripImage(w, h int) *ebiten.Image {
	if p.strip != nil {
		b := p.strip.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return p.strip
		}
		p.strip.Deallocate()
	}
	p.strip = ebiten.NewImage(w, h)
	p.strip.WritePixels(stripPixels(w, h, p.stops, stripRadius*float64(p.Scale)))
	return p.strip
}

// Draw paints the picker onto screen.
func (p *Picker) Draw(screen *ebiten.Image) {
	th := CurrentTheme()
	s := p.Scale

	pr := planeRect(p.Position, s)
	plane := p.planes.plane(p.frame.Fill, int(pr.width()), int(pr.height()), planeRadius*float64(s))
	op := imageOps.get()
	op.GeoM.Translate(float64(pr.X0), float64(pr.Y0))
	screen.DrawImage(plane, op)
	imageOps.put(op)

	sr := stripRect(p.Position, s)
	op = imageOps.get()
	op.GeoM.Translate(float64(sr.X0), float64(sr.Y0))
	screen.DrawImage(p.stripImage(int(sr.width()), int(sr.height())), op)
	imageOps.put(op)

	vector.StrokeCircle(screen,
		pr.X0+float32(p.frame.PlaneHandle.X), pr.Y0+float32(p.frame.PlaneHandle.Y),
		handleRadius*s, handleStroke*s, th.Handle, true)
	vector.StrokeCircle(screen,
		sr.X0+float32(p.frame.HueHandleX), (sr.Y0+sr.Y1)/2,
		handleRadius*s, handleStroke*s, th.Handle, true)

	face := textFace(fontSize * s)
	for _, f := range p.fields {
		p.drawField(screen, f, face, th)
	}
	if p.hovered != nil {
		p.drawTooltip(screen, p.hovered, face, th)
	}
}

func (p *Picker) drawField(screen *ebiten.Image, f *field, face text.Face, th Theme) {
	s := p.Scale
	label, box := fieldRects(f.id, p.Position, s)

	border := th.FieldBorder
	switch {
	case f.invalid:
		border = th.FieldError
	case f == p.focused:
		border = th.FieldFocus
	}
	vector.DrawFilledRect(screen, label.X0, label.Y0, label.width(), label.height(), th.LabelBG, false)
	vector.DrawFilledRect(screen, box.X0, box.Y0, box.width(), box.height(), th.FieldBG, false)
	vector.StrokeRect(screen, label.X0, label.Y0, box.X1-label.X0, label.height(), s, border, false)
	vector.StrokeLine(screen, box.X0, box.Y0, box.X0, box.Y1, s, border, false)

	drawText(screen, f.label(), face, label, true, th.Label)
	value := f.text
	if f == p.focused {
		value += "|"
	}
	inner := box
	inner.X0 += 4 * s
	drawText(screen, value, face, inner, false, th.Text)
}

func (p *Picker) drawTooltip(screen *ebiten.Image, f *field, face text.Face, th Theme) {
	s := p.Scale
	label, _ := fieldRects(f.id, p.Position, s)
	title := titleCaser.String(f.id.Title())
	w, h := text.Measure(title, face, 0)
	pad := 4 * s
	r := rect{X0: label.X0, Y0: label.Y0 - float32(h) - 2*pad}
	r.X1 = r.X0 + float32(w) + 2*pad
	r.Y1 = label.Y0
	vector.DrawFilledRect(screen, r.X0, r.Y0, r.width(), r.height(), th.TooltipBG, false)
	drawText(screen, title, face, r, true, th.TooltipText)
}

func drawText(screen *ebiten.Image, str string, face text.Face, r rect, center bool, col Color) {
	w, h := text.Measure(str, face, 0)
	x := float64(r.X0)
	if center {
		x += (float64(r.width()) - w) / 2
	}
	y := float64(r.Y0) + (float64(r.height())-h)/2
	op := textOps.get()
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
	textOps.put(op)
}

// Dispose releases cached rasters. The picker repaints them on the next Draw.
func (p *Picker) Dispose() {
	if p.strip != nil {
		p.strip.Deallocate()
		p.strip = nil
	}
	p.planes.clear()
}
