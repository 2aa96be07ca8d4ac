package picker

import (
	"errors"

	"go.uber.org/zap"

	"colorpicker/hsb"
)

// ErrDegenerateGeometry is returned when a palette has no area to map onto.
var ErrDegenerateGeometry = errors.New("palette has zero width or height")

// Target is the palette a drag acts on.
type Target int

const (
	TargetNone Target = iota
	TargetHue
	TargetPlane
)

func (t Target) String() string {
	switch t {
	case TargetHue:
		return "hue"
	case TargetPlane:
		return "plane"
	default:
		return "none"
	}
}

// Drag turns pointer presses, moves and releases on a palette into updates.
// It is idle until Begin and returns to idle on End.
type Drag struct {
	state  *State
	target Target
}

// NewDrag returns an idle drag feeding s.
func NewDrag(s *State) *Drag { return &Drag{state: s} }

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.target != TargetNone }

// Target returns the palette being dragged, or TargetNone.
func (d *Drag) Target() Target { return d.target }

// Begin starts dragging on t and applies the pick at (x, y), relative to
// the palette's top-left corner. A drag already in progress is ended first.
func (d *Drag) Begin(t Target, x, y float64) error {
	if t == TargetNone {
		return nil
	}
	if d.Active() {
		d.End()
	}
	if _, err := d.geometry(t); err != nil {
		return err
	}
	d.target = t
	d.state.log.Debug("drag start", zap.Stringer("target", t))
	d.state.handler.Emit(Event{Type: EventDragStart})
	return d.Move(x, y)
}

// Move applies the pick at (x, y) while dragging. It does nothing when idle.
func (d *Drag) Move(x, y float64) error {
	if !d.Active() {
		return nil
	}
	g, err := d.geometry(d.target)
	if err != nil {
		return err
	}
	switch d.target {
	case TargetHue:
		d.state.Update(hsb.PickHue(x, g))
	case TargetPlane:
		d.state.Update(hsb.PickPlane(hsb.Point{X: x, Y: y}, g))
	}
	return nil
}

// End stops the drag. The color keeps its last value.
func (d *Drag) End() {
	if !d.Active() {
		return
	}
	d.state.log.Debug("drag end", zap.Stringer("target", d.target))
	d.target = TargetNone
	d.state.handler.Emit(Event{Type: EventDragEnd})
}

// Nudge moves the hue by delta degrees, clamped to [0,360].
func (d *Drag) Nudge(delta int) bool {
	if delta == 0 {
		return false
	}
	h := d.state.Color().HSB.H + delta
	if h < 0 {
		h = 0
	} else if h > 360 {
		h = 360
	}
	if h == d.state.Color().HSB.H {
		return false
	}
	return d.state.Update(hsb.Partial{}.WithH(float64(h)))
}

func (d *Drag) geometry(t Target) (hsb.Geometry, error) {
	if d.state.sink == nil {
		return hsb.Geometry{}, ErrDegenerateGeometry
	}
	hue, plane := d.state.sink.Layout()
	g := plane
	if t == TargetHue {
		g = hue
	}
	if !g.Valid() {
		return g, ErrDegenerateGeometry
	}
	return g, nil
}
