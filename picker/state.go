// Package picker holds the authoritative color of a color-selection widget
// and keeps its HSB, RGB and hex forms, handle positions and observers in
// step after every change.
package picker

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"colorpicker/hsb"
	"colorpicker/logger"
)

// DefaultHSB is the initial color, white.
var DefaultHSB = hsb.HSB{H: 0, S: 0, B: 100}

// Snapshot is the color in all three forms.
type Snapshot struct {
	HSB hsb.HSB
	RGB hsb.RGB
	Hex string
}

// Frame is everything a presentation needs to paint one completed cycle.
type Frame struct {
	Snapshot

	// Fill is the fully saturated hue painted under the plane.
	Fill hsb.RGB

	HueHandleX  float64
	PlaneHandle hsb.Point

	// Keep names the field the user is typing into. Its raw text should be
	// left alone so partial input like "05" survives the refresh.
	Keep Field
}

// Sink paints frames. Layout reports the current size of the hue strip and
// the saturation/brightness plane.
type Sink interface {
	Layout() (hue, plane hsb.Geometry)
	Render(Frame)
}

// State is the single mutable color record. It is not safe for concurrent
// use; every update runs to completion on the caller's goroutine.
type State struct {
	id      uuid.UUID
	color   Snapshot
	sink    Sink
	handler *EventHandler
	log     *zap.Logger
	logRate *rate.Limiter
	keep    Field
}

// Option configures a State.
type Option func(*State)

// WithSink attaches the presentation.
func WithSink(s Sink) Option { return func(st *State) { st.sink = s } }

// WithHandler attaches the change observer.
func WithHandler(h *EventHandler) Option { return func(st *State) { st.handler = h } }

// WithLogger sets the logger. Defaults to logger.Log.
func WithLogger(l *zap.Logger) Option { return func(st *State) { st.log = l } }

// WithInitial replaces DefaultHSB as the starting color.
func WithInitial(c hsb.HSB) Option { return func(st *State) { st.color.HSB = c } }

// New returns a state whose RGB and hex forms are derived from the initial
// HSB color. Nothing is rendered or emitted until the first update.
func New(opts ...Option) *State {
	s := &State{
		id:      uuid.New(),
		color:   Snapshot{HSB: DefaultHSB},
		log:     logger.Log,
		logRate: rate.NewLimiter(rate.Every(100*time.Millisecond), 4),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.log = s.log.With(zap.Stringer("picker", s.id))
	s.derive(s.color.HSB)
	return s
}

// ID identifies this picker in logs.
func (s *State) ID() uuid.UUID { return s.id }

// Color returns the current color.
func (s *State) Color() Snapshot { return s.color }

// Handler returns the attached event handler, possibly nil.
func (s *State) Handler() *EventHandler { return s.handler }

// SetSink replaces the presentation. It does not render.
func (s *State) SetSink(sink Sink) { s.sink = sink }

// Update merges p into the HSB color, derives RGB and then hex from it,
// emits one EventColorChanged and renders one frame. An empty p only
// re-renders and reports false.
func (s *State) Update(p hsb.Partial) bool {
	if p.Empty() {
		s.Refresh()
		return false
	}
	s.derive(p.Apply(s.color.HSB))
	if s.logRate.Allow() {
		s.log.Debug("color updated",
			zap.Int("h", s.color.HSB.H),
			zap.Int("s", s.color.HSB.S),
			zap.Int("b", s.color.HSB.B),
			zap.String("hex", s.color.Hex))
	}
	s.handler.Emit(Event{Type: EventColorChanged})
	s.Refresh()
	return true
}

// Refresh renders the current color without notifying observers.
func (s *State) Refresh() {
	keep := s.keep
	s.keep = FieldNone
	if s.sink == nil {
		return
	}
	hue, plane := s.sink.Layout()
	s.sink.Render(NewFrame(s.color, hue, plane, keep))
}

func (s *State) derive(c hsb.HSB) {
	rgb := hsb.ToRGB(c)
	s.color = Snapshot{HSB: c, RGB: rgb, Hex: hsb.ToHex(rgb)}
}

// NewFrame computes the presentation of c on palettes of the given sizes.
func NewFrame(c Snapshot, hue, plane hsb.Geometry, keep Field) Frame {
	return Frame{
		Snapshot:    c,
		Fill:        hsb.Fill(c.HSB),
		HueHandleX:  hsb.HueToHandleX(c.HSB.H, hue.Width),
		PlaneHandle: hsb.ColorToPlaneHandle(c.HSB, plane),
		Keep:        keep,
	}
}
